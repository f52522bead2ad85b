package main

// Exit codes returned by the validator.
const (
	exitOK    = 0
	exitError = 1
	// exitUsage marks bad arguments, flags or configuration.
	exitUsage = 2
)

// ExitCodeError wraps an error with a specific process exit code.
// Errors without one exit with exitError.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func usageError(err error) error {
	return &ExitCodeError{Code: exitUsage, Err: err}
}
