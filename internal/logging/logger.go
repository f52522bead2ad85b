package logging

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger defines a minimal, printf-style logging contract.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

type discard struct{}

func (discard) Debug(string, ...any) {}
func (discard) Info(string, ...any)  {}
func (discard) Warn(string, ...any)  {}
func (discard) Error(string, ...any) {}

// Nop returns a logger that drops everything.
func Nop() Logger { return discard{} }

// IsNil is true for a nil interface and for an interface holding a nil
// pointer, so optional loggers can be passed around as typed nils.
func IsNil(logger Logger) bool {
	if logger == nil {
		return true
	}
	v := reflect.ValueOf(logger)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// OrNop substitutes Nop for a missing logger.
func OrNop(logger Logger) Logger {
	if IsNil(logger) {
		return Nop()
	}
	return logger
}

var (
	baseMu sync.RWMutex
	base   = newBase(os.Stderr, logrus.WarnLevel)
)

func newBase(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// Configure replaces the process-wide backend. An empty level keeps warn.
func Configure(level string, out io.Writer) error {
	parsed := logrus.WarnLevel
	if strings.TrimSpace(level) != "" {
		var err error
		parsed, err = ParseLevel(level)
		if err != nil {
			return err
		}
	}
	if out == nil {
		out = os.Stderr
	}

	baseMu.Lock()
	base = newBase(out, parsed)
	baseMu.Unlock()
	return nil
}

// ParseLevel accepts debug, info, warn/warning and error (case-insensitive).
func ParseLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel, nil
	case "info":
		return logrus.InfoLevel, nil
	case "warn", "warning":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.WarnLevel, fmt.Errorf("unknown log level %q", level)
	}
}

type componentLogger struct {
	component string
}

// NewComponentLogger returns the application logger scoped to a component.
// The backend is resolved on every call so loggers created before Configure
// still follow it.
func NewComponentLogger(component string) Logger {
	return &componentLogger{component: component}
}

func (l *componentLogger) entry() *logrus.Entry {
	baseMu.RLock()
	b := base
	baseMu.RUnlock()
	return b.WithField("component", l.component)
}

func (l *componentLogger) Debug(format string, args ...any) { l.entry().Debugf(format, args...) }
func (l *componentLogger) Info(format string, args ...any)  { l.entry().Infof(format, args...) }
func (l *componentLogger) Warn(format string, args ...any)  { l.entry().Warnf(format, args...) }
func (l *componentLogger) Error(format string, args ...any) { l.entry().Errorf(format, args...) }

// fanout forwards every call to each of its loggers.
type fanout []Logger

// Multi combines loggers into one. Missing loggers are dropped and nested
// fan-outs are flattened; a single survivor is returned unwrapped.
func Multi(loggers ...Logger) Logger {
	var out fanout
	for _, logger := range loggers {
		switch l := logger.(type) {
		case fanout:
			out = append(out, l...)
		default:
			if !IsNil(l) {
				out = append(out, l)
			}
		}
	}
	switch len(out) {
	case 0:
		return Nop()
	case 1:
		return out[0]
	default:
		return out
	}
}

func (f fanout) Debug(format string, args ...any) {
	for _, l := range f {
		l.Debug(format, args...)
	}
}

func (f fanout) Info(format string, args ...any) {
	for _, l := range f {
		l.Info(format, args...)
	}
}

func (f fanout) Warn(format string, args ...any) {
	for _, l := range f {
		l.Warn(format, args...)
	}
}

func (f fanout) Error(format string, args ...any) {
	for _, l := range f {
		l.Error(format, args...)
	}
}
