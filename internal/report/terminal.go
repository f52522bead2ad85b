package report

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// AutoColor decides whether w should get colour when the user asked for
// "auto". NO_COLOR, CLICOLOR=0 and TERM=dumb disable it; CLICOLOR_FORCE and
// FORCE_COLOR enable it; otherwise it follows whether w is a terminal.
func AutoColor(w io.Writer) bool {
	if disableColorOutput() {
		return false
	}
	if forceColorOutput() {
		return true
	}
	return IsTerminal(w)
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// Profile maps the colour decision onto a termenv profile for lipgloss.
func Profile(enabled bool) termenv.Profile {
	if enabled {
		return termenv.ANSI256
	}
	return termenv.Ascii
}

func disableColorOutput() bool {
	if termenv.EnvNoColor() {
		return true
	}
	if val, ok := os.LookupEnv("CLICOLOR"); ok && strings.TrimSpace(val) == "0" {
		return true
	}
	if val, ok := os.LookupEnv("TERM"); ok && strings.EqualFold(strings.TrimSpace(val), "dumb") {
		return true
	}
	return false
}

func forceColorOutput() bool {
	if val, ok := os.LookupEnv("CLICOLOR_FORCE"); ok && envTruthy(val) {
		return true
	}
	if val, ok := os.LookupEnv("FORCE_COLOR"); ok && envTruthy(val) {
		return true
	}
	return false
}

func envTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
