// Package ui renders the terminal output a person reads: ANSI style
// helpers, status tags, and warnings on stderr. Structured logging is
// the log package's job; nothing here ends up in the debug file.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// The few SGR codes rvmkit uses.
const (
	sgrBold   = "1"
	sgrDim    = "2"
	sgrRed    = "31"
	sgrGreen  = "32"
	sgrYellow = "33"
)

var (
	stderr io.Writer = os.Stderr

	outColored = wantColor(os.Stdout)
	errColored = wantColor(os.Stderr)
)

// wantColor reports whether f should receive ANSI codes: it must be a
// terminal, and NO_COLOR must be unset.
func wantColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetWriter redirects warning output (for testing).
func SetWriter(w io.Writer) { stderr = w }

// SetColorEnabled forces color on or off for both streams (for testing).
func SetColorEnabled(enabled bool) {
	outColored = enabled
	errColored = enabled
}

// ColorEnabled reports whether stdout output gets ANSI codes.
func ColorEnabled() bool { return outColored }

func paint(code, s string, colored bool) string {
	if !colored {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

// Bold styles s for stdout.
func Bold(s string) string { return paint(sgrBold, s, outColored) }

// Dim styles s for stdout.
func Dim(s string) string { return paint(sgrDim, s, outColored) }

// Green styles s for stdout.
func Green(s string) string { return paint(sgrGreen, s, outColored) }

// Red styles s for stdout.
func Red(s string) string { return paint(sgrRed, s, outColored) }

// Yellow styles s for stdout.
func Yellow(s string) string { return paint(sgrYellow, s, outColored) }

// OKTag marks a satisfied check in tables and summaries.
func OKTag() string { return Green("✓") }

// FailTag marks a failed or missing check.
func FailTag() string { return Red("✗") }

// WarnTag marks a degraded but non-fatal condition.
func WarnTag() string { return Yellow("⚠") }

// Warn prints a user-facing warning to stderr.
func Warn(msg string) {
	fmt.Fprintf(stderr, "%s %s\n", paint(sgrYellow, "Warning:", errColored), msg)
}

// Warnf prints a formatted user-facing warning to stderr.
func Warnf(format string, args ...any) {
	Warn(fmt.Sprintf(format, args...))
}
