// Package style provides consistent terminal styling for i18nhook output.
package style

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/teo/biosi-i18n/internal/constants"
)

var (
	// Success is used for files that were patched.
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#81C784"}).
		Bold(true)

	// Warning is used for files that could not be found.
	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#B26A00", Dark: "#FFD54F"}).
		Bold(true)

	// Error is used for failures.
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#E57373"}).
		Bold(true)

	// Info is used for dry-run notices.
	Info = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#1565C0", Dark: "#64B5F6"})

	// Dim is used for files that needed no changes and secondary text.
	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9E9E9E"})

	// Bold is used for headings.
	Bold = lipgloss.NewStyle().Bold(true)
)

var enabled = true

func init() {
	if os.Getenv(constants.EnvNoColor) != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		Disable()
	}
}

// Disable turns off all colors and text attributes.
func Disable() {
	enabled = false
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Enabled reports whether styled output is on.
func Enabled() bool {
	return enabled
}

// ErrorPrefix returns the marker printed before error lines.
func ErrorPrefix() string {
	return Error.Render("✗")
}

// WarningPrefix returns the marker printed before warning lines.
func WarningPrefix() string {
	return Warning.Render("⚠")
}

// PrintWarning prints a warning line to stderr.
func PrintWarning(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", WarningPrefix(), fmt.Sprintf(format, args...))
}

// PrintError prints an error line to stderr.
func PrintError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorPrefix(), fmt.Sprintf(format, args...))
}
