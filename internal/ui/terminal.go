package ui

import (
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultTerminalWidth is used when stdout is not a terminal and COLUMNS is unset.
const DefaultTerminalWidth = 120

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsStdinTerminal reports whether interactive input is possible.
func IsStdinTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ShouldUseColor follows the NO_COLOR and CLICOLOR conventions:
//   - NO_COLOR (any value) disables color
//   - CLICOLOR=0 disables color
//   - CLICOLOR_FORCE (non-zero) enables color even when piped
//
// Otherwise color is used when stdout is a terminal that supports it.
func ShouldUseColor() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("CLICOLOR") == "0" {
		return false
	}
	if force := os.Getenv("CLICOLOR_FORCE"); force != "" && force != "0" {
		return true
	}
	if !IsTerminal() {
		return false
	}
	return termenv.NewOutput(os.Stdout).EnvColorProfile() != termenv.Ascii
}

// ShouldUseEmoji reports whether status icons should be printed.
func ShouldUseEmoji() bool {
	if os.Getenv("LINEAR_NO_EMOJI") != "" {
		return false
	}
	return IsTerminal()
}

// IsAgentMode reports whether output is consumed by an automated agent,
// in which case decorations like markdown rendering are skipped.
func IsAgentMode() bool {
	v := os.Getenv("LINEAR_AGENT_MODE")
	return v == "1" || v == "true"
}

// ApplyColorProfile aligns lipgloss with ShouldUseColor so that piped
// output stays free of escape sequences.
func ApplyColorProfile() {
	if !ShouldUseColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	if !IsTerminal() {
		// CLICOLOR_FORCE on a pipe: lipgloss would otherwise detect Ascii.
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

// TerminalWidth returns the width of stdout, falling back to COLUMNS and
// then DefaultTerminalWidth.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return DefaultTerminalWidth
}

// SupportsHyperlinks reports whether OSC 8 links can be emitted.
func SupportsHyperlinks() bool {
	return IsTerminal() && os.Getenv("TERM") != "dumb"
}

// Hyperlink wraps label in an OSC 8 escape pointing at url.
func Hyperlink(label, url string) string {
	return "\x1b]8;;" + url + "\x1b\\" + label + "\x1b]8;;\x1b\\"
}
