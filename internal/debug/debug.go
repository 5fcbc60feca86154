// Package debug carries the CLI's diagnostic output: LINEAR_DEBUG / --verbose
// tracing to stderr and --quiet suppression of informational stdout lines.
package debug

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	enabled     = os.Getenv("LINEAR_DEBUG") != ""
	verboseMode = false
	quietMode   = false

	outMu  sync.Mutex
	stderr io.Writer = os.Stderr
)

func Enabled() bool {
	return enabled || verboseMode
}

// SetVerbose enables verbose/debug output
func SetVerbose(verbose bool) {
	verboseMode = verbose
}

// SetQuiet enables quiet mode (suppress non-essential output)
func SetQuiet(quiet bool) {
	quietMode = quiet
}

// IsQuiet returns true if quiet mode is enabled
func IsQuiet() bool {
	return quietMode
}

// SetOutput redirects debug logging and returns a func restoring the
// previous writer.
func SetOutput(w io.Writer) (restore func()) {
	outMu.Lock()
	prev := stderr
	stderr = w
	outMu.Unlock()
	return func() {
		outMu.Lock()
		stderr = prev
		outMu.Unlock()
	}
}

func Logf(format string, args ...interface{}) {
	if !Enabled() {
		return
	}
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(stderr, format, args...)
}

// PrintNormal writes informational output to w unless quiet mode is on.
// Results a command was asked for should be written directly instead.
func PrintNormal(w io.Writer, format string, args ...interface{}) {
	if !quietMode {
		fmt.Fprintf(w, format, args...)
	}
}

// Redact masks a secret for log output, keeping a short prefix so keys can
// still be told apart.
func Redact(secret string) string {
	const keep = 8
	if secret == "" {
		return "(none)"
	}
	if len(secret) <= keep {
		return strings.Repeat("*", len(secret))
	}
	return secret[:keep] + strings.Repeat("*", 4)
}
