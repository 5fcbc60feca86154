package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// PagerOptions controls pager behavior
type PagerOptions struct {
	// NoPager disables the pager (--no-pager flag)
	NoPager bool
	// Out receives the content when no pager is used. Defaults to os.Stdout.
	Out io.Writer
}

// shouldUsePager determines if output should be piped to a pager.
// Paging is off for --no-pager, LINEAR_NO_PAGER, a custom writer, or a
// stdout that is not a TTY.
func shouldUsePager(opts PagerOptions) bool {
	if opts.NoPager {
		return false
	}

	if opts.Out != nil && opts.Out != io.Writer(os.Stdout) {
		return false
	}

	if os.Getenv("LINEAR_NO_PAGER") != "" {
		return false
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}

// pagerCommand splits LINEAR_PAGER, then PAGER, into argv. Both may carry
// arguments ("less -S").
func pagerCommand() []string {
	for _, env := range []string{"LINEAR_PAGER", "PAGER"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return fields
		}
	}
	return []string{"less"}
}

// fitsTerminal reports whether content is shorter than the terminal,
// leaving a line for the prompt.
func fitsTerminal(content string) bool {
	_, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || height <= 0 {
		return false
	}
	return strings.Count(content, "\n") < height-1
}

// ToPager writes content to opts.Out, or through the user's pager when
// stdout is a terminal the content does not fit on.
func ToPager(content string, opts PagerOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	if !shouldUsePager(opts) || fitsTerminal(content) {
		_, err := fmt.Fprint(out, content)
		return err
	}

	argv := pagerCommand()
	cmd := exec.Command(argv[0], argv[1:]...) // #nosec G204 - pager command is user-configurable by design
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	if os.Getenv("LESS") == "" {
		// Keep colours, quit on one screen, leave output on exit.
		cmd.Env = append(cmd.Env, "LESS=-RFX")
	}
	return cmd.Run()
}
