package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"

	"github.com/linear-cli/linear/internal/config"
	"github.com/linear-cli/linear/internal/linear"
	"github.com/linear-cli/linear/internal/resolver"
)

const exitCodeCanceled = 130

// Error codes reported in --json error objects.
const (
	codeNotFound         = "not_found"
	codeAmbiguous        = "ambiguous"
	codeInvalidQuery     = "invalid_query"
	codeNotAuthenticated = "not_authenticated"
	codeAPI              = "api"
)

const hintNotAuthenticated = "Run `linear auth` or set LINEAR_API_KEY"

// osExit is replaced in tests.
var osExit = os.Exit

// exit flushes telemetry before leaving with code.
func exit(code int) {
	finish()
	osExit(code)
}

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	hintLabel  = color.New(color.FgCyan)
	warnLabel  = color.New(color.FgYellow, color.Bold)
)

// FatalError writes an error message to stderr and exits with code 1.
// Use this for fatal errors that prevent the command from completing.
//
// Example:
//
//	if err := validateFlags(); err != nil {
//	    FatalError("%v", err)
//	}
func FatalError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s "+format+"\n", append([]interface{}{errorLabel.Sprint("Error:")}, args...)...)
	exit(1)
}

// FatalErrorWithHint writes an error message with a hint to stderr and exits.
// Use this when you can provide an actionable suggestion to fix the error.
//
// Example:
//
//	FatalErrorWithHint("not authenticated", "Run `linear auth` or set LINEAR_API_KEY")
func FatalErrorWithHint(message, hint string) {
	writeErrorWithHint(os.Stderr, message, hint)
	exit(1)
}

// WarnError writes a warning message to stderr and returns.
// Use this for optional features (telemetry, config files) whose failure
// should not stop the command.
func WarnError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s "+format+"\n", append([]interface{}{warnLabel.Sprint("Warning:")}, args...)...)
}

func writeErrorWithHint(w io.Writer, message, hint string) {
	fmt.Fprintf(w, "%s %s\n", errorLabel.Sprint("Error:"), message)
	if hint != "" {
		fmt.Fprintf(w, "%s %s\n", hintLabel.Sprint("Hint:"), hint)
	}
}

// errorCode classifies err for --json output. Unknown errors get no code.
func errorCode(err error) string {
	var apiErr *linear.APIError
	var gqlErrs linear.GraphQLErrors
	switch {
	case errors.Is(err, resolver.ErrAmbiguous):
		return codeAmbiguous
	case errors.Is(err, resolver.ErrNotFound):
		return codeNotFound
	case errors.Is(err, resolver.ErrInvalidQuery):
		return codeInvalidQuery
	case errors.Is(err, config.ErrNotAuthenticated):
		return codeNotAuthenticated
	case errors.As(err, &apiErr), errors.As(err, &gqlErrs), errors.Is(err, linear.ErrNoData):
		return codeAPI
	default:
		return ""
	}
}

// errorHint returns follow-up guidance printed below the error. Ambiguity
// errors already carry their hint in the message.
func errorHint(err error) string {
	var apiErr *linear.APIError
	switch {
	case errors.Is(err, config.ErrNotAuthenticated):
		return hintNotAuthenticated
	case errors.As(err, &apiErr) && (apiErr.StatusCode == 401 || apiErr.StatusCode == 403):
		return "The API key was rejected. " + hintNotAuthenticated
	default:
		return ""
	}
}

func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, huh.ErrUserAborted)
}

// exitWithError reports err in the format selected by --json and exits.
func exitWithError(err error) {
	if isCanceled(err) {
		exit(exitCodeCanceled)
		return
	}
	if jsonOutput {
		outputJSONError(os.Stderr, err)
		exit(1)
		return
	}
	if hint := errorHint(err); hint != "" {
		FatalErrorWithHint(err.Error(), hint)
		return
	}
	FatalError("%v", err)
}
