package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/linear-cli/linear/internal/resolver"
)

// jsonError is the --json shape of a failed command.
type jsonError struct {
	Error      string               `json:"error"`
	Code       string               `json:"code,omitempty"`
	Hint       string               `json:"hint,omitempty"`
	Candidates []resolver.Candidate `json:"candidates,omitempty"`
}

// outputJSON writes data as pretty-printed JSON.
func outputJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	return nil
}

// outputJSONError writes err as a JSON object. Ambiguity errors include
// every candidate, not just the preview in the message.
func outputJSONError(w io.Writer, err error) {
	obj := jsonError{
		Error: err.Error(),
		Code:  errorCode(err),
		Hint:  errorHint(err),
	}
	var amb *resolver.AmbiguousError
	if errors.As(err, &amb) {
		obj.Candidates = amb.Candidates
		obj.Hint = amb.Hint()
	}
	if encErr := outputJSON(w, obj); encErr != nil {
		// Best effort: fall back to plain text.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}
