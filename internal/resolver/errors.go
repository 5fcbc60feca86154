package resolver

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks against the typed errors below.
var (
	ErrInvalidQuery = errors.New("invalid query")
	ErrNotFound     = errors.New("not found")
	ErrAmbiguous    = errors.New("ambiguous reference")
)

// ValidationError is returned when a query is empty after trimming.
// No fetch is performed in that case.
type ValidationError struct {
	Kind Kind
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s name cannot be empty", e.Kind.Title())
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidQuery }

// NotFoundError is returned when no candidate survives any tier.
type NotFoundError struct {
	Kind  Kind
	Query string
	// Scope is the id the directory was narrowed to (the team for states).
	Scope string
}

func (e *NotFoundError) Error() string {
	if e.Kind == KindState {
		return fmt.Sprintf("State '%s' not found for this team", e.Query)
	}
	return fmt.Sprintf("%s '%s' not found", e.Kind.Title(), e.Query)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// AmbiguousError is returned when the first tier with any match has more
// than one. Candidates always holds the complete set; only the message is
// truncated.
type AmbiguousError struct {
	Kind       Kind
	Query      string
	Tier       string
	Candidates []Candidate
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%s '%s' is ambiguous (%d matches): %s. %s",
		e.Kind.Title(), e.Query, len(e.Candidates), Render(e.Candidates), e.Hint())
}

func (e *AmbiguousError) Is(target error) bool { return target == ErrAmbiguous }

// Hint returns kind-specific guidance for narrowing the query.
func (e *AmbiguousError) Hint() string {
	switch e.Kind {
	case KindUser:
		return "Use a full email for an exact match"
	case KindLabel:
		return "Use the exact label name, including case"
	case KindTeam:
		return "Team keys should be unique; check the workspace team list with 'linear team list'"
	case KindState:
		return "Use the full state name"
	default:
		return "Use a more specific name"
	}
}
