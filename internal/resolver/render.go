package resolver

import (
	"fmt"
	"strings"
)

// PreviewLimit is the number of candidates shown in an ambiguity message.
const PreviewLimit = 5

// Render formats candidates for an error message. Only the first
// PreviewLimit entries are shown; the rest are summarized as "(+N more)".
func Render(candidates []Candidate) string {
	shown := candidates
	if len(shown) > PreviewLimit {
		shown = shown[:PreviewLimit]
	}

	parts := make([]string, 0, len(shown))
	for _, c := range shown {
		parts = append(parts, renderCandidate(c))
	}

	out := strings.Join(parts, ", ")
	if rest := len(candidates) - len(shown); rest > 0 {
		out += fmt.Sprintf(" (+%d more)", rest)
	}
	return out
}

func renderCandidate(c Candidate) string {
	switch c.Kind {
	case KindUser:
		name := displayName(c, "Unknown")
		if c.Email != "" {
			return fmt.Sprintf("%s <%s>", name, c.Email)
		}
		return name
	case KindTeam:
		key := c.Key
		if key == "" {
			key = "?"
		}
		if c.Name != "" {
			return fmt.Sprintf("%s (%s)", key, c.Name)
		}
		return key
	default:
		// Labels and states can share names exactly, so the id is part of the
		// preview.
		name := c.Name
		if name == "" {
			name = "Unnamed"
		}
		return fmt.Sprintf("%s [%s]", name, c.ID)
	}
}
