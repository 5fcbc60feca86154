package resolver

// Kind identifies which directory a candidate came from.
type Kind string

const (
	KindTeam  Kind = "team"
	KindUser  Kind = "user"
	KindState Kind = "state"
	KindLabel Kind = "label"
)

// Title returns the capitalized kind name used in user-facing messages.
func (k Kind) Title() string {
	switch k {
	case KindTeam:
		return "Team"
	case KindUser:
		return "User"
	case KindState:
		return "State"
	case KindLabel:
		return "Label"
	default:
		return string(k)
	}
}

// Candidate is a directory record the resolver can match against.
// Empty searchable fields are treated as absent and never match.
type Candidate struct {
	Kind        Kind   `json:"kind"`
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
	Key         string `json:"key,omitempty"`
}

// field reads one searchable value from a candidate.
type field func(Candidate) string

func fieldKey(c Candidate) string         { return c.Key }
func fieldName(c Candidate) string        { return c.Name }
func fieldDisplayName(c Candidate) string { return c.DisplayName }
func fieldEmail(c Candidate) string       { return c.Email }

// searchFields lists, per kind and in priority order, the fields a query is
// compared against.
var searchFields = map[Kind][]field{
	KindTeam:  {fieldKey},
	KindUser:  {fieldDisplayName, fieldName, fieldEmail},
	KindState: {fieldName},
	KindLabel: {fieldName},
}

// displayName returns the best human label for a candidate, or fallback.
func displayName(c Candidate, fallback string) string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	if c.Name != "" {
		return c.Name
	}
	return fallback
}
