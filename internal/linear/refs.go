package linear

import (
	"net/url"
	"regexp"
	"strings"
)

var identifierPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_]*)-([0-9]+)$`)

// IsIssueURL reports whether ref looks like a Linear issue URL.
func IsIssueURL(ref string) bool {
	return strings.Contains(ref, "linear.app/") && strings.Contains(ref, "/issue/")
}

// ExtractIdentifier extracts the issue identifier (e.g., "ENG-123") from a
// Linear issue URL such as https://linear.app/acme/issue/ENG-123/some-title.
func ExtractIdentifier(ref string) string {
	if !IsIssueURL(ref) {
		return ""
	}
	parts := strings.Split(ref, "/")
	for i, part := range parts {
		if part == "issue" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

// CanonicalizeIssueURL strips the title slug, query and fragment from a
// Linear issue URL.
func CanonicalizeIssueURL(ref string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil || u.Host != "linear.app" {
		return "", false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 3 || parts[1] != "issue" || parts[0] == "" || parts[2] == "" {
		return "", false
	}
	return "https://linear.app/" + parts[0] + "/issue/" + parts[2], true
}

// NormalizeIssueRef accepts an identifier ("eng-123"), an issue UUID or a
// pasted issue URL and returns the value to pass as the issue id.
// Identifiers are upper-cased; anything else is returned trimmed.
func NormalizeIssueRef(ref string) string {
	ref = strings.TrimSpace(ref)
	if IsIssueURL(ref) {
		if id := ExtractIdentifier(ref); id != "" {
			ref = id
		}
	}
	if m := identifierPattern.FindStringSubmatch(ref); m != nil {
		return strings.ToUpper(m[1]) + "-" + m[2]
	}
	return ref
}
