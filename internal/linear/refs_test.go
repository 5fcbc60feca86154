package linear

import "testing"

func TestCanonicalizeIssueURL(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
		ok   bool
	}{
		{
			name: "slugged url",
			ref:  "https://linear.app/acme/issue/ENG-93/fix-login-redirect",
			want: "https://linear.app/acme/issue/ENG-93",
			ok:   true,
		},
		{
			name: "canonical url",
			ref:  "https://linear.app/acme/issue/ENG-93",
			want: "https://linear.app/acme/issue/ENG-93",
			ok:   true,
		},
		{
			name: "query and fragment dropped",
			ref:  "https://linear.app/acme/issue/ENG-7/title?foo=bar#comment-1",
			want: "https://linear.app/acme/issue/ENG-7",
			ok:   true,
		},
		{
			name: "not linear",
			ref:  "https://example.com/issues/ENG-93",
			want: "",
			ok:   false,
		},
		{
			name: "project url",
			ref:  "https://linear.app/acme/project/roadmap-123",
			want: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		got, ok := CanonicalizeIssueURL(tt.ref)
		if ok != tt.ok {
			t.Fatalf("%s: ok=%v, want %v", tt.name, ok, tt.ok)
		}
		if got != tt.want {
			t.Fatalf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestExtractIdentifier(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{
			name: "standard URL",
			ref:  "https://linear.app/team/issue/PROJ-123",
			want: "PROJ-123",
		},
		{
			name: "URL with slug",
			ref:  "https://linear.app/team/issue/PROJ-456/some-title-here",
			want: "PROJ-456",
		},
		{
			name: "URL with trailing slash",
			ref:  "https://linear.app/team/issue/ABC-789/",
			want: "ABC-789",
		},
		{
			name: "non-linear URL",
			ref:  "https://jira.example.com/browse/PROJ-123",
			want: "",
		},
		{
			name: "empty string",
			ref:  "",
			want: "",
		},
		{
			name: "malformed URL",
			ref:  "not-a-url",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractIdentifier(tt.ref)
			if got != tt.want {
				t.Errorf("ExtractIdentifier(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestIsIssueURL(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{"https://linear.app/team/issue/PROJ-123", true},
		{"https://linear.app/team/issue/PROJ-123/slug", true},
		{"https://jira.example.com/browse/PROJ-123", false},
		{"https://github.com/org/repo/issues/123", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got := IsIssueURL(tt.ref)
			if got != tt.want {
				t.Errorf("IsIssueURL(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestNormalizeIssueRef(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"ENG-123", "ENG-123"},
		{"eng-123", "ENG-123"},
		{"  ops2-9 ", "OPS2-9"},
		{"https://linear.app/acme/issue/eng-42/fix-login", "ENG-42"},
		{"5b2f0c2e-8f0a-4c1e-9f3b-2d8a1e7c6b10", "5b2f0c2e-8f0a-4c1e-9f3b-2d8a1e7c6b10"},
		{"ENG-", "ENG-"},
	}
	for _, tt := range tests {
		if got := NormalizeIssueRef(tt.ref); got != tt.want {
			t.Errorf("NormalizeIssueRef(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}
