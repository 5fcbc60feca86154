package resolver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTierPredicates(t *testing.T) {
	tests := []struct {
		name  string
		tier  Tier
		c     Candidate
		query string
		want  bool
	}{
		{"team key folds case", teamKeyTier, Candidate{Key: "ENG"}, "eng", true},
		{"team name ignored", teamKeyTier, Candidate{Key: "ENG", Name: "Engineering"}, "Engineering", false},
		{"user exact on email", userExactTier, Candidate{Email: "A@B.io"}, "a@b.io", true},
		{"user exact not prefix", userExactTier, Candidate{Name: "Alexander"}, "alex", false},
		{"user fuzzy substring", userFuzzyTier, Candidate{Name: "Alexander"}, "XAND", true},
		{"user fuzzy empty field skipped", userFuzzyTier, Candidate{Name: ""}, "", false},
		{"state folds case", stateNameTier, Candidate{Name: "In Review"}, "in review", true},
		{"label exact is case sensitive", labelExactTier, Candidate{Name: "Bug"}, "bug", false},
		{"label exact hit", labelExactTier, Candidate{Name: "Bug"}, "Bug", true},
		{"label fold", labelFoldTier, Candidate{Name: "Bug"}, "BUG", true},
		{"unicode fold", stateNameTier, Candidate{Name: "Überprüfung"}, "überprüfung", true},
		{"user exact long s", userExactTier, Candidate{Name: "Sam"}, "ſam", true},
		{"user fuzzy long s", userFuzzyTier, Candidate{Name: "Sam Lee"}, "ſam", true},
		{"user fuzzy kelvin sign", userFuzzyTier, Candidate{Name: "Kim Park"}, "\u212Aim", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tier.Matches(tt.c, tt.query); got != tt.want {
				t.Errorf("Matches(%+v, %q) = %v, want %v", tt.c, tt.query, got, tt.want)
			}
		})
	}
}

// Whatever the exact tier accepts, the substring tier must accept too.
func TestUserFuzzyTierCoversExactTier(t *testing.T) {
	names := []string{"Sam", "Kim", "Straße", "Ωmega", "ǅemal", "İlker"}
	queries := []string{"ſam", "\u212Aim", "STRASSE", "straße", "ωMEGA", "ǆemal", "ǄEMAL", "i̇lker", "İLKER"}
	for _, name := range names {
		c := Candidate{Name: name}
		for _, q := range queries {
			if userExactTier.Matches(c, q) && !userFuzzyTier.Matches(c, q) {
				t.Errorf("exact tier matched %q for %q but substring tier did not", name, q)
			}
		}
	}
}

func TestFoldString(t *testing.T) {
	if got, want := foldString("ſam"), foldString("SAM"); got != want {
		t.Errorf("foldString(ſam) = %q, foldString(SAM) = %q", got, want)
	}
	if got, want := foldString("\u212A"), foldString("k"); got != want {
		t.Errorf("foldString(Kelvin) = %q, foldString(k) = %q", got, want)
	}
}

func TestMatchPreservesOrder(t *testing.T) {
	candidates := []Candidate{
		{ID: "3", Name: "Platform"},
		{ID: "1", Name: "platform"},
		{ID: "2", Name: "Infra"},
		{ID: "4", Name: "PLATFORM"},
	}

	got := Match("platform", candidates, labelFoldTier)
	want := []Candidate{candidates[0], candidates[1], candidates[3]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Match() mismatch (-want +got):\n%s", diff)
	}

	if got := Match("nothing", candidates, labelFoldTier); got != nil {
		t.Errorf("Match() = %v, want nil", got)
	}
}

func TestTiersFor(t *testing.T) {
	names := func(k Kind) []string {
		var out []string
		for _, tier := range TiersFor(k) {
			out = append(out, tier.Name)
		}
		return out
	}

	want := map[Kind][]string{
		KindTeam:  {"key"},
		KindUser:  {"exact", "substring"},
		KindState: {"name"},
		KindLabel: {"case-sensitive", "case-insensitive"},
	}
	for kind, tiers := range want {
		if diff := cmp.Diff(tiers, names(kind)); diff != "" {
			t.Errorf("TiersFor(%s) mismatch (-want +got):\n%s", kind, diff)
		}
	}

	if got := TiersFor(Kind("project")); len(got) != 0 {
		t.Errorf("TiersFor(project) = %v, want none", got)
	}
}
