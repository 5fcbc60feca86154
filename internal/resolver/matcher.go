package resolver

import (
	"strings"
	"unicode"
)

// Tier is one matching strategy. Tiers for a kind are tried in order and the
// first tier with any match decides the outcome.
type Tier struct {
	// Name is a short label used in debug output and ambiguity errors.
	Name   string
	fields []field
	pred   func(value, query string) bool
}

func equalFold(value, query string) bool { return strings.EqualFold(value, query) }

func equalExact(value, query string) bool { return value == query }

// containsFold reports whether query occurs in value under the same simple
// case folding strings.EqualFold applies, so every exact-tier hit is also a
// substring-tier hit.
func containsFold(value, query string) bool {
	return strings.Contains(foldString(value), foldString(query))
}

// foldString maps each rune to the smallest rune of its case-folding orbit.
func foldString(s string) string {
	return strings.Map(foldRune, s)
}

func foldRune(r rune) rune {
	lo := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < lo {
			lo = f
		}
	}
	return lo
}

var (
	teamKeyTier = Tier{Name: "key", fields: searchFields[KindTeam], pred: equalFold}

	userExactTier = Tier{Name: "exact", fields: searchFields[KindUser], pred: equalFold}
	userFuzzyTier = Tier{Name: "substring", fields: searchFields[KindUser], pred: containsFold}

	stateNameTier = Tier{Name: "name", fields: searchFields[KindState], pred: equalFold}

	labelExactTier = Tier{Name: "case-sensitive", fields: searchFields[KindLabel], pred: equalExact}
	labelFoldTier  = Tier{Name: "case-insensitive", fields: searchFields[KindLabel], pred: equalFold}
)

var kindTiers = map[Kind][]Tier{
	KindTeam:  {teamKeyTier},
	KindUser:  {userExactTier, userFuzzyTier},
	KindState: {stateNameTier},
	KindLabel: {labelExactTier, labelFoldTier},
}

// TiersFor returns the ordered tiers for kind.
func TiersFor(kind Kind) []Tier {
	return kindTiers[kind]
}

// Matches reports whether any of the tier's fields on c satisfies the tier
// predicate for query.
func (t Tier) Matches(c Candidate, query string) bool {
	for _, f := range t.fields {
		v := f(c)
		if v == "" {
			continue
		}
		if t.pred(v, query) {
			return true
		}
	}
	return false
}

// Match returns the candidates satisfying tier, in input order.
func Match(query string, candidates []Candidate, tier Tier) []Candidate {
	var out []Candidate
	for _, c := range candidates {
		if tier.Matches(c, query) {
			out = append(out, c)
		}
	}
	return out
}
