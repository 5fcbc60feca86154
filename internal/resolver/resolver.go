// Package resolver turns human references to Linear teams, users, workflow
// states and labels into the opaque ids the API expects.
//
// Each kind has an ordered list of match tiers. Tiers are evaluated lazily:
// the first tier that matches anything decides the result, so an exact hit is
// never displaced by a fuzzy one and an ambiguous exact tier is never
// rescued by a later tier.
package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/linear-cli/linear/internal/debug"
)

const (
	// DefaultLookupLimit bounds the user and label pages fetched per resolution.
	DefaultLookupLimit = 250

	// SentinelMe resolves to the authenticated user without a directory lookup.
	SentinelMe = "me"
)

// Directory fetches one snapshot of candidates for a kind. Implementations
// must return candidates in a deterministic order (server order).
type Directory interface {
	Teams(ctx context.Context) ([]Candidate, error)
	Users(ctx context.Context, limit int) ([]Candidate, error)
	WorkflowStates(ctx context.Context, teamID string) ([]Candidate, error)
	Labels(ctx context.Context, limit int) ([]Candidate, error)
	Viewer(ctx context.Context) (Candidate, error)
}

// Resolver maps human references to ids. It holds no state between calls;
// every resolution works on its own freshly fetched snapshot.
type Resolver struct {
	dir         Directory
	lookupLimit int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLookupLimit overrides DefaultLookupLimit. Values < 1 are ignored.
func WithLookupLimit(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.lookupLimit = n
		}
	}
}

// New creates a Resolver backed by dir.
func New(dir Directory, opts ...Option) *Resolver {
	r := &Resolver{dir: dir, lookupLimit: DefaultLookupLimit}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveTeam returns the id of the team whose key equals key (any case).
func (r *Resolver) ResolveTeam(ctx context.Context, key string) (string, error) {
	teams, err := r.dir.Teams(ctx)
	if err != nil {
		return "", err
	}
	return reduce(KindTeam, key, "", teams)
}

// ResolveUser returns the id of the user matching query by display name,
// name or email. The literal "me" (any case) resolves to the viewer.
func (r *Resolver) ResolveUser(ctx context.Context, query string) (string, error) {
	// The sentinel is checked on the raw input, before trimming.
	if strings.EqualFold(query, SentinelMe) {
		viewer, err := r.dir.Viewer(ctx)
		if err != nil {
			return "", err
		}
		if viewer.ID == "" {
			return "", fmt.Errorf("viewer lookup returned no user id")
		}
		debug.Logf("resolver: user %q -> viewer %s\n", query, viewer.ID)
		return viewer.ID, nil
	}

	if strings.TrimSpace(query) == "" {
		return "", &ValidationError{Kind: KindUser}
	}

	users, err := r.dir.Users(ctx, r.lookupLimit)
	if err != nil {
		return "", err
	}
	return reduce(KindUser, query, "", users)
}

// ResolveState returns the id of the workflow state of teamID whose name
// equals name (any case).
func (r *Resolver) ResolveState(ctx context.Context, teamID, name string) (string, error) {
	states, err := r.dir.WorkflowStates(ctx, teamID)
	if err != nil {
		return "", err
	}
	return reduce(KindState, name, teamID, states)
}

// ResolveLabel returns the id of the label named name. An exact,
// case-sensitive match is preferred over a case-insensitive one.
func (r *Resolver) ResolveLabel(ctx context.Context, name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", &ValidationError{Kind: KindLabel}
	}

	labels, err := r.dir.Labels(ctx, r.lookupLimit)
	if err != nil {
		return "", err
	}
	return reduce(KindLabel, name, "", labels)
}

// Resolve dispatches on kind. scope is the team id for KindState and is
// ignored otherwise.
func (r *Resolver) Resolve(ctx context.Context, kind Kind, query, scope string) (string, error) {
	switch kind {
	case KindTeam:
		return r.ResolveTeam(ctx, query)
	case KindUser:
		return r.ResolveUser(ctx, query)
	case KindState:
		return r.ResolveState(ctx, scope, query)
	case KindLabel:
		return r.ResolveLabel(ctx, query)
	default:
		return "", fmt.Errorf("unknown kind %q", kind)
	}
}

// reduce walks the tiers for kind and applies the one/many/none rule to the
// first tier that matches anything.
func reduce(kind Kind, query, scope string, candidates []Candidate) (string, error) {
	q := strings.TrimSpace(query)
	for _, tier := range TiersFor(kind) {
		matches := Match(q, candidates, tier)
		switch len(matches) {
		case 0:
			continue
		case 1:
			debug.Logf("resolver: %s %q -> %s (tier %s, %d candidates)\n",
				kind, query, matches[0].ID, tier.Name, len(candidates))
			return matches[0].ID, nil
		default:
			debug.Logf("resolver: %s %q ambiguous in tier %s (%d matches)\n",
				kind, query, tier.Name, len(matches))
			return "", &AmbiguousError{Kind: kind, Query: query, Tier: tier.Name, Candidates: matches}
		}
	}
	return "", &NotFoundError{Kind: kind, Query: query, Scope: scope}
}
