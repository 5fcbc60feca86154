package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linear-cli/linear/internal/resolver"
)

func TestRunResolve(t *testing.T) {
	bodies := map[string]string{
		"Viewer":         viewerBody,
		"Teams":          teamsBody,
		"Users":          usersBody,
		"WorkflowStates": statesBody,
		"IssueLabels":    labelsBody,
	}
	tests := []struct {
		name  string
		kind  resolver.Kind
		query string
		team  string
		want  string
	}{
		{name: "team key any case", kind: resolver.KindTeam, query: "des", want: "t-des"},
		{name: "me", kind: resolver.KindUser, query: "ME", want: "u-me"},
		{name: "user email", kind: resolver.KindUser, query: "apark@co.com", want: "u-park"},
		{name: "user substring", kind: resolver.KindUser, query: "sam", want: "u-sam"},
		{name: "state in team", kind: resolver.KindState, query: "in progress", team: "ENG", want: "s-prog"},
		{name: "label exact case", kind: resolver.KindLabel, query: "bug", want: "l-bug2"},
		{name: "label any case", kind: resolver.KindLabel, query: "FRONTEND", want: "l-fe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, out, _ := newTestApp(t, bodies)
			require.NoError(t, runResolve(context.Background(), a, tt.kind, tt.query, tt.team))
			assert.Equal(t, tt.want+"\n", out.String())
		})
	}
}

func TestRunResolveJSON(t *testing.T) {
	withJSON(t)
	a, out, fake := newTestApp(t, map[string]string{
		"Teams":          teamsBody,
		"WorkflowStates": statesBody,
	})

	require.NoError(t, runResolve(context.Background(), a, resolver.KindState, "Done", "eng"))
	assert.Equal(t, []string{"Teams", "WorkflowStates"}, fake.ops())

	var got resolution
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, resolution{Kind: resolver.KindState, Query: "Done", ID: "s-done", TeamID: "t-eng"}, got)
}

func TestRunResolveErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("state without team", func(t *testing.T) {
		a, _, fake := newTestApp(t, map[string]string{})
		assert.Equal(t, errStateNeedsTeam, runResolve(ctx, a, resolver.KindState, "Done", ""))
		assert.Empty(t, fake.ops())
	})

	t.Run("unknown kind", func(t *testing.T) {
		a, _, fake := newTestApp(t, map[string]string{})
		err := runResolve(ctx, a, resolver.Kind("project"), "Q3", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown kind "project"`)
		assert.Empty(t, fake.ops())
	})

	t.Run("ambiguous user", func(t *testing.T) {
		a, out, _ := newTestApp(t, map[string]string{"Users": usersBody})
		err := runResolve(ctx, a, resolver.KindUser, "alex", "")
		assert.ErrorIs(t, err, resolver.ErrAmbiguous)
		assert.Contains(t, err.Error(), "Alex Kim <alex@co.com>, Alex Park <apark@co.com>")
		assert.Empty(t, out.String())
	})

	t.Run("empty user", func(t *testing.T) {
		a, _, fake := newTestApp(t, map[string]string{})
		err := runResolve(ctx, a, resolver.KindUser, "   ", "")
		assert.ErrorIs(t, err, resolver.ErrInvalidQuery)
		assert.Empty(t, fake.ops())
	})

	t.Run("missing team", func(t *testing.T) {
		a, _, _ := newTestApp(t, map[string]string{"Teams": teamsBody})
		err := runResolve(ctx, a, resolver.KindTeam, "OPS", "")
		assert.ErrorIs(t, err, resolver.ErrNotFound)
		assert.Equal(t, "Team 'OPS' not found", err.Error())
	})
}
