package linear

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/linear-cli/linear/internal/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// routeByOperation answers each request according to the operation name in
// its query.
func routeByOperation(t *testing.T, bodies map[string]string) func(recordedRequest) (int, string) {
	return func(req recordedRequest) (int, string) {
		op := operationName(req.Query)
		body, ok := bodies[op]
		if !ok {
			t.Errorf("unexpected operation %q", op)
			return http.StatusBadRequest, `{"errors":[{"message":"unexpected"}]}`
		}
		return http.StatusOK, body
	}
}

func TestDirectoryCandidates(t *testing.T) {
	client, fake := newFakeServer(t, routeByOperation(t, map[string]string{
		"Teams": `{"data":{"teams":{"nodes":[
			{"id":"t1","key":"ENG","name":"Engineering"},
			{"id":"t2","key":"DES","name":"Design"}]}}}`,
		"Users": `{"data":{"users":{"nodes":[
			{"id":"u1","name":"alex.kim","displayName":"Alex Kim","email":"alex@co.com","active":true}]}}}`,
		"WorkflowStates": `{"data":{"workflowStates":{"nodes":[
			{"id":"s1","name":"Todo","type":"unstarted"}]}}}`,
		"IssueLabels": `{"data":{"issueLabels":{"nodes":[
			{"id":"l1","name":"Bug"},{"id":"l2","name":"bug"}]}}}`,
		"Viewer": `{"data":{"viewer":{"id":"me1","name":"Ada","email":"ada@co.com","displayName":"ada"}}}`,
	}))
	dir := NewDirectory(client)
	ctx := context.Background()

	teams, err := dir.Teams(ctx)
	require.NoError(t, err)
	want := []resolver.Candidate{
		{Kind: resolver.KindTeam, ID: "t1", Key: "ENG", Name: "Engineering"},
		{Kind: resolver.KindTeam, ID: "t2", Key: "DES", Name: "Design"},
	}
	if diff := cmp.Diff(want, teams); diff != "" {
		t.Errorf("Teams() mismatch (-want +got):\n%s", diff)
	}

	users, err := dir.Users(ctx, 250)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, resolver.Candidate{
		Kind: resolver.KindUser, ID: "u1", Name: "alex.kim", DisplayName: "Alex Kim", Email: "alex@co.com",
	}, users[0])

	states, err := dir.WorkflowStates(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, []resolver.Candidate{{Kind: resolver.KindState, ID: "s1", Name: "Todo"}}, states)

	labels, err := dir.Labels(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bug", "bug"}, []string{labels[0].Name, labels[1].Name})

	viewer, err := dir.Viewer(ctx)
	require.NoError(t, err)
	assert.Equal(t, "me1", viewer.ID)
	assert.Equal(t, resolver.KindUser, viewer.Kind)

	reqs := fake.requests()
	require.Len(t, reqs, 5)
	// JSON numbers decode as float64.
	assert.Equal(t, float64(250), reqs[1].Variables["first"])
	assert.Equal(t, map[string]interface{}{
		"team": map[string]interface{}{"id": map[string]interface{}{"eq": "t1"}},
	}, reqs[2].Variables["filter"])
	assert.Equal(t, float64(50), reqs[3].Variables["first"])
}

func TestDirectoryErrorsAreNotWrapped(t *testing.T) {
	client, _ := newFakeServer(t, func(recordedRequest) (int, string) {
		return http.StatusInternalServerError, "upstream down"
	})
	dir := NewDirectory(client)

	_, err := dir.Labels(context.Background(), 10)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "API error: upstream down (status 500)", err.Error())
}

func TestGetViewerRequiresID(t *testing.T) {
	client, _ := newFakeServer(t, func(recordedRequest) (int, string) {
		return http.StatusOK, `{"data":{"viewer":{"id":""}}}`
	})

	_, err := client.GetViewer(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no user"))
}

func TestResolverOverDirectory(t *testing.T) {
	client, fake := newFakeServer(t, routeByOperation(t, map[string]string{
		"Users": `{"data":{"users":{"nodes":[
			{"id":"u1","displayName":"Alex Kim","email":"alex@co.com"},
			{"id":"u2","displayName":"Alex Park","email":"park@co.com"}]}}}`,
		"Viewer": `{"data":{"viewer":{"id":"me1","name":"Ada"}}}`,
	}))
	r := resolver.New(NewDirectory(client))
	ctx := context.Background()

	_, err := r.ResolveUser(ctx, "alex")
	var amb *resolver.AmbiguousError
	require.ErrorAs(t, err, &amb)
	assert.Contains(t, err.Error(), "Alex Kim <alex@co.com>, Alex Park <park@co.com>")

	id, err := r.ResolveUser(ctx, "park@co.com")
	require.NoError(t, err)
	assert.Equal(t, "u2", id)

	id, err = r.ResolveUser(ctx, "Me")
	require.NoError(t, err)
	assert.Equal(t, "me1", id)

	ops := make([]string, 0, 3)
	for _, req := range fake.requests() {
		ops = append(ops, operationName(req.Query))
	}
	assert.Equal(t, []string{"Users", "Users", "Viewer"}, ops)
}
