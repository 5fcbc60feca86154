package linear

import (
	"context"
	"fmt"

	"github.com/linear-cli/linear/internal/resolver"
)

// ListTeams fetches every team visible to the API key.
func (c *Client) ListTeams(ctx context.Context) ([]Team, error) {
	var resp teamsResponse
	if err := c.Execute(ctx, &GraphQLRequest{Query: teamsQuery}, &resp); err != nil {
		return nil, err
	}
	return resp.Teams.Nodes, nil
}

// ListUsers fetches at most limit workspace users.
func (c *Client) ListUsers(ctx context.Context, limit int) ([]User, error) {
	req := &GraphQLRequest{
		Query:     usersQuery,
		Variables: map[string]interface{}{"first": limit},
	}
	var resp usersResponse
	if err := c.Execute(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.Users.Nodes, nil
}

// ListLabels fetches at most limit issue labels.
func (c *Client) ListLabels(ctx context.Context, limit int) ([]Label, error) {
	req := &GraphQLRequest{
		Query:     labelsQuery,
		Variables: map[string]interface{}{"first": limit},
	}
	var resp labelsResponse
	if err := c.Execute(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.IssueLabels.Nodes, nil
}

// ListStates fetches the workflow states of one team.
func (c *Client) ListStates(ctx context.Context, teamID string) ([]State, error) {
	req := &GraphQLRequest{
		Query: workflowStatesQuery,
		Variables: map[string]interface{}{
			"filter": map[string]interface{}{
				"team": map[string]interface{}{
					"id": map[string]interface{}{"eq": teamID},
				},
			},
		},
	}
	var resp workflowStatesResponse
	if err := c.Execute(ctx, req, &resp); err != nil {
		return nil, err
	}
	return resp.WorkflowStates.Nodes, nil
}

// GetViewer fetches the user the API key belongs to.
func (c *Client) GetViewer(ctx context.Context) (*User, error) {
	var resp viewerResponse
	if err := c.Execute(ctx, &GraphQLRequest{Query: viewerQuery}, &resp); err != nil {
		return nil, err
	}
	if resp.Viewer.ID == "" {
		return nil, fmt.Errorf("viewer query returned no user")
	}
	return &resp.Viewer, nil
}

// Directory adapts a Client to resolver.Directory. Every call performs one
// request; nothing is cached.
type Directory struct {
	client *Client
}

var _ resolver.Directory = (*Directory)(nil)

// NewDirectory returns a resolver.Directory backed by c.
func NewDirectory(c *Client) *Directory {
	return &Directory{client: c}
}

func (d *Directory) Teams(ctx context.Context) ([]resolver.Candidate, error) {
	teams, err := d.client.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]resolver.Candidate, len(teams))
	for i, t := range teams {
		out[i] = TeamCandidate(t)
	}
	return out, nil
}

func (d *Directory) Users(ctx context.Context, limit int) ([]resolver.Candidate, error) {
	users, err := d.client.ListUsers(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]resolver.Candidate, len(users))
	for i, u := range users {
		out[i] = UserCandidate(u)
	}
	return out, nil
}

func (d *Directory) WorkflowStates(ctx context.Context, teamID string) ([]resolver.Candidate, error) {
	states, err := d.client.ListStates(ctx, teamID)
	if err != nil {
		return nil, err
	}
	out := make([]resolver.Candidate, len(states))
	for i, s := range states {
		out[i] = resolver.Candidate{Kind: resolver.KindState, ID: s.ID, Name: s.Name}
	}
	return out, nil
}

func (d *Directory) Labels(ctx context.Context, limit int) ([]resolver.Candidate, error) {
	labels, err := d.client.ListLabels(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]resolver.Candidate, len(labels))
	for i, l := range labels {
		out[i] = resolver.Candidate{Kind: resolver.KindLabel, ID: l.ID, Name: l.Name}
	}
	return out, nil
}

func (d *Directory) Viewer(ctx context.Context) (resolver.Candidate, error) {
	u, err := d.client.GetViewer(ctx)
	if err != nil {
		return resolver.Candidate{}, err
	}
	return UserCandidate(*u), nil
}

// TeamCandidate converts a team to a resolver candidate.
func TeamCandidate(t Team) resolver.Candidate {
	return resolver.Candidate{Kind: resolver.KindTeam, ID: t.ID, Key: t.Key, Name: t.Name}
}

// UserCandidate converts a user to a resolver candidate.
func UserCandidate(u User) resolver.Candidate {
	return resolver.Candidate{
		Kind:        resolver.KindUser,
		ID:          u.ID,
		Name:        u.Name,
		DisplayName: u.DisplayName,
		Email:       u.Email,
	}
}
