package linear

import (
	"context"
	"fmt"
	"time"
)

// closedStateTypes are hidden from issue lists unless IncludeClosed is set.
var closedStateTypes = []string{"completed", "canceled"}

// IssueFilter narrows ListIssues. Zero fields do not filter.
type IssueFilter struct {
	TeamKey       string
	StateName     string
	AssigneeID    string
	Priority      *int
	Label         string
	Project       string
	IncludeClosed bool
	UpdatedSince  time.Time
}

// GraphQL returns the IssueFilter input object for f.
func (f IssueFilter) GraphQL() map[string]interface{} {
	filter := map[string]interface{}{}

	if f.TeamKey != "" {
		filter["team"] = map[string]interface{}{
			"key": map[string]interface{}{"eqIgnoreCase": f.TeamKey},
		}
	}

	if f.StateName != "" {
		filter["state"] = map[string]interface{}{
			"name": map[string]interface{}{"eqIgnoreCase": f.StateName},
		}
	} else if !f.IncludeClosed {
		filter["state"] = map[string]interface{}{
			"type": map[string]interface{}{"nin": closedStateTypes},
		}
	}

	if f.AssigneeID != "" {
		filter["assignee"] = map[string]interface{}{
			"id": map[string]interface{}{"eq": f.AssigneeID},
		}
	}

	if f.Priority != nil {
		filter["priority"] = map[string]interface{}{"eq": *f.Priority}
	}

	if f.Label != "" {
		filter["labels"] = map[string]interface{}{
			"some": map[string]interface{}{
				"name": map[string]interface{}{"eqIgnoreCase": f.Label},
			},
		}
	}

	if f.Project != "" {
		filter["project"] = map[string]interface{}{
			"name": map[string]interface{}{"containsIgnoreCase": f.Project},
		}
	}

	if !f.UpdatedSince.IsZero() {
		filter["updatedAt"] = map[string]interface{}{
			"gte": f.UpdatedSince.UTC().Format(time.RFC3339),
		}
	}

	return filter
}

// ListIssues fetches one page of at most limit issues matching filter,
// most recently updated first.
func (c *Client) ListIssues(ctx context.Context, filter IssueFilter, limit int) ([]Issue, error) {
	req := &GraphQLRequest{
		Query: issuesQuery,
		Variables: map[string]interface{}{
			"filter": filter.GraphQL(),
			"first":  limit,
		},
	}
	var resp issuesResponse
	if err := c.Execute(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch issues: %w", err)
	}
	return resp.Issues.Nodes, nil
}

// GetIssue fetches one issue by UUID or identifier (e.g. "ENG-123").
func (c *Client) GetIssue(ctx context.Context, id string) (*Issue, error) {
	req := &GraphQLRequest{
		Query:     issueQuery,
		Variables: map[string]interface{}{"id": id},
	}
	var resp issueResponse
	if err := c.Execute(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch issue %s: %w", id, err)
	}
	if resp.Issue == nil {
		return nil, fmt.Errorf("issue %s not found", id)
	}
	return resp.Issue, nil
}

// SearchIssues runs a full-text issue search.
func (c *Client) SearchIssues(ctx context.Context, query string, limit int) ([]Issue, error) {
	req := &GraphQLRequest{
		Query: issueSearchQuery,
		Variables: map[string]interface{}{
			"query": query,
			"first": limit,
		},
	}
	var resp issueSearchResponse
	if err := c.Execute(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to search issues: %w", err)
	}
	return resp.IssueSearch.Nodes, nil
}

// CreateIssue creates a new issue in Linear.
func (c *Client) CreateIssue(ctx context.Context, in *IssueCreateInput) (*Issue, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	req := &GraphQLRequest{
		Query:     issueCreateMutation,
		Variables: map[string]interface{}{"input": in},
	}
	var resp issueCreateResponse
	if err := c.Execute(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}
	if !resp.IssueCreate.Success || resp.IssueCreate.Issue == nil {
		return nil, fmt.Errorf("issue creation reported as unsuccessful")
	}
	return resp.IssueCreate.Issue, nil
}

// UpdateIssue updates an existing issue in Linear.
func (c *Client) UpdateIssue(ctx context.Context, id string, in *IssueUpdateInput) (*Issue, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	req := &GraphQLRequest{
		Query: issueUpdateMutation,
		Variables: map[string]interface{}{
			"id":    id,
			"input": in.Fields(),
		},
	}
	var resp issueUpdateResponse
	if err := c.Execute(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to update issue: %w", err)
	}
	if !resp.IssueUpdate.Success || resp.IssueUpdate.Issue == nil {
		return nil, fmt.Errorf("issue update reported as unsuccessful")
	}
	return resp.IssueUpdate.Issue, nil
}
