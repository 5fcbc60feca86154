package linear

// Issue represents an issue from the Linear API.
type Issue struct {
	ID          string   `json:"id"`
	Identifier  string   `json:"identifier"` // e.g., "ENG-123"
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url"`
	Priority    int      `json:"priority"` // 0=no priority, 1=urgent, 2=high, 3=medium, 4=low
	Estimate    *float64 `json:"estimate,omitempty"`
	State       *State   `json:"state"`
	Team        *Team    `json:"team"`
	Assignee    *User    `json:"assignee"`
	Labels      *Labels  `json:"labels"`
	Project     *Project `json:"project"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

// LabelIDs returns the ids of the issue's labels in server order.
func (i *Issue) LabelIDs() []string {
	if i.Labels == nil {
		return nil
	}
	ids := make([]string, 0, len(i.Labels.Nodes))
	for _, l := range i.Labels.Nodes {
		ids = append(ids, l.ID)
	}
	return ids
}

// State represents a workflow state in Linear.
type State struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"` // "triage", "backlog", "unstarted", "started", "completed", "canceled"
	Color string `json:"color,omitempty"`
}

// User represents a user in Linear.
type User struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Active      *bool  `json:"active,omitempty"`
}

// Team represents a team in Linear.
type Team struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Labels represents paginated labels on an issue.
type Labels struct {
	Nodes []Label `json:"nodes"`
}

// Label represents a label in Linear.
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Project represents the project an issue belongs to.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PageInfo is the relay-style cursor of a connection.
type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type connection[T any] struct {
	Nodes    []T      `json:"nodes"`
	PageInfo PageInfo `json:"pageInfo"`
}

type viewerResponse struct {
	Viewer User `json:"viewer"`
}

type teamsResponse struct {
	Teams connection[Team] `json:"teams"`
}

type usersResponse struct {
	Users connection[User] `json:"users"`
}

type labelsResponse struct {
	IssueLabels connection[Label] `json:"issueLabels"`
}

type workflowStatesResponse struct {
	WorkflowStates connection[State] `json:"workflowStates"`
}

type issuesResponse struct {
	Issues connection[Issue] `json:"issues"`
}

type issueResponse struct {
	Issue *Issue `json:"issue"`
}

type issueSearchResponse struct {
	IssueSearch connection[Issue] `json:"issueSearch"`
}

type issueCreateResponse struct {
	IssueCreate struct {
		Success bool   `json:"success"`
		Issue   *Issue `json:"issue"`
	} `json:"issueCreate"`
}

type issueUpdateResponse struct {
	IssueUpdate struct {
		Success bool   `json:"success"`
		Issue   *Issue `json:"issue"`
	} `json:"issueUpdate"`
}
