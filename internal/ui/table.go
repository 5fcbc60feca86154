package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/linear-cli/linear/internal/linear"
)

// Column bounds for the issue table, in terminal cells.
const (
	minTitleWidth       = 16
	preferredTitleWidth = 28
	maxTitleWidth       = 110
	maxIDWidth          = 16
	maxStateWidth       = 20
	maxAssigneeWidth    = 24
	priorityWidth       = 8
	tableOverhead       = 18
)

// TableOptions controls how tables are laid out.
type TableOptions struct {
	// Width is the total terminal width available. Zero means TerminalWidth().
	Width int
	// Hyperlinks turns issue identifiers into OSC 8 links to the issue URL.
	Hyperlinks bool
}

type issueWidths struct {
	id, title, state, assignee int
}

// AssigneeName returns the display name of an issue's assignee.
func AssigneeName(u *linear.User) string {
	switch {
	case u == nil:
		return "Unassigned"
	case u.DisplayName != "":
		return u.DisplayName
	case u.Name != "":
		return u.Name
	default:
		return "Unassigned"
	}
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

func stateName(s *linear.State) string {
	if s == nil {
		return Placeholder
	}
	return orPlaceholder(s.Name)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func maxWidth(issues []linear.Issue, floor int, field func(*linear.Issue) string) int {
	w := floor
	for i := range issues {
		w = max(w, runewidth.StringWidth(field(&issues[i])))
	}
	return w
}

func computeIssueWidths(issues []linear.Issue, total int) issueWidths {
	var w issueWidths
	w.id = clamp(maxWidth(issues, 2, func(i *linear.Issue) string { return orPlaceholder(i.Identifier) }), 2, maxIDWidth)
	w.state = clamp(maxWidth(issues, 5, func(i *linear.Issue) string { return stateName(i.State) }), 5, maxStateWidth)
	w.assignee = clamp(maxWidth(issues, 10, func(i *linear.Issue) string { return AssigneeName(i.Assignee) }), 10, maxAssigneeWidth)
	available := total - (w.id + w.state + w.assignee + priorityWidth + tableOverhead)
	if available >= preferredTitleWidth {
		w.title = min(available, maxTitleWidth)
	} else {
		w.title = max(available, minTitleWidth)
	}
	return w
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(MutedStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}

// IssueTable renders issues as a rounded table of ID, title, state,
// priority and assignee, sized to fit opts.Width.
func IssueTable(issues []linear.Issue, opts TableOptions) string {
	if len(issues) == 0 {
		return "No issues found."
	}
	width := opts.Width
	if width <= 0 {
		width = TerminalWidth()
	}
	w := computeIssueWidths(issues, width)

	t := newTable("ID", "Title", "State", "Priority", "Assignee")
	for _, issue := range issues {
		id := Truncate(orPlaceholder(issue.Identifier), w.id)
		if opts.Hyperlinks && issue.URL != "" {
			id = Hyperlink(id, issue.URL)
		}
		state := Placeholder
		if issue.State != nil {
			state = RenderState(Truncate(stateName(issue.State), w.state), issue.State.Type)
		}
		t.Row(
			id,
			Truncate(orPlaceholder(issue.Title), w.title),
			state,
			PriorityLabel(issue.Priority),
			Truncate(AssigneeName(issue.Assignee), w.assignee),
		)
	}
	return t.String()
}

// TeamTable renders teams as a rounded key/name table.
func TeamTable(teams []linear.Team) string {
	if len(teams) == 0 {
		return "No teams found."
	}
	t := newTable("Key", "Name")
	for _, team := range teams {
		t.Row(orPlaceholder(team.Key), orPlaceholder(team.Name))
	}
	return t.String()
}

// IssueDetail renders a single issue as a labelled block followed by its
// description. Description is passed pre-rendered so callers can choose
// markdown or plain output.
func IssueDetail(issue *linear.Issue, description string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", BoldStyle.Render(orPlaceholder(issue.Identifier)+"  "+orPlaceholder(issue.Title)))

	state := Placeholder
	if issue.State != nil {
		state = RenderState(issue.State.Name, issue.State.Type)
	}
	team := Placeholder
	if issue.Team != nil {
		team = orPlaceholder(issue.Team.Name)
	}
	project := Placeholder
	if issue.Project != nil {
		project = orPlaceholder(issue.Project.Name)
	}

	fmt.Fprintf(&b, "State:    %s\n", state)
	fmt.Fprintf(&b, "Priority: %s\n", RenderPriority(issue.Priority))
	fmt.Fprintf(&b, "Team:     %s\n", team)
	fmt.Fprintf(&b, "Assignee: %s\n", AssigneeName(issue.Assignee))
	if issue.Labels != nil && len(issue.Labels.Nodes) > 0 {
		names := make([]string, 0, len(issue.Labels.Nodes))
		for _, l := range issue.Labels.Nodes {
			names = append(names, l.Name)
		}
		fmt.Fprintf(&b, "Labels:   %s\n", strings.Join(names, ", "))
	}
	fmt.Fprintf(&b, "Project:  %s\n", project)
	url := issue.URL
	if canonical, ok := linear.CanonicalizeIssueURL(url); ok {
		url = canonical
	}
	fmt.Fprintf(&b, "URL:      %s\n", orPlaceholder(url))

	if strings.TrimSpace(description) != "" {
		b.WriteString("\n")
		b.WriteString(RenderHeader("Description"))
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(description, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}
