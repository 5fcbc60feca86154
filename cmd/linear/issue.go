package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/linear-cli/linear/internal/config"
	"github.com/linear-cli/linear/internal/debug"
	"github.com/linear-cli/linear/internal/linear"
	"github.com/linear-cli/linear/internal/resolver"
	"github.com/linear-cli/linear/internal/timeparsing"
	"github.com/linear-cli/linear/internal/ui"
)

var issueCmd = &cobra.Command{
	Use:     "issue",
	Aliases: []string{"issues", "i"},
	GroupID: GroupIssues,
	Short:   "Work with issues",
}

// issueListOptions mirrors the `issue list` flags.
type issueListOptions struct {
	team         string
	state        string
	assignee     string
	mine         bool
	allAssignees bool
	priority     *int
	label        string
	project      string
	all          bool
	limit        int
	updatedSince string
	// localTeam and localAssignee come from .linear.yaml.
	localTeam     string
	localAssignee string
}

var issueListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List issues (default: your active issues)",
	Long: `List issues, most recently updated first.

With no --assignee, --mine, --all-assignees or --team flag the list shows
your own issues. Completed and canceled issues are hidden unless --all or
--state is given. --assignee accepts a display name, name, email or "me".

--updated-since accepts a duration (2w, 36h), a date (2025-01-31), an
RFC3339 timestamp or a phrase ("yesterday", "last monday").`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		opts := issueListOptions{}
		opts.team, _ = cmd.Flags().GetString("team")
		opts.state, _ = cmd.Flags().GetString("state")
		opts.assignee, _ = cmd.Flags().GetString("assignee")
		opts.mine, _ = cmd.Flags().GetBool("mine")
		opts.allAssignees, _ = cmd.Flags().GetBool("all-assignees")
		opts.label, _ = cmd.Flags().GetString("label")
		opts.project, _ = cmd.Flags().GetString("project")
		opts.all, _ = cmd.Flags().GetBool("all")
		opts.updatedSince, _ = cmd.Flags().GetString("updated-since")
		opts.limit = config.GetInt("issue-limit")
		if cmd.Flags().Changed("limit") {
			opts.limit, _ = cmd.Flags().GetInt("limit")
		}
		if cmd.Flags().Changed("priority") {
			p, _ := cmd.Flags().GetInt("priority")
			opts.priority = &p
		}
		local := config.LocalDefaults()
		opts.localTeam, opts.localAssignee = local.Team, local.Assignee

		if err := runIssueList(getRootContext(), mustApp(), opts, time.Now()); err != nil {
			exitWithError(err)
		}
	},
}

func init() {
	issueListCmd.Flags().String("team", "", "Filter by team key")
	issueListCmd.Flags().String("state", "", "Filter by workflow state name")
	issueListCmd.Flags().String("assignee", "", "Filter by assignee (name, email or \"me\")")
	issueListCmd.Flags().Bool("mine", false, "Only issues assigned to you")
	issueListCmd.Flags().Bool("all-assignees", false, "Do not filter by assignee")
	issueListCmd.Flags().Int("priority", 0, "Filter by priority (0=none, 1=urgent, 2=high, 3=medium, 4=low)")
	issueListCmd.Flags().String("label", "", "Filter by label name")
	issueListCmd.Flags().String("project", "", "Filter by project name (substring)")
	issueListCmd.Flags().Bool("all", false, "Include completed and canceled issues")
	issueListCmd.Flags().IntP("limit", "n", 50, "Maximum number of issues")
	issueListCmd.Flags().String("updated-since", "", "Only issues updated since (e.g. 2w, yesterday, 2025-01-31)")
	issueListCmd.MarkFlagsMutuallyExclusive("assignee", "mine", "all-assignees")

	issueCmd.AddCommand(issueListCmd)
	rootCmd.AddCommand(issueCmd)
}

// listAssignee decides which assignee query, if any, filters the list.
// Without assignee or team flags the list defaults to the local
// .linear.yaml assignee, then to "me".
func (o issueListOptions) listAssignee() string {
	switch {
	case o.assignee != "":
		return o.assignee
	case o.mine:
		return resolver.SentinelMe
	case o.allAssignees || o.team != "":
		return ""
	case o.localAssignee != "":
		return o.localAssignee
	default:
		return resolver.SentinelMe
	}
}

func validatePriority(p int) error {
	if p < 0 || p > 4 {
		return fmt.Errorf("priority must be between 0 and 4, got %d", p)
	}
	return nil
}

func runIssueList(ctx context.Context, a *app, opts issueListOptions, now time.Time) error {
	if opts.limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", opts.limit)
	}
	if opts.priority != nil {
		if err := validatePriority(*opts.priority); err != nil {
			return err
		}
	}

	filter := linear.IssueFilter{
		TeamKey:       firstNonEmpty(opts.team, opts.localTeam),
		StateName:     opts.state,
		Priority:      opts.priority,
		Label:         opts.label,
		Project:       opts.project,
		IncludeClosed: opts.all,
	}
	if opts.updatedSince != "" {
		since, err := timeparsing.ParseSince(opts.updatedSince, now)
		if err != nil {
			return fmt.Errorf("invalid --updated-since: %w", err)
		}
		filter.UpdatedSince = since
	}
	if q := opts.listAssignee(); q != "" {
		id, err := a.resolver.ResolveUser(ctx, q)
		if err != nil {
			return err
		}
		filter.AssigneeID = id
	}
	debug.Logf("issue list: filter=%v limit=%d\n", filter.GraphQL(), opts.limit)

	issues, err := a.client.ListIssues(ctx, filter, opts.limit)
	if err != nil {
		return err
	}
	return printIssues(a, issues)
}

func printIssues(a *app, issues []linear.Issue) error {
	if jsonOutput {
		if issues == nil {
			issues = []linear.Issue{}
		}
		return outputJSON(a.out, issues)
	}
	_, err := fmt.Fprintln(a.out, ui.IssueTable(issues, ui.TableOptions{Hyperlinks: a.isStdout() && ui.SupportsHyperlinks()}))
	return err
}
