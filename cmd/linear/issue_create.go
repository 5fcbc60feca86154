package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/linear-cli/linear/internal/config"
	"github.com/linear-cli/linear/internal/debug"
	"github.com/linear-cli/linear/internal/linear"
	"github.com/linear-cli/linear/internal/ui"
)

type issueCreateOptions struct {
	team        string
	title       string
	description string
	priority    *int
	state       string
	assignee    string
	labels      []string
}

var issueCreateCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"new"},
	Short:   "Create an issue",
	Long: `Create an issue.

--team defaults to .linear.yaml or the "team" setting; without either you
are asked to pick one. Missing --title is prompted for on a terminal and is
an error otherwise. Names given to --state, --assignee and --label are
resolved the same way as everywhere else and must match exactly one record.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		opts := issueCreateOptions{}
		opts.team, _ = cmd.Flags().GetString("team")
		opts.title, _ = cmd.Flags().GetString("title")
		opts.description, _ = cmd.Flags().GetString("description")
		opts.state, _ = cmd.Flags().GetString("state")
		opts.assignee, _ = cmd.Flags().GetString("assignee")
		opts.labels, _ = cmd.Flags().GetStringArray("label")
		if cmd.Flags().Changed("priority") {
			p, _ := cmd.Flags().GetInt("priority")
			opts.priority = &p
		}
		if opts.team == "" {
			opts.team = config.DefaultTeam()
		}
		if err := runIssueCreate(getRootContext(), mustApp(), opts); err != nil {
			exitWithError(err)
		}
	},
}

func init() {
	issueCreateCmd.Flags().String("team", "", "Team key (default: .linear.yaml or the team setting)")
	issueCreateCmd.Flags().StringP("title", "t", "", "Issue title")
	issueCreateCmd.Flags().StringP("description", "d", "", "Issue description (markdown)")
	issueCreateCmd.Flags().IntP("priority", "p", 0, "Priority (0=none, 1=urgent, 2=high, 3=medium, 4=low)")
	issueCreateCmd.Flags().String("state", "", "Initial workflow state name")
	issueCreateCmd.Flags().StringP("assignee", "a", "", "Assignee (name, email or \"me\")")
	issueCreateCmd.Flags().StringArrayP("label", "l", nil, "Label name (repeatable)")

	issueCmd.AddCommand(issueCreateCmd)
}

func runIssueCreate(ctx context.Context, a *app, opts issueCreateOptions) error {
	if opts.priority != nil {
		if err := validatePriority(*opts.priority); err != nil {
			return err
		}
	}

	teamID, err := resolveTeamOrPick(ctx, a, opts.team)
	if err != nil {
		return err
	}
	title, err := requireText("title", "Issue title", opts.title)
	if err != nil {
		return err
	}

	in := &linear.IssueCreateInput{
		TeamID:      teamID,
		Title:       title,
		Description: opts.description,
	}
	if opts.priority != nil {
		in.Priority = *opts.priority
	}

	switch {
	case opts.state != "":
		if in.StateID, err = a.resolver.ResolveState(ctx, teamID, opts.state); err != nil {
			return err
		}
	case isInteractive():
		states, err := a.client.ListStates(ctx, teamID)
		if err != nil {
			return err
		}
		if len(states) > 0 {
			if in.StateID, err = selectOption("Initial state", stateOptions(states)); err != nil {
				return err
			}
		}
	}

	if opts.assignee != "" {
		if in.AssigneeID, err = a.resolver.ResolveUser(ctx, opts.assignee); err != nil {
			return err
		}
	}

	for _, name := range opts.labels {
		id, err := a.resolver.ResolveLabel(ctx, name)
		if err != nil {
			return err
		}
		in.LabelIDs = appendUnique(in.LabelIDs, id)
	}

	issue, err := a.client.CreateIssue(ctx, in)
	if err != nil {
		return err
	}
	if jsonOutput {
		return outputJSON(a.out, issue)
	}
	fmt.Fprintln(a.out, ui.Pass(fmt.Sprintf("Created %s: %s", firstNonEmpty(issue.Identifier, issue.ID), issue.Title)))
	if issue.URL != "" {
		debug.PrintNormal(a.out, "%s\n", issue.URL)
	}
	return nil
}

// resolveTeamOrPick resolves key, or offers the workspace's teams when key
// is empty.
func resolveTeamOrPick(ctx context.Context, a *app, key string) (string, error) {
	if key != "" {
		return a.resolver.ResolveTeam(ctx, key)
	}
	if !isInteractive() {
		return "", fmt.Errorf("Missing required flag --team (non-interactive mode)")
	}
	teams, err := a.client.ListTeams(ctx)
	if err != nil {
		return "", err
	}
	options := make([]huh.Option[string], 0, len(teams))
	for _, t := range teams {
		options = append(options, huh.NewOption(t.Key+"  "+t.Name, t.ID))
	}
	return selectOption("Team", options)
}

func stateOptions(states []linear.State) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(states))
	for _, s := range states {
		options = append(options, huh.NewOption(s.Name, s.ID))
	}
	return options
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
