package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/linear-cli/linear/internal/debug"
	"github.com/linear-cli/linear/internal/linear"
	"github.com/linear-cli/linear/internal/ui"
)

var errNoUpdates = errors.New("No updates specified. Use --title, --description, --priority, --state, --assignee, --add-label, --remove-label, or --clear-labels.")

var errNoTeam = errors.New("issue has no team")

type issueUpdateOptions struct {
	title        *string
	description  *string
	priority     *int
	state        string
	assignee     *string
	addLabels    []string
	removeLabels []string
	clearLabels  bool
}

func (o issueUpdateOptions) empty() bool {
	return o.title == nil && o.description == nil && o.priority == nil && o.state == "" &&
		o.assignee == nil && len(o.addLabels) == 0 && len(o.removeLabels) == 0 && !o.clearLabels
}

func (o issueUpdateOptions) touchesLabels() bool {
	return o.clearLabels || len(o.addLabels) > 0 || len(o.removeLabels) > 0
}

var issueUpdateCmd = &cobra.Command{
	Use:     "update <id|url>",
	Aliases: []string{"edit"},
	Short:   "Update an issue",
	Long: `Update fields of an issue.

--state is resolved within the issue's team. --assignee "" unassigns.
--add-label and --remove-label are applied to the issue's current labels;
--clear-labels starts from no labels before applying --add-label.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := issueUpdateOptions{}
		flags := cmd.Flags()
		if flags.Changed("title") {
			v, _ := flags.GetString("title")
			opts.title = &v
		}
		if flags.Changed("description") {
			v, _ := flags.GetString("description")
			opts.description = &v
		}
		if flags.Changed("priority") {
			v, _ := flags.GetInt("priority")
			opts.priority = &v
		}
		if flags.Changed("assignee") {
			v, _ := flags.GetString("assignee")
			opts.assignee = &v
		}
		opts.state, _ = flags.GetString("state")
		opts.addLabels, _ = flags.GetStringArray("add-label")
		opts.removeLabels, _ = flags.GetStringArray("remove-label")
		opts.clearLabels, _ = flags.GetBool("clear-labels")

		if err := runIssueUpdate(getRootContext(), mustApp(), args[0], opts); err != nil {
			exitWithError(err)
		}
	},
}

var issueAssignCmd = &cobra.Command{
	Use:   "assign <id|url> [user]",
	Short: "Assign an issue, or unassign it when no user is given",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		user := ""
		if len(args) == 2 {
			user = args[1]
		}
		if err := runIssueAssign(getRootContext(), mustApp(), args[0], user); err != nil {
			exitWithError(err)
		}
	},
}

var issueStateCmd = &cobra.Command{
	Use:   "state <id|url> [state]",
	Short: "Move an issue to another workflow state",
	Long: `Move an issue to another workflow state of its team.

Without a state name the team's states are offered for selection.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		state := ""
		if len(args) == 2 {
			state = args[1]
		}
		if err := runIssueState(getRootContext(), mustApp(), args[0], state); err != nil {
			exitWithError(err)
		}
	},
}

func init() {
	issueUpdateCmd.Flags().StringP("title", "t", "", "New title")
	issueUpdateCmd.Flags().StringP("description", "d", "", "New description (markdown)")
	issueUpdateCmd.Flags().IntP("priority", "p", 0, "Priority (0=none, 1=urgent, 2=high, 3=medium, 4=low)")
	issueUpdateCmd.Flags().String("state", "", "Workflow state name")
	issueUpdateCmd.Flags().StringP("assignee", "a", "", "Assignee (name, email or \"me\"); empty to unassign")
	issueUpdateCmd.Flags().StringArray("add-label", nil, "Label to add (repeatable)")
	issueUpdateCmd.Flags().StringArray("remove-label", nil, "Label to remove (repeatable)")
	issueUpdateCmd.Flags().Bool("clear-labels", false, "Remove all labels")

	issueCmd.AddCommand(issueUpdateCmd, issueAssignCmd, issueStateCmd)
}

func runIssueUpdate(ctx context.Context, a *app, ref string, opts issueUpdateOptions) error {
	if opts.empty() {
		return errNoUpdates
	}
	if opts.priority != nil {
		if err := validatePriority(*opts.priority); err != nil {
			return err
		}
	}
	id := linear.NormalizeIssueRef(ref)

	in := &linear.IssueUpdateInput{
		Title:       opts.title,
		Description: opts.description,
		Priority:    opts.priority,
	}

	// The current issue supplies the team for --state and the base label
	// set for --add-label/--remove-label.
	var current *linear.Issue
	if opts.state != "" || (!opts.clearLabels && opts.touchesLabels()) {
		var err error
		if current, err = a.client.GetIssue(ctx, id); err != nil {
			return err
		}
	}

	if opts.state != "" {
		if current.Team == nil || current.Team.ID == "" {
			return errNoTeam
		}
		stateID, err := a.resolver.ResolveState(ctx, current.Team.ID, opts.state)
		if err != nil {
			return err
		}
		in.StateID = &stateID
	}

	if opts.assignee != nil {
		assigneeID := ""
		if *opts.assignee != "" {
			var err error
			if assigneeID, err = a.resolver.ResolveUser(ctx, *opts.assignee); err != nil {
				return err
			}
		}
		in.AssigneeID = &assigneeID
	}

	if opts.touchesLabels() {
		labels := []string{}
		if !opts.clearLabels {
			labels = append(labels, current.LabelIDs()...)
		}
		for _, name := range opts.addLabels {
			lid, err := a.resolver.ResolveLabel(ctx, name)
			if err != nil {
				return err
			}
			labels = appendUnique(labels, lid)
		}
		for _, name := range opts.removeLabels {
			lid, err := a.resolver.ResolveLabel(ctx, name)
			if err != nil {
				return err
			}
			labels = removeID(labels, lid)
		}
		in.LabelIDs = labels
	}

	issue, err := a.client.UpdateIssue(ctx, id, in)
	if err != nil {
		return err
	}
	if jsonOutput {
		return outputJSON(a.out, issue)
	}
	debug.PrintNormal(a.out, "%s\n", ui.Pass("Updated "+firstNonEmpty(issue.Identifier, issue.ID)))
	return nil
}

func runIssueAssign(ctx context.Context, a *app, ref, user string) error {
	assigneeID := ""
	action := "Unassigned"
	if user != "" {
		var err error
		if assigneeID, err = a.resolver.ResolveUser(ctx, user); err != nil {
			return err
		}
		action = "Assigned to " + user
	}

	issue, err := a.client.UpdateIssue(ctx, linear.NormalizeIssueRef(ref), &linear.IssueUpdateInput{AssigneeID: &assigneeID})
	if err != nil {
		return err
	}
	if jsonOutput {
		return outputJSON(a.out, issue)
	}
	debug.PrintNormal(a.out, "%s\n", ui.Pass(firstNonEmpty(issue.Identifier, issue.ID)+": "+action))
	return nil
}

func runIssueState(ctx context.Context, a *app, ref, stateName string) error {
	id := linear.NormalizeIssueRef(ref)
	current, err := a.client.GetIssue(ctx, id)
	if err != nil {
		return err
	}
	if current.Team == nil || current.Team.ID == "" {
		return errNoTeam
	}

	var stateID string
	if stateName != "" {
		if stateID, err = a.resolver.ResolveState(ctx, current.Team.ID, stateName); err != nil {
			return err
		}
	} else {
		states, err := a.client.ListStates(ctx, current.Team.ID)
		if err != nil {
			return err
		}
		if stateID, err = selectOption("State", stateOptions(states)); err != nil {
			return err
		}
		for _, s := range states {
			if s.ID == stateID {
				stateName = s.Name
			}
		}
	}

	issue, err := a.client.UpdateIssue(ctx, id, &linear.IssueUpdateInput{StateID: &stateID})
	if err != nil {
		return err
	}
	if jsonOutput {
		return outputJSON(a.out, issue)
	}
	debug.PrintNormal(a.out, "%s\n", ui.Pass(firstNonEmpty(issue.Identifier, issue.ID)+": → "+stateName))
	return nil
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
