package main

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linear-cli/linear/internal/linear"
	"github.com/linear-cli/linear/internal/ui"
)

var errEmptySearch = errors.New("search query cannot be empty")

type issueViewOptions struct {
	full    bool
	noPager bool
}

var issueViewCmd = &cobra.Command{
	Use:     "view <id|url>",
	Aliases: []string{"show"},
	Short:   "Show an issue",
	Long: `Show an issue by identifier (ENG-123, any case), UUID or issue URL.

Long descriptions are shortened unless --full is given. Output longer than
the terminal goes through $LINEAR_PAGER or $PAGER.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := issueViewOptions{}
		opts.full, _ = cmd.Flags().GetBool("full")
		opts.noPager, _ = cmd.Flags().GetBool("no-pager")
		if err := runIssueView(getRootContext(), mustApp(), args[0], opts); err != nil {
			exitWithError(err)
		}
	},
}

var issueSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search across issues",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")
		if err := runIssueSearch(getRootContext(), mustApp(), strings.Join(args, " "), limit); err != nil {
			exitWithError(err)
		}
	},
}

func init() {
	issueViewCmd.Flags().Bool("full", false, "Show the complete description")
	issueViewCmd.Flags().Bool("no-pager", false, "Do not pipe output through a pager")
	issueSearchCmd.Flags().IntP("limit", "n", 50, "Maximum number of results")

	issueCmd.AddCommand(issueViewCmd, issueSearchCmd)
}

func runIssueView(ctx context.Context, a *app, ref string, opts issueViewOptions) error {
	issue, err := a.client.GetIssue(ctx, linear.NormalizeIssueRef(ref))
	if err != nil {
		return err
	}
	if jsonOutput {
		return outputJSON(a.out, issue)
	}

	description := issue.Description
	if !opts.full {
		description = ui.TruncateLines(description, ui.DefaultMaxLines, ui.DefaultContextLines)
	}
	return ui.ToPager(ui.IssueDetail(issue, ui.RenderMarkdown(description)), ui.PagerOptions{
		NoPager: opts.noPager,
		Out:     a.out,
	})
}

func runIssueSearch(ctx context.Context, a *app, query string, limit int) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return errEmptySearch
	}
	issues, err := a.client.SearchIssues(ctx, query, limit)
	if err != nil {
		return err
	}
	return printIssues(a, issues)
}
