package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linear-cli/linear/internal/ui"
)

var teamCmd = &cobra.Command{
	Use:     "team",
	GroupID: GroupIssues,
	Short:   "Work with teams",
}

var teamListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List teams in the workspace",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runTeamList(getRootContext(), mustApp()); err != nil {
			exitWithError(err)
		}
	},
}

func init() {
	teamCmd.AddCommand(teamListCmd)
	rootCmd.AddCommand(teamCmd)
}

func runTeamList(ctx context.Context, a *app) error {
	teams, err := a.client.ListTeams(ctx)
	if err != nil {
		return err
	}
	if jsonOutput {
		return outputJSON(a.out, teams)
	}
	_, err = fmt.Fprintln(a.out, ui.TeamTable(teams))
	return err
}
