package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linear-cli/linear/internal/ui"
)

var meCmd = &cobra.Command{
	Use:     "me",
	GroupID: GroupSetup,
	Short:   "Show the authenticated user",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMe(getRootContext(), mustApp()); err != nil {
			exitWithError(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(meCmd)
}

func runMe(ctx context.Context, a *app) error {
	viewer, err := a.client.GetViewer(ctx)
	if err != nil {
		return err
	}
	if jsonOutput {
		return outputJSON(a.out, viewer)
	}
	_, err = fmt.Fprintf(a.out, "Name:  %s\nEmail: %s\nID:    %s\n",
		firstNonEmpty(viewer.DisplayName, viewer.Name, ui.Placeholder),
		firstNonEmpty(viewer.Email, ui.Placeholder),
		viewer.ID)
	return err
}
