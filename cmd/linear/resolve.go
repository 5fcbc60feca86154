package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/linear-cli/linear/internal/config"
	"github.com/linear-cli/linear/internal/resolver"
)

var errStateNeedsTeam = errors.New("resolving a state needs a team: pass --team or set one in .linear.yaml")

// resolution is the --json output of `linear resolve`.
type resolution struct {
	Kind   resolver.Kind `json:"kind"`
	Query  string        `json:"query"`
	ID     string        `json:"id"`
	TeamID string        `json:"teamId,omitempty"`
}

var resolveCmd = &cobra.Command{
	Use:     "resolve <team|user|state|label> <query>",
	GroupID: GroupSetup,
	Short:   "Resolve a name to its Linear id",
	Long: `Resolve a human-readable name to the id Linear uses, the same way other
commands resolve their flags.

  team   key, any case
  user   "me", or exact display name, name or email (any case), then a
         substring of any of them
  state  name within --team, any case
  label  exact name, then any case

A query matching several records fails and lists them.`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{string(resolver.KindTeam), string(resolver.KindUser), string(resolver.KindState), string(resolver.KindLabel)},
	Run: func(cmd *cobra.Command, args []string) {
		team, _ := cmd.Flags().GetString("team")
		kind := resolver.Kind(args[0])
		if kind == resolver.KindState && team == "" {
			team = config.DefaultTeam()
		}
		if err := runResolve(getRootContext(), mustApp(), kind, args[1], team); err != nil {
			exitWithError(err)
		}
	},
}

func init() {
	resolveCmd.Flags().String("team", "", "Team key scoping a state lookup")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(ctx context.Context, a *app, kind resolver.Kind, query, teamKey string) error {
	out := resolution{Kind: kind, Query: query}
	switch kind {
	case resolver.KindTeam, resolver.KindUser, resolver.KindLabel:
	case resolver.KindState:
		if teamKey == "" {
			return errStateNeedsTeam
		}
		teamID, err := a.resolver.ResolveTeam(ctx, teamKey)
		if err != nil {
			return err
		}
		out.TeamID = teamID
	default:
		return fmt.Errorf("unknown kind %q: want team, user, state or label", kind)
	}

	id, err := a.resolver.Resolve(ctx, kind, query, out.TeamID)
	if err != nil {
		return err
	}
	out.ID = id
	if jsonOutput {
		return outputJSON(a.out, out)
	}
	_, err = fmt.Fprintln(a.out, id)
	return err
}
