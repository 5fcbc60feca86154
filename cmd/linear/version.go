package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	// Version is the current version of linear (overridden by ldflags at build time)
	Version = "0.3.0"
	// Build can be set via ldflags at compile time
	Build = "dev"
	// Commit is the git revision the binary was built from (optional ldflag)
	Commit = ""
)

var versionCmd = &cobra.Command{
	Use:     "version",
	GroupID: GroupSetup,
	Short:   "Print version information",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		commit := resolveCommitHash()
		if jsonOutput {
			result := map[string]string{
				"version": Version,
				"build":   Build,
			}
			if commit != "" {
				result["commit"] = commit
			}
			if err := outputJSON(cmd.OutOrStdout(), result); err != nil {
				exitWithError(err)
			}
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), versionString(commit))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func versionString(commit string) string {
	if commit != "" {
		return fmt.Sprintf("linear version %s (%s: %s)", Version, Build, shortCommit(commit))
	}
	return fmt.Sprintf("linear version %s (%s)", Version, Build)
}

// resolveCommitHash prefers the ldflag and falls back to the VCS info
// embedded by the go toolchain.
func resolveCommitHash() string {
	if Commit != "" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				return setting.Value
			}
		}
	}
	return ""
}

func shortCommit(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
