package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/linear-cli/linear/internal/config"
	"github.com/linear-cli/linear/internal/debug"
	"github.com/linear-cli/linear/internal/telemetry"
	"github.com/linear-cli/linear/internal/ui"
)

var (
	jsonOutput  bool
	verboseFlag bool // Enable verbose/debug output
	quietFlag   bool // Suppress non-essential output
	apiEndpoint string

	// Signal-aware context for graceful cancellation
	rootCtx    context.Context
	rootCancel context.CancelFunc
)

// Command groups for organized help output
const (
	GroupIssues = "issues"
	GroupSetup  = "setup"
)

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupIssues, Title: "Working With Issues:"},
		&cobra.Group{ID: GroupSetup, Title: "Setup & Diagnostics:"},
	)

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (or set LINEAR_JSON=true)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress non-essential output (errors only)")
	rootCmd.PersistentFlags().StringVar(&apiEndpoint, "api-endpoint", "", "GraphQL endpoint (default: $LINEAR_API_ENDPOINT or https://api.linear.app/graphql)")

	rootCmd.Flags().BoolP("version", "V", false, "Print version information")
}

var rootCmd = &cobra.Command{
	Use:   "linear",
	Short: "linear - command-line client for the Linear issue tracker",
	Long: `Work with Linear issues from the terminal.

Teams, users, workflow states and labels can be given by name: team keys
match case-insensitively, users by display name, name or email (or "me"),
states within the issue's team, and labels exactly before ignoring case.
Ambiguous names fail with the list of candidates instead of guessing.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("linear version %s (%s)\n", Version, Build)
			return
		}
		_ = cmd.Help()
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupSignalContext()
		applyConfig(cmd)
		applyVerbosityFlags()
		applyColor()
		inv := telemetry.Invocation{
			ServiceName: cmd.Root().Name(),
			Version:     Version,
			Command:     cmd.CommandPath(),
			APIEndpoint: config.GetString("api-endpoint"),
		}
		if err := telemetry.Init(getRootContext(), inv); err != nil {
			WarnError("telemetry disabled: %v", err)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		finish()
	},
}

// finish flushes telemetry and releases the signal context. Every exit path
// runs it: PersistentPostRun on success, exitWithError on failure.
func finish() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		debug.Logf("telemetry shutdown: %v\n", err)
	}

	if rootCancel != nil {
		rootCancel()
	}
}

func setupSignalContext() {
	rootCtx, rootCancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// getRootContext returns the signal-aware context, or Background before
// PersistentPreRun has run.
func getRootContext() context.Context {
	if rootCtx == nil {
		return context.Background()
	}
	return rootCtx
}

// applyConfig loads settings and lets explicit flags win over them.
func applyConfig(cmd *cobra.Command) {
	if err := config.Initialize(); err != nil {
		WarnError("failed to initialize config: %v", err)
	}
	if cmd.Flags().Changed("json") {
		config.Set("json", jsonOutput)
	} else {
		jsonOutput = config.GetBool("json")
	}
	if apiEndpoint != "" {
		config.Set("api-endpoint", apiEndpoint)
	}
}

func applyVerbosityFlags() {
	debug.SetVerbose(verboseFlag)
	debug.SetQuiet(quietFlag)
}

func applyColor() {
	ui.ApplyColorProfile()
	color.NoColor = !ui.ShouldUseColor()
}

func main() {
	// LINEAR_NAME overrides the binary name in help text for wrapper scripts.
	if name := os.Getenv("LINEAR_NAME"); name != "" {
		rootCmd.Use = name
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
