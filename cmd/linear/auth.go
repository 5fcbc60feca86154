package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/linear-cli/linear/internal/config"
	"github.com/linear-cli/linear/internal/debug"
	"github.com/linear-cli/linear/internal/ui"
)

var errEmptyAPIKey = errors.New("API key cannot be empty")

var authCmd = &cobra.Command{
	Use:     "auth",
	GroupID: GroupSetup,
	Short:   "Store a Linear API key",
	Long: `Store a Linear personal API key in the user config directory.

The key is read from --key-file, from stdin when it is not a terminal, or
from a hidden prompt. It is checked against the API before being saved.
LINEAR_API_KEY, when set, takes precedence over the stored key.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		keyFile, _ := cmd.Flags().GetString("key-file")
		key, err := readAPIKey(keyFile, os.Stdin)
		if err != nil {
			exitWithError(err)
		}
		a := newAppForKey(key)
		if err := runAuth(getRootContext(), a, key); err != nil {
			exitWithError(err)
		}
	},
}

func init() {
	authCmd.Flags().String("key-file", "", "Read the API key from a file")
	rootCmd.AddCommand(authCmd)
}

// readAPIKey picks the key source: file, prompt on a terminal, else stdin.
func readAPIKey(keyFile string, stdin io.Reader) (string, error) {
	var (
		key string
		err error
	)
	switch {
	case keyFile != "":
		var data []byte
		data, err = os.ReadFile(keyFile) // #nosec G304 -- path is given by the user
		key = strings.TrimSpace(string(data))
	case isInteractive():
		key, err = promptAPIKey()
	default:
		key, err = readLine(stdin)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}
	if key == "" {
		return "", errEmptyAPIKey
	}
	return key, nil
}

// runAuth validates key by fetching the viewer, then saves it.
func runAuth(ctx context.Context, a *app, key string) error {
	viewer, err := a.client.GetViewer(ctx)
	if err != nil {
		return fmt.Errorf("API key check failed: %w", err)
	}
	path, err := config.SaveCredentials(&config.Credentials{APIKey: key})
	if err != nil {
		return err
	}
	debug.Logf("auth: saved key %s to %s\n", debug.Redact(key), path)

	name := firstNonEmpty(viewer.DisplayName, viewer.Name, "Unknown")
	if jsonOutput {
		return outputJSON(a.out, map[string]string{
			"id":     viewer.ID,
			"name":   name,
			"config": path,
		})
	}
	debug.PrintNormal(a.out, "%s\n", ui.Pass("Authenticated as "+name))
	if os.Getenv(config.APIKeyEnv) != "" {
		debug.PrintNormal(a.out, "%s\n", ui.Warn(config.APIKeyEnv+" is set and takes precedence over the saved key"))
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
