package main

import (
	"io"
	"net/http"
	"os"

	"github.com/linear-cli/linear/internal/config"
	"github.com/linear-cli/linear/internal/linear"
	"github.com/linear-cli/linear/internal/resolver"
	"github.com/linear-cli/linear/internal/telemetry"
)

// app bundles what a command needs to talk to Linear.
type app struct {
	client   *linear.Client
	resolver *resolver.Resolver
	out      io.Writer
}

// newApp builds an app from the stored credentials and settings.
func newApp() (*app, error) {
	key, err := config.APIKey()
	if err != nil {
		return nil, err
	}
	return newAppForKey(key), nil
}

// mustApp is newApp for command Run functions.
func mustApp() *app {
	a, err := newApp()
	if err != nil {
		exitWithError(err)
	}
	return a
}

func newAppForKey(key string) *app {
	client := linear.NewClient(key)
	if endpoint := config.GetString("api-endpoint"); endpoint != "" {
		client = client.WithEndpoint(endpoint)
	}
	if timeout := config.GetDuration("timeout"); timeout > 0 {
		client = client.WithHTTPClient(&http.Client{Timeout: timeout})
	}
	return newAppWithClient(client, os.Stdout)
}

// newAppWithClient wires the resolver over client's directory, with
// telemetry when enabled.
func newAppWithClient(client *linear.Client, out io.Writer) *app {
	dir := telemetry.WrapDirectory(linear.NewDirectory(client))
	return &app{
		client:   client,
		resolver: resolver.New(dir, resolver.WithLookupLimit(config.GetInt("lookup-limit"))),
		out:      out,
	}
}

// isStdout reports whether output goes straight to the process's stdout,
// where terminal features like hyperlinks and paging apply.
func (a *app) isStdout() bool {
	f, ok := a.out.(*os.File)
	return ok && f == os.Stdout
}
