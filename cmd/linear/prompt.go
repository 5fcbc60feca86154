package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/linear-cli/linear/internal/ui"
)

// isInteractive is overridden in tests.
var isInteractive = ui.IsStdinTerminal

var (
	errNotInteractive = errors.New("Interactive selection required but not running in a terminal. Use flags instead.")
	errNoOptions      = errors.New("No options available.")
)

// requireText returns value when set, otherwise prompts for it. Without a
// terminal the missing flag is an error.
func requireText(flag, prompt, value string) (string, error) {
	if value != "" {
		return value, nil
	}
	if !isInteractive() {
		return "", fmt.Errorf("Missing required flag --%s (non-interactive mode)", flag)
	}
	var input string
	err := huh.NewInput().
		Title(prompt).
		Value(&input).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s is required", flag)
			}
			return nil
		}).
		Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// selectOption asks the user to pick one of options and returns its value.
func selectOption(prompt string, options []huh.Option[string]) (string, error) {
	if !isInteractive() {
		return "", errNotInteractive
	}
	if len(options) == 0 {
		return "", errNoOptions
	}
	var selected string
	err := huh.NewSelect[string]().
		Title(prompt).
		Options(options...).
		Value(&selected).
		Run()
	return selected, err
}

// promptAPIKey reads an API key without echoing it.
func promptAPIKey() (string, error) {
	var key string
	err := huh.NewInput().
		Title("Enter your Linear API key").
		Description("Create one at https://linear.app/settings/api").
		EchoMode(huh.EchoModePassword).
		Value(&key).
		Run()
	return strings.TrimSpace(key), err
}

// readLine reads the first line of r, trimmed.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
