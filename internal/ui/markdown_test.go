package ui

import (
	"strings"
	"testing"
)

func TestWrapPlain(t *testing.T) {
	input := strings.Join([]string{
		"This line is long enough to need wrapping here",
		"",
		"```",
		"this code line is far too long to wrap nicely",
		"```",
		"    indented code that is also much too long",
		"| a | table row that is very long indeed |",
		"short",
	}, "\n")
	want := strings.Join([]string{
		"This line is long",
		"enough to need",
		"wrapping here",
		"",
		"```",
		"this code line is far too long to wrap nicely",
		"```",
		"    indented code that is also much too long",
		"| a | table row that is very long indeed |",
		"short",
	}, "\n")

	if got := wrapPlain(input, 20); got != want {
		t.Errorf("wrapPlain() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderMarkdownUnchangedWhenPiped(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	t.Setenv("COLUMNS", "20")
	// stdout is not a terminal under test
	long := "This line is long enough to need wrapping here"
	if got := RenderMarkdown(long); got != long {
		t.Errorf("RenderMarkdown() = %q, want input unchanged", got)
	}
}

func TestRenderMarkdownAgentMode(t *testing.T) {
	t.Setenv("LINEAR_AGENT_MODE", "1")
	t.Setenv("CLICOLOR_FORCE", "1")
	in := "# Title\n\n**bold**"
	if got := RenderMarkdown(in); got != in {
		t.Errorf("RenderMarkdown() = %q, want input unchanged", got)
	}
}
