package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// maxReadableWidth caps description wrapping on wide terminals.
const maxReadableWidth = 100

// RenderMarkdown renders an issue description for the terminal.
// With colour on it goes through glamour. A terminal without colour gets
// the plain text word-wrapped. Agents and pipes get it unchanged.
func RenderMarkdown(markdown string) string {
	if IsAgentMode() {
		return markdown
	}
	width := min(TerminalWidth(), maxReadableWidth)
	if !ShouldUseColor() {
		if !IsTerminal() {
			return markdown
		}
		return wrapPlain(markdown, width)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return wrapPlain(markdown, width)
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		return wrapPlain(markdown, width)
	}
	return rendered
}

// wrapPlain word-wraps prose lines of unrendered markdown. Fenced and
// indented code blocks and table rows keep their layout.
func wrapPlain(markdown string, width int) string {
	lines := strings.Split(markdown, "\n")
	inFence := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence || strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") || strings.HasPrefix(trimmed, "|") {
			continue
		}
		lines[i] = WrapText(line, width)
	}
	return strings.Join(lines, "\n")
}
