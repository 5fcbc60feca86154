package ui

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks text cut by Truncate.
const Ellipsis = "…"

// Description display limits used by `issue view` unless --full is given.
const (
	DefaultMaxLines     = 40
	DefaultContextLines = 10
)

// Truncate shortens s to at most width terminal cells, replacing the tail
// with an ellipsis. Wide runes count as two cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return Ellipsis
	}
	return runewidth.Truncate(s, width, Ellipsis)
}

// TruncateLines truncates text to maxLines, keeping contextLines from the
// beginning and end with a muted marker in between.
func TruncateLines(text string, maxLines, contextLines int) string {
	if text == "" {
		return text
	}
	lines := strings.Split(text, "\n")
	total := len(lines)
	if total <= maxLines {
		return text
	}
	if contextLines < 1 {
		contextLines = DefaultContextLines
	}
	if maxLines < contextLines*2+1 {
		return strings.Join(lines[:maxLines], "\n") + "\n" + RenderMuted("...")
	}

	hidden := total - 2*contextLines
	var b strings.Builder
	b.WriteString(strings.Join(lines[:contextLines], "\n"))
	b.WriteString("\n")
	b.WriteString(RenderMuted("... (" + strconv.Itoa(hidden) + " lines hidden, use --full to see all) ..."))
	b.WriteString("\n")
	b.WriteString(strings.Join(lines[total-contextLines:], "\n"))
	return b.String()
}

// WrapText wraps text at word boundaries to fit within maxWidth cells.
// Existing line breaks are preserved.
func WrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 80
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = wrapLine(line, maxWidth)
	}
	return strings.Join(lines, "\n")
}

func wrapLine(line string, maxWidth int) string {
	if runewidth.StringWidth(line) <= maxWidth {
		return line
	}

	var b strings.Builder
	cur := 0
	for _, word := range strings.Fields(line) {
		w := runewidth.StringWidth(word)
		switch {
		case cur == 0:
			// First word on a line is kept even if too long.
		case cur+1+w <= maxWidth:
			b.WriteString(" ")
			cur++
		default:
			b.WriteString("\n")
			cur = 0
		}
		b.WriteString(word)
		cur += w
	}
	return b.String()
}
