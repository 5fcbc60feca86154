// Package ui provides terminal styling for linear CLI output.
// Uses the Ayu color theme with adaptive light/dark mode support.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Ayu theme color palette
// Dark: https://terminalcolors.com/themes/ayu/dark/
// Light: https://terminalcolors.com/themes/ayu/light/
var (
	ColorPass = lipgloss.AdaptiveColor{
		Light: "#86b300",
		Dark:  "#c2d94c",
	}
	ColorWarn = lipgloss.AdaptiveColor{
		Light: "#f2ae49",
		Dark:  "#ffb454",
	}
	ColorFail = lipgloss.AdaptiveColor{
		Light: "#f07171",
		Dark:  "#f07178",
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99",
		Dark:  "#6c7680",
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#399ee6",
		Dark:  "#59c2ff",
	}
)

var (
	PassStyle   = lipgloss.NewStyle().Foreground(ColorPass)
	WarnStyle   = lipgloss.NewStyle().Foreground(ColorWarn)
	FailStyle   = lipgloss.NewStyle().Foreground(ColorFail)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	AccentStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	BoldStyle   = lipgloss.NewStyle().Bold(true)

	// CanceledStyle strikes through states that will never be worked.
	CanceledStyle = FailStyle.Strikethrough(true)
)

// HeaderStyle for section headers and table headings.
var HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)

const (
	IconPass = "✓"
	IconWarn = "⚠"
)

// Placeholder is shown in place of a missing value.
const Placeholder = "—"

// Workflow state types as reported by the API.
const (
	StateTriage    = "triage"
	StateBacklog   = "backlog"
	StateUnstarted = "unstarted"
	StateStarted   = "started"
	StateCompleted = "completed"
	StateCanceled  = "canceled"
)

// RenderState colours a workflow state name by its type.
// Unknown types are returned unstyled.
func RenderState(name, stateType string) string {
	if name == "" {
		name = Placeholder
	}
	switch strings.ToLower(stateType) {
	case StateCompleted:
		return PassStyle.Render(name)
	case StateCanceled, "cancelled":
		return CanceledStyle.Render(name)
	case StateStarted:
		return WarnStyle.Render(name)
	case StateUnstarted, StateBacklog:
		return MutedStyle.Render(name)
	default:
		return name
	}
}

// PriorityLabel maps Linear's numeric priority to its display name.
func PriorityLabel(p int) string {
	switch p {
	case 1:
		return "Urgent"
	case 2:
		return "High"
	case 3:
		return "Medium"
	case 4:
		return "Low"
	default:
		return "None"
	}
}

// RenderPriority renders the priority label, highlighting urgent and high.
func RenderPriority(p int) string {
	label := PriorityLabel(p)
	switch p {
	case 1:
		return RenderFail(label)
	case 2:
		return RenderWarn(label)
	case 0:
		return RenderMuted(label)
	default:
		return label
	}
}

// RenderPass renders text in the success (green) style.
func RenderPass(s string) string {
	return PassStyle.Render(s)
}

// RenderWarn renders text in the warning (yellow) style.
func RenderWarn(s string) string {
	return WarnStyle.Render(s)
}

// RenderFail renders text in the failure (red) style.
func RenderFail(s string) string {
	return FailStyle.Render(s)
}

// RenderMuted renders text with muted (gray) styling
func RenderMuted(s string) string {
	return MutedStyle.Render(s)
}

// RenderAccent renders text with accent (blue) styling
func RenderAccent(s string) string {
	return AccentStyle.Render(s)
}

// RenderHeader renders a section header with the accent color.
func RenderHeader(s string) string {
	return HeaderStyle.Render(s)
}

// RenderPassIcon renders the pass icon with styling
func RenderPassIcon() string {
	return PassStyle.Render(IconPass)
}

// RenderWarnIcon renders the warning icon with styling
func RenderWarnIcon() string {
	return WarnStyle.Render(IconWarn)
}

// Pass formats a confirmation such as "Updated ENG-12", led by the pass
// icon when ShouldUseEmoji holds.
func Pass(msg string) string {
	if ShouldUseEmoji() {
		return RenderPassIcon() + " " + RenderPass(msg)
	}
	return RenderPass(msg)
}

// Warn is Pass for notices that need the user's attention.
func Warn(msg string) string {
	if ShouldUseEmoji() {
		return RenderWarnIcon() + " " + RenderWarn(msg)
	}
	return RenderWarn(msg)
}
