// Package ui provides the terminal styling for the aoc CLI.
// Styles are bound to a lipgloss renderer for the destination writer, so
// output piped to a file or buffer carries no escape codes.
package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Primary     = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}
	MutedColor  = lipgloss.AdaptiveColor{Light: "#6a737d", Dark: "#5c6b82"}
	Success     = lipgloss.Color("#8BC34A")
	Destructive = lipgloss.Color("#e53935")
	Warning     = lipgloss.Color("#FFC107")
)

// Styles holds the styled components used by the CLI.
type Styles struct {
	Title   lipgloss.Style
	Bold    lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

// NewStyles creates the styles for renderer r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:   r.NewStyle().Foreground(Primary).Bold(true),
		Bold:    r.NewStyle().Bold(true),
		Body:    r.NewStyle(),
		Muted:   r.NewStyle().Foreground(MutedColor),
		Success: r.NewStyle().Foreground(Success),
		Error:   r.NewStyle().Foreground(Destructive).Bold(true),
		Warning: r.NewStyle().Foreground(Warning),
	}
}

// StylesFor returns styles that detect their color profile from w.
func StylesFor(w io.Writer) Styles {
	return NewStyles(lipgloss.NewRenderer(w))
}
