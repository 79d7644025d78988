package tui

import (
	"github.com/charmbracelet/lipgloss"

	"tablero/internal/config"
)

// Styles bundles every lipgloss style the views use, derived from
// the configured theme.
type Styles struct {
	Title        lipgloss.Style
	Lane         lipgloss.Style
	SelectedLane lipgloss.Style
	LaneTitle    lipgloss.Style
	Task         lipgloss.Style
	SelectedTask lipgloss.Style
	Muted        lipgloss.Style
	Overdue      lipgloss.Style
	Done         lipgloss.Style
	StatusBar    lipgloss.Style
}

// NewStyles builds the style set from a theme.
func NewStyles(t config.Theme) Styles {
	accent := lipgloss.Color(t.Accent)
	muted := lipgloss.Color(t.Muted)
	selected := lipgloss.Color(t.Selected)

	laneBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(muted).
		Padding(0, 1)

	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Padding(0, 1),
		Lane: laneBase,
		SelectedLane: laneBase.
			BorderForeground(accent),
		LaneTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Task: lipgloss.NewStyle(),
		SelectedTask: lipgloss.NewStyle().
			Foreground(selected).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
		Overdue: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Overdue)),
		Done: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Done)),
		StatusBar: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
	}
}
