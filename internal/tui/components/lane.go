// Package components holds pure rendering helpers for the board
// view. They take data and styles and return strings; no state.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// LaneStyles are the styles a lane rendering needs.
type LaneStyles struct {
	Frame    lipgloss.Style
	Title    lipgloss.Style
	Task     lipgloss.Style
	Selected lipgloss.Style
	Empty    lipgloss.Style
}

// RenderLane renders one lane column with its header and tasks.
//
// Layout:
//
//	{Lane Title} ({count})
//	{task}
//	> {selected task}
//	...
func RenderLane(title string, tasks []string, selectedTask int, width int, styles LaneStyles) string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(fmt.Sprintf("%s (%d)", title, len(tasks))))
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString(styles.Empty.Render("(empty)"))
	}

	for i, task := range tasks {
		if i > 0 {
			b.WriteString("\n")
		}
		if i == selectedTask {
			b.WriteString(styles.Selected.Render("> " + task))
		} else {
			b.WriteString(styles.Task.Render("  " + task))
		}
	}

	return styles.Frame.Width(width).Render(b.String())
}
