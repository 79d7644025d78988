package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tablero/internal/models"
	"tablero/internal/tui/components"
)

// View implements tea.Model
func (m Model) View() string {
	switch m.mode {
	case viewProjects:
		return m.viewProjects()
	case viewBoard:
		return m.viewBoard()
	case viewProjectForm, viewTaskForm, viewDeleteForm:
		if m.form != nil {
			return m.form.View()
		}
		return ""
	case viewHelp:
		return m.viewHelp()
	}
	return ""
}

// viewProjects renders the project list screen.
func (m Model) viewProjects() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("tablero"))
	b.WriteString("\n\n")

	projects := m.store.Projects()
	if len(projects) == 0 {
		b.WriteString(m.styles.Muted.Render("No projects yet. Press 'n' to create one."))
	}

	for i, p := range projects {
		cursor := "  "
		nameStyle := m.styles.Task
		if i == m.selProject {
			cursor = "> "
			nameStyle = m.styles.SelectedTask
		}

		line := cursor + nameStyle.Render(p.Name)
		if p.Status == models.StatusCompleted {
			line += " " + m.styles.Done.Render("✓ completed")
		}
		if p.DueDate != nil {
			due := p.DueDate.Format("2006-01-02")
			line += " " + m.styles.Muted.Render("due "+due)
		}
		line += " " + m.styles.Muted.Render(fmt.Sprintf("(%d tasks)", p.Lanes.Count()))

		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Overdue.Render("! " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(listHelp{m.keys}))
	return b.String()
}

// viewBoard renders the three lanes side by side.
func (m Model) viewBoard() string {
	project := m.board.Project()

	laneWidth := 28
	if m.width > 0 {
		if w := m.width/3 - 4; w > 16 {
			laneWidth = w
		}
	}

	lanes := make([]string, 0, len(models.AllLanes))
	for _, lane := range models.AllLanes {
		frame := m.styles.Lane
		selectedTask := -1
		if lane == m.selLane {
			frame = m.styles.SelectedLane
			selectedTask = m.selTask
		}
		lanes = append(lanes, components.RenderLane(
			lane.Title(),
			m.board.Tasks(lane),
			selectedTask,
			laneWidth,
			components.LaneStyles{
				Frame:    frame,
				Title:    m.styles.LaneTitle,
				Task:     m.styles.Task,
				Selected: m.styles.SelectedTask,
				Empty:    m.styles.Muted,
			},
		))
	}

	header := m.styles.Title.Render(project.Name)
	if m.board.Status() == models.StatusCompleted {
		header += " " + m.styles.Done.Render("✓ completed")
	}
	if project.DueDate != nil {
		header += " " + m.styles.Muted.Render("due "+project.DueDate.Format("2006-01-02"))
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, lanes...))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Overdue.Render("! " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
