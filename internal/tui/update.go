package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"tablero/internal/models"
	"tablero/internal/tui/huhforms"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// Global quit works everywhere except inside a form, where
		// the form owns the keyboard.
		if m.form == nil {
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
		}
	}

	switch m.mode {
	case viewProjects:
		return m.updateProjects(msg)
	case viewBoard:
		return m.updateBoard(msg)
	case viewProjectForm, viewTaskForm, viewDeleteForm:
		return m.updateForm(msg)
	case viewHelp:
		if _, ok := msg.(tea.KeyMsg); ok {
			m.mode = m.helpReturnMode()
		}
		return m, nil
	}
	return m, nil
}

// helpReturnMode picks the screen to return to after help.
func (m Model) helpReturnMode() viewMode {
	if m.board != nil {
		return viewBoard
	}
	return viewProjects
}

// updateProjects handles keys on the project list screen.
func (m Model) updateProjects(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.NextProject):
		if m.selProject < len(m.store.Projects())-1 {
			m.selProject++
		}

	case key.Matches(keyMsg, m.keys.PrevProject):
		if m.selProject > 0 {
			m.selProject--
		}

	case key.Matches(keyMsg, m.keys.OpenProject):
		project := m.currentProject()
		if project == nil {
			return m, nil
		}
		b, err := m.store.OpenBoard(context.Background(), project.ID)
		if err != nil {
			slog.Error("failed to open board", "project", project.ID, "error", err)
			m.err = err
			return m, nil
		}
		m.board = b
		m.selLane = models.LaneTodo
		m.selTask = 0
		m.mode = viewBoard

	case key.Matches(keyMsg, m.keys.CreateProject):
		m.formName = ""
		m.formDue = ""
		m.formConfirm = false
		m.form = huhforms.CreateProjectForm(&m.formName, &m.formDue, &m.formConfirm)
		m.mode = viewProjectForm
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.DeleteProject):
		// Deletion purges the project's stored lanes, so a stray
		// keypress must not be enough. Confirm first.
		project := m.currentProject()
		if project == nil {
			return m, nil
		}
		m.deleteTarget = project.ID
		m.formConfirm = false
		m.form = huhforms.DeleteProjectForm(project.Name, &m.formConfirm)
		m.mode = viewDeleteForm
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.ShowHelp):
		m.mode = viewHelp
	}

	return m, nil
}

// updateBoard handles keys on the board screen.
func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.CloseBoard):
		m.board = nil
		m.mode = viewProjects

	case key.Matches(keyMsg, m.keys.NextLane):
		if next, ok := m.selLane.Next(); ok {
			m.selLane = next
			m.selTask = 0
			m.clampTaskSelection()
		}

	case key.Matches(keyMsg, m.keys.PrevLane):
		if prev, ok := m.selLane.Prev(); ok {
			m.selLane = prev
			m.selTask = 0
			m.clampTaskSelection()
		}

	case key.Matches(keyMsg, m.keys.NextTask):
		if m.selTask < len(m.currentTasks())-1 {
			m.selTask++
		}

	case key.Matches(keyMsg, m.keys.PrevTask):
		if m.selTask > 0 {
			m.selTask--
		}

	case key.Matches(keyMsg, m.keys.MoveTaskRight):
		if target, ok := m.selLane.Next(); ok {
			m.moveCurrentTaskTo(target)
		}

	case key.Matches(keyMsg, m.keys.MoveTaskLeft):
		if target, ok := m.selLane.Prev(); ok {
			m.moveCurrentTaskTo(target)
		}

	case key.Matches(keyMsg, m.keys.MoveTaskUp):
		m.reorderCurrentTask(-1)

	case key.Matches(keyMsg, m.keys.MoveTaskDown):
		m.reorderCurrentTask(+1)

	case key.Matches(keyMsg, m.keys.DeleteTask):
		name := m.currentTask()
		if name == "" {
			return m, nil
		}
		if err := m.board.RemoveTask(context.Background(), name); err != nil {
			slog.Warn("remove task persisted with errors", "error", err)
			m.err = err
		}
		m.clampTaskSelection()

	case key.Matches(keyMsg, m.keys.AddTask):
		m.formName = ""
		m.formConfirm = false
		m.form = huhforms.CreateTaskForm(&m.formName, &m.formConfirm)
		m.mode = viewTaskForm
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.ShowHelp):
		m.mode = viewHelp
	}

	return m, nil
}

// moveCurrentTaskTo drops the selected task at the end of the target
// lane; the selection follows the task.
func (m *Model) moveCurrentTaskTo(target models.Lane) {
	name := m.currentTask()
	if name == "" {
		return
	}
	index := len(m.board.Tasks(target))
	if err := m.board.MoveTasks(context.Background(), []string{name}, target, index); err != nil {
		slog.Warn("move task persisted with errors", "error", err)
		m.err = err
	}
	m.selLane = target
	m.selTask = len(m.board.Tasks(target)) - 1
}

// reorderCurrentTask shifts the selected task within its lane.
func (m *Model) reorderCurrentTask(delta int) {
	name := m.currentTask()
	if name == "" {
		return
	}
	index := m.selTask + delta
	if index < 0 || index >= len(m.currentTasks()) {
		return
	}
	if err := m.board.MoveTasks(context.Background(), []string{name}, m.selLane, index); err != nil {
		slog.Warn("reorder task persisted with errors", "error", err)
		m.err = err
	}
	m.selTask = index
}

// updateForm routes messages to the active huh form and applies the
// result when it completes.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	fm, cmd := m.form.Update(msg)
	if f, ok := fm.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateAborted:
		m.form = nil
		m.deleteTarget = ""
		m.mode = m.helpReturnMode()
		return m, nil

	case huh.StateCompleted:
		mode := m.mode
		m.form = nil
		if !m.formConfirm {
			m.deleteTarget = ""
			m.mode = m.helpReturnMode()
			return m, nil
		}
		switch mode {
		case viewProjectForm:
			m.submitProjectForm()
		case viewTaskForm:
			m.submitTaskForm()
		case viewDeleteForm:
			m.submitDeleteForm()
		}
		m.mode = m.helpReturnMode()
		return m, nil
	}

	return m, cmd
}

// submitProjectForm creates the project described by the form fields.
func (m *Model) submitProjectForm() {
	var due *time.Time
	if m.formDue != "" {
		parsed, err := time.Parse("2006-01-02", m.formDue)
		if err != nil {
			// The form validates the format; a failure here means the
			// validator and parser disagree, so just drop the date.
			slog.Warn("unparseable due date", "input", m.formDue, "error", err)
		} else {
			due = &parsed
		}
	}
	if _, err := m.store.CreateProject(context.Background(), m.formName, due); err != nil {
		slog.Warn("create project failed", "error", err)
		m.err = err
	}
}

// submitDeleteForm removes the project the confirm form was opened
// for.
func (m *Model) submitDeleteForm() {
	if err := m.store.DeleteProject(context.Background(), m.deleteTarget); err != nil {
		// Persistence degraded; the in-memory removal stands.
		slog.Warn("delete project persisted with errors", "error", err)
		m.err = err
	}
	m.deleteTarget = ""
	m.clampProjectSelection()
}

// submitTaskForm adds the task described by the form fields to the
// selected lane.
func (m *Model) submitTaskForm() {
	if m.board == nil {
		return
	}
	if _, err := m.board.AddTask(context.Background(), m.formName, m.selLane); err != nil {
		slog.Warn("add task persisted with errors", "error", err)
		m.err = err
	}
	m.selTask = len(m.currentTasks()) - 1
}
