// Package tui is the presentation layer: a Bubble Tea program that
// drives the project store and board services. All board semantics
// live in those services; this package only routes keys and renders.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"tablero/internal/board"
	"tablero/internal/config"
	"tablero/internal/models"
	"tablero/internal/store"
)

// viewMode selects which screen is active.
type viewMode int

const (
	viewProjects viewMode = iota
	viewBoard
	viewProjectForm
	viewTaskForm
	viewDeleteForm
	viewHelp
)

// Model represents the application state for the TUI
type Model struct {
	store  store.Service
	cfg    *config.Config
	keys   KeyMap
	help   help.Model
	styles Styles

	mode   viewMode
	width  int
	height int

	// Project list state
	selProject int

	// Board state (valid while mode is viewBoard or a task form)
	board   board.Service
	selLane models.Lane
	selTask int

	// Form state
	form        *huh.Form
	formName    string
	formDue     string
	formConfirm bool

	// Project the delete confirm form was opened for
	deleteTarget string

	err error
}

// InitialModel creates the TUI model. The store must already be
// loaded.
func InitialModel(st store.Service, cfg *config.Config) Model {
	return Model{
		store:  st,
		cfg:    cfg,
		keys:   NewKeyMap(cfg.KeyMappings),
		help:   help.New(),
		styles: NewStyles(cfg.Theme),
		mode:   viewProjects,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// currentProject returns the project under the cursor in the list
// view, or nil when there are none.
func (m Model) currentProject() *models.Project {
	projects := m.store.Projects()
	if len(projects) == 0 || m.selProject >= len(projects) {
		return nil
	}
	return projects[m.selProject]
}

// currentTasks returns the tasks of the selected lane.
func (m Model) currentTasks() []string {
	if m.board == nil {
		return nil
	}
	return m.board.Tasks(m.selLane)
}

// currentTask returns the selected task name, or "" when the lane is
// empty.
func (m Model) currentTask() string {
	tasks := m.currentTasks()
	if len(tasks) == 0 || m.selTask >= len(tasks) {
		return ""
	}
	return tasks[m.selTask]
}

// clampTaskSelection keeps the task cursor inside the current lane.
func (m *Model) clampTaskSelection() {
	n := len(m.currentTasks())
	if m.selTask >= n {
		m.selTask = n - 1
	}
	if m.selTask < 0 {
		m.selTask = 0
	}
}

// clampProjectSelection keeps the project cursor inside the list.
func (m *Model) clampProjectSelection() {
	n := len(m.store.Projects())
	if m.selProject >= n {
		m.selProject = n - 1
	}
	if m.selProject < 0 {
		m.selProject = 0
	}
}
