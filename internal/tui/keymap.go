package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"tablero/internal/config"
)

// KeyMap holds the active key bindings, built from the user's
// configured mappings.
type KeyMap struct {
	// Navigation
	PrevLane key.Binding
	NextLane key.Binding
	PrevTask key.Binding
	NextTask key.Binding

	// Tasks
	AddTask       key.Binding
	DeleteTask    key.Binding
	MoveTaskLeft  key.Binding
	MoveTaskRight key.Binding
	MoveTaskUp    key.Binding
	MoveTaskDown  key.Binding

	// Projects. PrevProject/NextProject share keys with the task
	// cursor but carry their own help labels for the list screen.
	CreateProject key.Binding
	DeleteProject key.Binding
	OpenProject   key.Binding
	CloseBoard    key.Binding
	PrevProject   key.Binding
	NextProject   key.Binding

	// Other
	ShowHelp key.Binding
	Quit     key.Binding
}

// NewKeyMap builds bindings from the configured mappings.
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		PrevLane: key.NewBinding(key.WithKeys(km.PrevLane, "left"), key.WithHelp(km.PrevLane, "prev lane")),
		NextLane: key.NewBinding(key.WithKeys(km.NextLane, "right"), key.WithHelp(km.NextLane, "next lane")),
		PrevTask: key.NewBinding(key.WithKeys(km.PrevTask, "up"), key.WithHelp(km.PrevTask, "prev task")),
		NextTask: key.NewBinding(key.WithKeys(km.NextTask, "down"), key.WithHelp(km.NextTask, "next task")),

		AddTask:       key.NewBinding(key.WithKeys(km.AddTask), key.WithHelp(km.AddTask, "add task")),
		DeleteTask:    key.NewBinding(key.WithKeys(km.DeleteTask), key.WithHelp(km.DeleteTask, "delete task")),
		MoveTaskLeft:  key.NewBinding(key.WithKeys(km.MoveTaskLeft), key.WithHelp(km.MoveTaskLeft, "move left")),
		MoveTaskRight: key.NewBinding(key.WithKeys(km.MoveTaskRight), key.WithHelp(km.MoveTaskRight, "move right")),
		MoveTaskUp:    key.NewBinding(key.WithKeys(km.MoveTaskUp), key.WithHelp(km.MoveTaskUp, "move up")),
		MoveTaskDown:  key.NewBinding(key.WithKeys(km.MoveTaskDown), key.WithHelp(km.MoveTaskDown, "move down")),

		CreateProject: key.NewBinding(key.WithKeys(km.CreateProject), key.WithHelp(km.CreateProject, "new project")),
		DeleteProject: key.NewBinding(key.WithKeys(km.DeleteProject), key.WithHelp(km.DeleteProject, "delete project")),
		OpenProject:   key.NewBinding(key.WithKeys(km.OpenProject), key.WithHelp(km.OpenProject, "open")),
		CloseBoard:    key.NewBinding(key.WithKeys(km.CloseBoard), key.WithHelp(km.CloseBoard, "back")),
		PrevProject:   key.NewBinding(key.WithKeys(km.PrevTask, "up"), key.WithHelp(km.PrevTask, "prev project")),
		NextProject:   key.NewBinding(key.WithKeys(km.NextTask, "down"), key.WithHelp(km.NextTask, "next project")),

		ShowHelp: key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:     key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddTask, k.MoveTaskLeft, k.MoveTaskRight, k.ShowHelp, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevLane, k.NextLane, k.PrevTask, k.NextTask},
		{k.AddTask, k.DeleteTask, k.MoveTaskLeft, k.MoveTaskRight, k.MoveTaskUp, k.MoveTaskDown},
		{k.CreateProject, k.DeleteProject, k.OpenProject, k.CloseBoard},
		{k.ShowHelp, k.Quit},
	}
}

// listHelp presents the project-list subset of the bindings, with
// labels that talk about projects instead of tasks.
type listHelp struct {
	KeyMap
}

// ShortHelp implements help.KeyMap
func (l listHelp) ShortHelp() []key.Binding {
	return []key.Binding{l.NextProject, l.PrevProject, l.OpenProject, l.CreateProject, l.Quit}
}

// FullHelp implements help.KeyMap
func (l listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{l.PrevProject, l.NextProject, l.OpenProject},
		{l.CreateProject, l.DeleteProject},
		{l.ShowHelp, l.Quit},
	}
}
