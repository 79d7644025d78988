package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask       string `yaml:"add_task"`
	DeleteTask    string `yaml:"delete_task"`
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`
	MoveTaskUp    string `yaml:"move_task_up"`
	MoveTaskDown  string `yaml:"move_task_down"`

	// Projects
	CreateProject string `yaml:"create_project"`
	DeleteProject string `yaml:"delete_project"`
	OpenProject   string `yaml:"open_project"`
	CloseBoard    string `yaml:"close_board"`

	// Navigation
	PrevLane string `yaml:"prev_lane"`
	NextLane string `yaml:"next_lane"`
	PrevTask string `yaml:"prev_task"`
	NextTask string `yaml:"next_task"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTask:       "a",
		DeleteTask:    "d",
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",
		MoveTaskUp:    "K",
		MoveTaskDown:  "J",

		CreateProject: "n",
		DeleteProject: "D",
		OpenProject:   "enter",
		CloseBoard:    "esc",

		PrevLane: "h",
		NextLane: "l",
		PrevTask: "k",
		NextTask: "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in any unset bindings
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	if k.AddTask == "" {
		k.AddTask = defaults.AddTask
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.MoveTaskLeft == "" {
		k.MoveTaskLeft = defaults.MoveTaskLeft
	}
	if k.MoveTaskRight == "" {
		k.MoveTaskRight = defaults.MoveTaskRight
	}
	if k.MoveTaskUp == "" {
		k.MoveTaskUp = defaults.MoveTaskUp
	}
	if k.MoveTaskDown == "" {
		k.MoveTaskDown = defaults.MoveTaskDown
	}
	if k.CreateProject == "" {
		k.CreateProject = defaults.CreateProject
	}
	if k.DeleteProject == "" {
		k.DeleteProject = defaults.DeleteProject
	}
	if k.OpenProject == "" {
		k.OpenProject = defaults.OpenProject
	}
	if k.CloseBoard == "" {
		k.CloseBoard = defaults.CloseBoard
	}
	if k.PrevLane == "" {
		k.PrevLane = defaults.PrevLane
	}
	if k.NextLane == "" {
		k.NextLane = defaults.NextLane
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
