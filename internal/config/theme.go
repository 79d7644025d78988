package config

// Theme holds the handful of colors the TUI uses, as hex strings.
type Theme struct {
	Accent   string `yaml:"accent"`
	Muted    string `yaml:"muted"`
	Selected string `yaml:"selected"`
	Overdue  string `yaml:"overdue"`
	Done     string `yaml:"done"`
}

// DefaultTheme returns the built-in color scheme.
func DefaultTheme() Theme {
	return Theme{
		Accent:   "#7D56F4",
		Muted:    "#6C6C6C",
		Selected: "#F2E14C",
		Overdue:  "#E06C75",
		Done:     "#98C379",
	}
}

// applyDefaults fills in any unset colors
func (t *Theme) applyDefaults() {
	defaults := DefaultTheme()
	if t.Accent == "" {
		t.Accent = defaults.Accent
	}
	if t.Muted == "" {
		t.Muted = defaults.Muted
	}
	if t.Selected == "" {
		t.Selected = defaults.Selected
	}
	if t.Overdue == "" {
		t.Overdue = defaults.Overdue
	}
	if t.Done == "" {
		t.Done = defaults.Done
	}
}
