package huhforms

import "github.com/charmbracelet/huh"

// CreateTaskForm creates a huh form for adding a task to the
// currently selected lane. Duplicate names are fine; the board
// uniquifies them on insert.
func CreateTaskForm(
	name *string,
	confirm *bool,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Task").
			Placeholder("What needs doing?").
			Validate(validateName).
			Value(name),

		huh.NewConfirm().
			Key("confirm").
			Title("Add this task?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
