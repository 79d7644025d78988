// Package huhforms builds the huh input forms the TUI opens for
// creating projects and tasks. Validation lives here: the board and
// store never see empty names.
package huhforms

import (
	"errors"
	"time"

	"github.com/charmbracelet/huh"
)

// CreateProjectForm creates a huh form for adding a new project
func CreateProjectForm(
	name *string,
	dueDate *string,
	confirm *bool,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Project Name").
			Placeholder("Enter project name...").
			Validate(validateName).
			Value(name),

		huh.NewInput().
			Key("due").
			Title("Due Date (optional)").
			Placeholder("YYYY-MM-DD").
			Validate(validateDueDate).
			Value(dueDate),

		huh.NewConfirm().
			Key("confirm").
			Title("Create this project?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}

func validateName(s string) error {
	if s == "" {
		return errors.New("name cannot be empty")
	}
	if len(s) > 100 {
		return errors.New("name cannot exceed 100 characters")
	}
	return nil
}

func validateDueDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}
