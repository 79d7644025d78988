package huhforms

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// DeleteProjectForm asks for confirmation before a project and its
// stored lanes are removed. There is no undo after this one.
func DeleteProjectForm(projectName string, confirm *bool) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title(fmt.Sprintf("Delete %q and all of its tasks?", projectName)).
			Affirmative("Delete").
			Negative("Keep").
			Value(confirm),
	))
}
