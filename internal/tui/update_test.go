package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tablero/internal/config"
	"tablero/internal/storage"
	"tablero/internal/store"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupModel(t *testing.T, projectNames ...string) Model {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	gw := storage.New(db)
	t.Cleanup(func() { _ = gw.Close() })

	st := store.NewService(gw)
	for _, name := range projectNames {
		if _, err := st.CreateProject(context.Background(), name, nil); err != nil {
			t.Fatalf("CreateProject(%q): %v", name, err)
		}
	}
	return InitialModel(st, config.Default())
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestDeleteProjectAsksForConfirmation(t *testing.T) {
	t.Parallel()

	m := setupModel(t, "Trip")

	updated, _ := m.Update(keyPress('D'))
	m = updated.(Model)

	if m.mode != viewDeleteForm {
		t.Fatalf("mode = %d, want the delete confirm form", m.mode)
	}
	if m.form == nil {
		t.Fatal("no confirm form was opened")
	}
	if got := len(m.store.Projects()); got != 1 {
		t.Fatalf("project deleted before confirmation, %d left", got)
	}
}

func TestDeleteProjectConfirmed(t *testing.T) {
	t.Parallel()

	m := setupModel(t, "Trip")

	updated, _ := m.Update(keyPress('D'))
	m = updated.(Model)

	m.formConfirm = true
	m.submitDeleteForm()

	if got := len(m.store.Projects()); got != 0 {
		t.Errorf("%d projects left after confirmed delete, want 0", got)
	}
}

func TestDeleteProjectEmptyList(t *testing.T) {
	t.Parallel()

	m := setupModel(t)

	updated, _ := m.Update(keyPress('D'))
	m = updated.(Model)

	if m.mode != viewProjects {
		t.Errorf("mode = %d, want to stay on the project list", m.mode)
	}
	if m.form != nil {
		t.Error("a confirm form was opened with nothing selected")
	}
}

func TestProjectListNavigation(t *testing.T) {
	t.Parallel()

	m := setupModel(t, "Trip", "Garden")

	updated, _ := m.Update(keyPress('j'))
	m = updated.(Model)
	if m.selProject != 1 {
		t.Errorf("selProject = %d after next, want 1", m.selProject)
	}

	updated, _ = m.Update(keyPress('k'))
	m = updated.(Model)
	if m.selProject != 0 {
		t.Errorf("selProject = %d after prev, want 0", m.selProject)
	}
}

func TestProjectListHelpLabels(t *testing.T) {
	t.Parallel()

	keys := NewKeyMap(config.DefaultKeyMappings())

	if got := keys.NextProject.Help().Desc; got != "next project" {
		t.Errorf("NextProject help = %q", got)
	}
	if got := keys.PrevProject.Help().Desc; got != "prev project" {
		t.Errorf("PrevProject help = %q", got)
	}

	// The list screen's help bar must not talk about tasks.
	groups := listHelp{keys}.FullHelp()
	groups = append(groups, listHelp{keys}.ShortHelp())
	for _, group := range groups {
		for _, b := range group {
			desc := b.Help().Desc
			if desc == "next task" || desc == "prev task" {
				t.Errorf("project list help shows task label %q", desc)
			}
		}
	}
}
