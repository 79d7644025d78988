package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"tablero/internal/models"
	"tablero/internal/storage"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupGateway(t *testing.T) storage.Gateway {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	gw := storage.New(db)
	t.Cleanup(func() { _ = gw.Close() })
	return gw
}

func setupStore(t *testing.T) (Service, storage.Gateway) {
	t.Helper()
	gw := setupGateway(t)
	svc := NewService(gw)
	if err := svc.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	return svc, gw
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestCreateProject(t *testing.T) {
	t.Parallel()

	svc, _ := setupStore(t)
	ctx := context.Background()

	due := time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)
	p, err := svc.CreateProject(ctx, "Trip", &due)
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if p.ID == "" {
		t.Error("expected a fresh id")
	}
	if p.Name != "Trip" {
		t.Errorf("Name = %q", p.Name)
	}
	if p.Status != models.StatusOngoing {
		t.Errorf("Status = %v, want ongoing", p.Status)
	}
	if p.Lanes.Count() != 0 {
		t.Errorf("new project should have empty lanes: %+v", p.Lanes)
	}
	if len(svc.Projects()) != 1 {
		t.Errorf("collection size = %d, want 1", len(svc.Projects()))
	}
}

func TestCreateProjectEmptyName(t *testing.T) {
	t.Parallel()

	svc, _ := setupStore(t)

	if _, err := svc.CreateProject(context.Background(), "", nil); !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}
}

func TestCreateProjectUniquifiesName(t *testing.T) {
	t.Parallel()

	svc, _ := setupStore(t)
	ctx := context.Background()

	want := []string{"Trip", "Trip (1)", "Trip (2)"}
	for i := range want {
		p, err := svc.CreateProject(ctx, "Trip", nil)
		if err != nil {
			t.Fatalf("CreateProject %d: %v", i, err)
		}
		if p.Name != want[i] {
			t.Errorf("project %d name = %q, want %q", i, p.Name, want[i])
		}
	}
}

func TestDeleteProject(t *testing.T) {
	t.Parallel()

	svc, _ := setupStore(t)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, "Trip", nil)
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	if err := svc.DeleteProject(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if len(svc.Projects()) != 0 {
		t.Errorf("collection not empty after delete")
	}

	// Second delete is a no-op, not an error.
	if err := svc.DeleteProject(ctx, p.ID); err != nil {
		t.Errorf("second DeleteProject: %v", err)
	}
}

func TestDeleteProjectPurgesWorkingCopy(t *testing.T) {
	t.Parallel()

	svc, gw := setupStore(t)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, "Trip", nil)
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	b, err := svc.OpenBoard(ctx, p.ID)
	if err != nil {
		t.Fatalf("OpenBoard: %v", err)
	}
	if _, err := b.AddTask(ctx, "Pack", models.LaneTodo); err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	if err := svc.DeleteProject(ctx, p.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	for _, key := range storage.ProjectKeys(p.ID) {
		if _, err := gw.Load(ctx, key); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("key %s survived delete (err=%v)", key, err)
		}
	}
}

func TestSaveAllLoadAllRoundTrip(t *testing.T) {
	t.Parallel()

	svc, gw := setupStore(t)
	ctx := context.Background()

	due := time.Date(2027, time.January, 15, 0, 0, 0, 0, time.UTC)
	if _, err := svc.CreateProject(ctx, "Trip", &due); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	if _, err := svc.CreateProject(ctx, "Garden", nil); err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	// A second store over the same gateway must see an equal
	// collection.
	other := NewService(gw)
	if err := other.LoadAll(ctx); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	orig, restored := svc.Projects(), other.Projects()
	if len(restored) != len(orig) {
		t.Fatalf("restored %d projects, want %d", len(restored), len(orig))
	}
	for i := range orig {
		if restored[i].ID != orig[i].ID || restored[i].Name != orig[i].Name || restored[i].Status != orig[i].Status {
			t.Errorf("project %d mismatch: %+v vs %+v", i, restored[i], orig[i])
		}
	}
	if restored[0].DueDate == nil || !restored[0].DueDate.Equal(due) {
		t.Errorf("due date lost: %v", restored[0].DueDate)
	}
}

func TestLoadAllMissingPayload(t *testing.T) {
	t.Parallel()

	svc, _ := setupStore(t)
	if len(svc.Projects()) != 0 {
		t.Errorf("fresh store should be empty, got %d projects", len(svc.Projects()))
	}
}

func TestLoadAllCorruptPayload(t *testing.T) {
	t.Parallel()

	gw := setupGateway(t)
	ctx := context.Background()
	if err := gw.Save(ctx, storage.ProjectsKey, []byte("{not json")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	svc := NewService(gw)
	if err := svc.LoadAll(ctx); err != nil {
		t.Fatalf("corrupt payload must not be fatal: %v", err)
	}
	if len(svc.Projects()) != 0 {
		t.Errorf("corrupt payload should load as empty, got %d", len(svc.Projects()))
	}
}

func TestOpenBoardUnknownProject(t *testing.T) {
	t.Parallel()

	svc, _ := setupStore(t)

	if _, err := svc.OpenBoard(context.Background(), "no-such-id"); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestOpenBoardPrefersLiveKeys(t *testing.T) {
	t.Parallel()

	svc, gw := setupStore(t)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, "Trip", nil)
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	// Simulate a stale snapshot: the record says one thing, the live
	// lane key another. The live key must win.
	p.Lanes.Todo = []string{"stale"}
	live, _ := json.Marshal([]string{"fresh"})
	if err := gw.Save(ctx, storage.TodoTasksKey(p.ID), live); err != nil {
		t.Fatalf("Save: %v", err)
	}

	b, err := svc.OpenBoard(ctx, p.ID)
	if err != nil {
		t.Fatalf("OpenBoard: %v", err)
	}
	todo := b.Tasks(models.LaneTodo)
	if len(todo) != 1 || todo[0] != "fresh" {
		t.Errorf("Todo = %v, want the live working copy", todo)
	}
}

func TestOpenBoardFallsBackToSnapshot(t *testing.T) {
	t.Parallel()

	svc, _ := setupStore(t)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, "Trip", nil)
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	// Snapshot has lanes but no live keys were ever written.
	p.Lanes.Done = []string{"Pick dates"}

	b, err := svc.OpenBoard(ctx, p.ID)
	if err != nil {
		t.Fatalf("OpenBoard: %v", err)
	}
	done := b.Tasks(models.LaneDone)
	if len(done) != 1 || done[0] != "Pick dates" {
		t.Errorf("Done = %v, want snapshot contents", done)
	}
	if b.Status() != models.StatusCompleted {
		t.Errorf("status should be recomputed from hydrated lanes, got %v", b.Status())
	}
}

func TestBoardFlushKeepsSnapshotCurrent(t *testing.T) {
	t.Parallel()

	svc, gw := setupStore(t)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, "Trip", nil)
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	b, err := svc.OpenBoard(ctx, p.ID)
	if err != nil {
		t.Fatalf("OpenBoard: %v", err)
	}
	if _, err := b.AddTask(ctx, "Pack", models.LaneTodo); err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	// The board flush persists the collection through the store, so a
	// cold load sees the task inside the project snapshot too.
	other := NewService(gw)
	if err := other.LoadAll(ctx); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	restored, ok := other.Get(p.ID)
	if !ok {
		t.Fatal("project missing after reload")
	}
	if len(restored.Lanes.Todo) != 1 || restored.Lanes.Todo[0] != "Pack" {
		t.Errorf("snapshot lanes = %+v, want the flushed task", restored.Lanes)
	}
}

func TestProjectsReturnsCopies(t *testing.T) {
	t.Parallel()

	svc, _ := setupStore(t)
	ctx := context.Background()

	p, err := svc.CreateProject(ctx, "Trip", nil)
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}
	b, err := svc.OpenBoard(ctx, p.ID)
	if err != nil {
		t.Fatalf("OpenBoard: %v", err)
	}
	if _, err := b.AddTask(ctx, "Pack", models.LaneTodo); err != nil {
		t.Fatalf("AddTask: %v", err)
	}

	// Scribbling on the returned records must not reach the store.
	projects := svc.Projects()
	projects[0].Name = "Clobbered"
	projects[0].Lanes.Todo[0] = "Clobbered"

	kept, ok := svc.Get(p.ID)
	if !ok {
		t.Fatal("project missing")
	}
	if kept.Name != "Trip" {
		t.Errorf("Name = %q, want Trip", kept.Name)
	}
	if kept.Lanes.Todo[0] != "Pack" {
		t.Errorf("Todo = %v, want the original task", kept.Lanes.Todo)
	}
}
