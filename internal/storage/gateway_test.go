package storage

import (
	"context"
	"errors"
	"testing"
)

// setupTestGateway opens an in-memory store with the schema applied.
func setupTestGateway(t *testing.T) Gateway {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	gw := New(db)
	t.Cleanup(func() { _ = gw.Close() })
	return gw
}

func TestSaveAndLoad(t *testing.T) {
	t.Parallel()

	gw := setupTestGateway(t)
	ctx := context.Background()

	if err := gw.Save(ctx, "projects", []byte(`[]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := gw.Load(ctx, "projects")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("Load = %q, want %q", got, `[]`)
	}
}

func TestSaveOverwrites(t *testing.T) {
	t.Parallel()

	gw := setupTestGateway(t)
	ctx := context.Background()

	if err := gw.Save(ctx, "k", []byte("first")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := gw.Save(ctx, "k", []byte("second")); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}

	got, err := gw.Load(ctx, "k")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Load = %q, want %q", got, "second")
	}
}

func TestLoadMissingKey(t *testing.T) {
	t.Parallel()

	gw := setupTestGateway(t)

	_, err := gw.Load(context.Background(), "never-saved")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	gw := setupTestGateway(t)
	ctx := context.Background()

	if err := gw.Save(ctx, "k", []byte("v")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := gw.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := gw.Load(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting again is a no-op, not an error.
	if err := gw.Delete(ctx, "k"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestProjectKeys(t *testing.T) {
	t.Parallel()

	keys := ProjectKeys("abc-123")
	want := []string{
		"toDoTasks_abc-123",
		"inProgressTasks_abc-123",
		"doneTasks_abc-123",
		"status_abc-123",
	}
	if len(keys) != len(want) {
		t.Fatalf("ProjectKeys returned %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}
