// Package board implements the three-lane task board for a single
// open project: add, remove, and block moves between lanes, with the
// single-lane invariant and derived completion status.
package board

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"tablero/internal/models"
	"tablero/internal/names"
	"tablero/internal/storage"
)

// Service defines the operations on one open project's board.
//
// Mutations never fail on board state itself: duplicate names are
// uniquified, absent names are no-ops, drops are always accepted.
// The only error surfaced is degraded persistence, which callers
// report and carry on from; in-memory state is never rolled back.
type Service interface {
	// AddTask appends a task to a lane, uniquifying its name against
	// every task already on the board. Returns the final name.
	AddTask(ctx context.Context, name string, lane models.Lane) (string, error)

	// RemoveTask removes a task from whichever lane holds it. An
	// absent name is a successful no-op.
	RemoveTask(ctx context.Context, name string) error

	// MoveTasks pulls the named tasks out of whichever lanes hold
	// them and reinserts them as one contiguous block at index in the
	// target lane, preserving the given order. The index is clamped
	// to the lane bounds after the removals.
	MoveTasks(ctx context.Context, taskNames []string, target models.Lane, index int) error

	// Tasks returns the current contents of a lane.
	Tasks(lane models.Lane) []string

	// Status returns the derived completion status.
	Status() models.Status

	// Project returns the project record this board operates on.
	Project() *models.Project
}

// ProjectSaver persists the full project collection. The board calls
// it after every flush so the snapshot on the project record keeps
// pace with the live lane keys.
type ProjectSaver interface {
	SaveAll(ctx context.Context) error
}

// service implements Service against the key-value gateway.
type service struct {
	gw      storage.Gateway
	project *models.Project
	saver   ProjectSaver
}

// NewService binds a board to a project record. The caller is
// expected to have hydrated the record's lanes already.
func NewService(gw storage.Gateway, project *models.Project, saver ProjectSaver) Service {
	project.Status = project.Lanes.DeriveStatus()
	return &service{
		gw:      gw,
		project: project,
		saver:   saver,
	}
}

func (s *service) AddTask(ctx context.Context, name string, lane models.Lane) (string, error) {
	final := names.Uniquify(name, s.project.Lanes.Names())
	s.project.Lanes.Set(lane, append(s.project.Lanes.Get(lane), final))
	s.project.Status = s.project.Lanes.DeriveStatus()
	return final, s.flush(ctx)
}

func (s *service) RemoveTask(ctx context.Context, name string) error {
	if !s.project.Lanes.Remove(name) {
		return nil
	}
	s.project.Status = s.project.Lanes.DeriveStatus()
	return s.flush(ctx)
}

func (s *service) MoveTasks(ctx context.Context, taskNames []string, target models.Lane, index int) error {
	// A name can only be dropped once; keep the first occurrence.
	block := make([]string, 0, len(taskNames))
	seen := make(map[string]struct{}, len(taskNames))
	for _, name := range taskNames {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		block = append(block, name)
	}
	if len(block) == 0 {
		return nil
	}

	// Pull every moved name out of all three lanes, the target
	// included, so the block cannot duplicate an existing entry.
	for _, name := range block {
		s.project.Lanes.Remove(name)
	}

	tasks := s.project.Lanes.Get(target)
	if index < 0 {
		index = 0
	}
	if index > len(tasks) {
		index = len(tasks)
	}

	merged := make([]string, 0, len(tasks)+len(block))
	merged = append(merged, tasks[:index]...)
	merged = append(merged, block...)
	merged = append(merged, tasks[index:]...)
	s.project.Lanes.Set(target, merged)

	s.project.Status = s.project.Lanes.DeriveStatus()
	return s.flush(ctx)
}

// Tasks returns a copy; lane contents only change through the
// mutating operations, which flush.
func (s *service) Tasks(lane models.Lane) []string {
	return append([]string(nil), s.project.Lanes.Get(lane)...)
}

func (s *service) Status() models.Status {
	return s.project.Status
}

func (s *service) Project() *models.Project {
	return s.project
}

// flush writes the live working copy (three lane keys plus the
// status key) and then asks the store to persist the project list.
// Runs synchronously after every mutation so an abrupt exit loses at
// most the operation in flight.
func (s *service) flush(ctx context.Context) error {
	id := s.project.ID
	writes := []struct {
		key     string
		payload any
	}{
		{storage.TodoTasksKey(id), s.project.Lanes.Todo},
		{storage.InProgressTasksKey(id), s.project.Lanes.InProgress},
		{storage.DoneTasksKey(id), s.project.Lanes.Done},
		{storage.StatusKey(id), s.project.Status},
	}

	for _, w := range writes {
		data, err := json.Marshal(w.payload)
		if err != nil {
			slog.Warn("failed to encode board state", "key", w.key, "error", err)
			return fmt.Errorf("failed to encode %s: %w", w.key, err)
		}
		if err := s.gw.Save(ctx, w.key, data); err != nil {
			slog.Warn("failed to persist board state", "key", w.key, "error", err)
			return fmt.Errorf("failed to persist %s: %w", w.key, err)
		}
	}

	if s.saver != nil {
		if err := s.saver.SaveAll(ctx); err != nil {
			return fmt.Errorf("failed to persist project list: %w", err)
		}
	}
	return nil
}
