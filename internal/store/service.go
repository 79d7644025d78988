// Package store owns the project collection: creation with
// uniquified names, idempotent deletion, and bulk load/save against
// the durable key-value gateway.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tablero/internal/board"
	"tablero/internal/models"
	"tablero/internal/names"
	"tablero/internal/storage"
)

// Service defines all project-collection operations.
type Service interface {
	// Read operations
	Projects() []*models.Project
	Get(id string) (*models.Project, bool)
	FindByName(name string) (*models.Project, bool)

	// Write operations
	CreateProject(ctx context.Context, name string, dueDate *time.Time) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error

	// Persistence
	LoadAll(ctx context.Context) error
	SaveAll(ctx context.Context) error

	// OpenBoard binds a task board to a project, hydrating its lanes
	// from the live per-project keys.
	OpenBoard(ctx context.Context, id string) (board.Service, error)
}

// service implements Service. The projects slice is ordered by
// creation; ordering matters only for display.
type service struct {
	gw       storage.Gateway
	projects []*models.Project
}

// NewService creates a project store over the gateway. Call LoadAll
// before reading.
func NewService(gw storage.Gateway) Service {
	return &service{gw: gw}
}

// Projects returns the collection in creation order. Records and
// lane contents are copies; mutations go through the service so they
// flush.
func (s *service) Projects() []*models.Project {
	out := make([]*models.Project, len(s.projects))
	for i, p := range s.projects {
		cp := *p
		cp.Lanes = p.Lanes.Clone()
		out[i] = &cp
	}
	return out
}

// Get looks a project up by id.
func (s *service) Get(id string) (*models.Project, bool) {
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// FindByName looks a project up by display name.
func (s *service) FindByName(name string) (*models.Project, bool) {
	for _, p := range s.projects {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// CreateProject appends a new project with a collision-free name and
// a fresh id, then persists the collection.
func (s *service) CreateProject(ctx context.Context, name string, dueDate *time.Time) (*models.Project, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(name) > 100 {
		return nil, ErrNameTooLong
	}

	taken := make(map[string]struct{}, len(s.projects))
	for _, p := range s.projects {
		taken[p.Name] = struct{}{}
	}

	project := &models.Project{
		ID:      uuid.NewString(),
		Name:    names.Uniquify(name, taken),
		DueDate: dueDate,
		Status:  models.StatusOngoing,
	}
	s.projects = append(s.projects, project)

	if err := s.SaveAll(ctx); err != nil {
		return project, err
	}
	return project, nil
}

// DeleteProject removes a project and purges its per-project keys.
// Deleting an absent project is a successful no-op.
func (s *service) DeleteProject(ctx context.Context, id string) error {
	idx := -1
	for i, p := range s.projects {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}
	s.projects = append(s.projects[:idx:idx], s.projects[idx+1:]...)

	// Sweep the live working-copy keys so deletes leave nothing
	// behind. Failures degrade persistence, they do not undo the
	// in-memory removal.
	for _, key := range storage.ProjectKeys(id) {
		if err := s.gw.Delete(ctx, key); err != nil {
			slog.Warn("failed to purge project key", "key", key, "error", err)
		}
	}

	return s.SaveAll(ctx)
}

// LoadAll restores the collection from the projects key. A missing or
// corrupt payload yields an empty collection, never an error: the
// user gets a working tool and a log line, not a crash.
func (s *service) LoadAll(ctx context.Context) error {
	data, err := s.gw.Load(ctx, storage.ProjectsKey)
	if errors.Is(err, storage.ErrNotFound) {
		s.projects = nil
		return nil
	}
	if err != nil {
		slog.Warn("failed to load project list, starting empty", "error", err)
		s.projects = nil
		return nil
	}

	var projects []*models.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		slog.Warn("corrupt project list, starting empty", "error", err)
		s.projects = nil
		return nil
	}
	s.projects = projects
	return nil
}

// SaveAll writes the whole collection under one key. Failures are
// logged and returned; the in-memory state stays authoritative until
// the next successful save.
func (s *service) SaveAll(ctx context.Context) error {
	data, err := json.Marshal(s.projects)
	if err != nil {
		slog.Error("failed to encode project list", "error", err)
		return fmt.Errorf("failed to encode project list: %w", err)
	}
	if err := s.gw.Save(ctx, storage.ProjectsKey, data); err != nil {
		slog.Warn("failed to persist project list", "error", err)
		return err
	}
	return nil
}

// OpenBoard hydrates a project's lanes and hands back a bound board.
//
// Two representations of the lanes exist on disk: the snapshot inside
// the projects record and the live per-lane keys the board flushes
// after every mutation. The live keys are authoritative; the snapshot
// is only consulted for a lane whose key was never written. Status is
// recomputed from the hydrated lanes rather than read back, since it
// is fully derived.
func (s *service) OpenBoard(ctx context.Context, id string) (board.Service, error) {
	project, ok := s.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}

	laneKeys := []struct {
		key  string
		lane models.Lane
	}{
		{storage.TodoTasksKey(id), models.LaneTodo},
		{storage.InProgressTasksKey(id), models.LaneInProgress},
		{storage.DoneTasksKey(id), models.LaneDone},
	}
	for _, lk := range laneKeys {
		data, err := s.gw.Load(ctx, lk.key)
		if errors.Is(err, storage.ErrNotFound) {
			continue // keep the snapshot lane
		}
		if err != nil {
			slog.Warn("failed to load lane, keeping snapshot", "key", lk.key, "error", err)
			continue
		}
		var tasks []string
		if err := json.Unmarshal(data, &tasks); err != nil {
			slog.Warn("corrupt lane payload, keeping snapshot", "key", lk.key, "error", err)
			continue
		}
		project.Lanes.Set(lk.lane, tasks)
	}

	return board.NewService(s.gw, project, s), nil
}
