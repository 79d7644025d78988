package models

import "time"

// Project is the top-level organizational unit: a named board with an
// optional due date. The embedded lanes and status are the snapshot
// persisted with the project list; the live working copy lives under
// the project's own storage keys while a board is open.
type Project struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	DueDate *time.Time `json:"dueDate,omitempty"`
	Status  Status     `json:"status"`
	Lanes   Lanes      `json:"lanes"`
}

// Overdue reports whether the project has a due date in the past and
// is not yet completed.
func (p *Project) Overdue(now time.Time) bool {
	return p.DueDate != nil && p.DueDate.Before(now) && p.Status != StatusCompleted
}
