package models

// Status is the derived completion state of a project.
type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
)

// String returns the status name as persisted.
func (s Status) String() string {
	return string(s)
}
