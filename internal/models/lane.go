package models

import "fmt"

// Lane identifies one of the three fixed board lanes.
// Unlike user-defined column schemes, the set is closed: every
// project has exactly these three, in this order.
type Lane int

const (
	LaneTodo Lane = iota
	LaneInProgress
	LaneDone
)

// AllLanes lists the lanes in board order (left to right).
var AllLanes = [3]Lane{LaneTodo, LaneInProgress, LaneDone}

// String returns the stable machine name used in CLI arguments and keys.
func (l Lane) String() string {
	switch l {
	case LaneTodo:
		return "todo"
	case LaneInProgress:
		return "in-progress"
	case LaneDone:
		return "done"
	}
	return fmt.Sprintf("lane(%d)", int(l))
}

// Title returns the human-readable lane header.
func (l Lane) Title() string {
	switch l {
	case LaneTodo:
		return "To Do"
	case LaneInProgress:
		return "In Progress"
	case LaneDone:
		return "Done"
	}
	return l.String()
}

// Next returns the lane to the right, or false when already at Done.
func (l Lane) Next() (Lane, bool) {
	if l >= LaneDone {
		return l, false
	}
	return l + 1, true
}

// Prev returns the lane to the left, or false when already at To Do.
func (l Lane) Prev() (Lane, bool) {
	if l <= LaneTodo {
		return l, false
	}
	return l - 1, true
}

// ParseLane maps user input to a lane. Accepts the canonical names
// plus a few common spellings.
func ParseLane(s string) (Lane, error) {
	switch s {
	case "todo", "to-do", "backlog":
		return LaneTodo, nil
	case "in-progress", "inprogress", "doing", "progress":
		return LaneInProgress, nil
	case "done", "complete", "completed":
		return LaneDone, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLane, s)
}
