package models

// Lanes holds the three ordered task lists of one project.
// Task names are unique across the whole struct: a name lives in at
// most one lane at a time, and the board operations preserve that.
type Lanes struct {
	Todo       []string `json:"todo"`
	InProgress []string `json:"inProgress"`
	Done       []string `json:"done"`
}

// Get returns the task list for a lane.
func (l *Lanes) Get(lane Lane) []string {
	switch lane {
	case LaneTodo:
		return l.Todo
	case LaneInProgress:
		return l.InProgress
	case LaneDone:
		return l.Done
	}
	return nil
}

// Set replaces the task list for a lane.
func (l *Lanes) Set(lane Lane, tasks []string) {
	switch lane {
	case LaneTodo:
		l.Todo = tasks
	case LaneInProgress:
		l.InProgress = tasks
	case LaneDone:
		l.Done = tasks
	}
}

// Names returns the union of task names across all three lanes.
func (l *Lanes) Names() map[string]struct{} {
	taken := make(map[string]struct{}, len(l.Todo)+len(l.InProgress)+len(l.Done))
	for _, lane := range AllLanes {
		for _, name := range l.Get(lane) {
			taken[name] = struct{}{}
		}
	}
	return taken
}

// Find locates a task by name. Returns the lane holding it and its
// position, or false when the name is in no lane.
func (l *Lanes) Find(name string) (Lane, int, bool) {
	for _, lane := range AllLanes {
		for i, task := range l.Get(lane) {
			if task == name {
				return lane, i, true
			}
		}
	}
	return 0, 0, false
}

// Remove drops a task from whichever lane holds it. Returns whether
// anything was removed.
func (l *Lanes) Remove(name string) bool {
	lane, i, ok := l.Find(name)
	if !ok {
		return false
	}
	tasks := l.Get(lane)
	l.Set(lane, append(tasks[:i:i], tasks[i+1:]...))
	return true
}

// Count returns the total number of tasks on the board.
func (l *Lanes) Count() int {
	return len(l.Todo) + len(l.InProgress) + len(l.Done)
}

// DeriveStatus computes project completion: completed when every
// remaining task sits in Done and there is at least one.
func (l *Lanes) DeriveStatus() Status {
	if len(l.Todo) == 0 && len(l.InProgress) == 0 && len(l.Done) > 0 {
		return StatusCompleted
	}
	return StatusOngoing
}

// Clone returns a deep copy, used when snapshotting a board.
func (l *Lanes) Clone() Lanes {
	return Lanes{
		Todo:       append([]string(nil), l.Todo...),
		InProgress: append([]string(nil), l.InProgress...),
		Done:       append([]string(nil), l.Done...),
	}
}
