package storage

// Key layout. The project list lives under one key; each project
// additionally owns four keys for the live working copy of its lanes
// and status, derived from its id. DeleteProject purges all four.

// ProjectsKey holds the serialized project collection.
const ProjectsKey = "projects"

// TodoTasksKey returns the key for a project's To Do lane.
func TodoTasksKey(projectID string) string {
	return "toDoTasks_" + projectID
}

// InProgressTasksKey returns the key for a project's In Progress lane.
func InProgressTasksKey(projectID string) string {
	return "inProgressTasks_" + projectID
}

// DoneTasksKey returns the key for a project's Done lane.
func DoneTasksKey(projectID string) string {
	return "doneTasks_" + projectID
}

// StatusKey returns the key for a project's completion status.
func StatusKey(projectID string) string {
	return "status_" + projectID
}

// ProjectKeys lists every per-project key, in lane order then status.
func ProjectKeys(projectID string) []string {
	return []string{
		TodoTasksKey(projectID),
		InProgressTasksKey(projectID),
		DoneTasksKey(projectID),
		StatusKey(projectID),
	}
}
