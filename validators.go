package studytracker

import "strings"

// requireTaskText rejects tasks whose text is blank
func requireTaskText(state State, event Event) bool {
	e, ok := event.(TaskAdded)
	return ok && strings.TrimSpace(e.Text) != ""
}

// requireUniqueTaskID rejects ids that are empty or already taken
func requireUniqueTaskID(state State, event Event) bool {
	e, ok := event.(TaskAdded)
	return ok && e.TaskID != "" && findTask(state.Session.Tasks, e.TaskID) < 0
}

// requireTaskExists rejects toggles and removals of unknown tasks
func requireTaskExists(state State, event Event) bool {
	var id string
	switch e := event.(type) {
	case TaskToggled:
		id = e.TaskID
	case TaskRemoved:
		id = e.TaskID
	default:
		return false
	}
	return findTask(state.Session.Tasks, id) >= 0
}

// requireNonNegativeElapsed keeps study time from going below zero
func requireNonNegativeElapsed(state State, event Event) bool {
	e, ok := event.(TimerTicked)
	return ok && e.Elapsed >= 0
}
