package studytracker

import "slices"

// Task is one entry on the day's to-do list
type Task struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Session holds the tasks and accumulated study time for one calendar day
type Session struct {
	DateKey           string `json:"date" yaml:"date"`
	Tasks             []Task `json:"tasks" yaml:"tasks"`
	TotalStudySeconds int    `json:"total_study_seconds" yaml:"total_study_seconds"`
}

// TimerState is the transient stopwatch state. Only Elapsed survives a reload.
type TimerState struct {
	Elapsed int  `json:"elapsed" yaml:"elapsed"`
	Running bool `json:"running" yaml:"running"`
}

// State is what the engine reduces events into
type State struct {
	Session Session
	Timer   TimerState
}

// Snapshot is an immutable view of the tracker handed to renderers and subscribers
type Snapshot struct {
	DateKey           string     `json:"date" yaml:"date"`
	Tasks             []Task     `json:"tasks" yaml:"tasks"`
	TotalStudySeconds int        `json:"total_study_seconds" yaml:"total_study_seconds"`
	Timer             TimerState `json:"timer" yaml:"timer"`
	Summary           Summary    `json:"summary" yaml:"summary"`
}

func newSnapshot(s State) Snapshot {
	tasks := slices.Clone(s.Session.Tasks)
	if tasks == nil {
		tasks = []Task{}
	}
	return Snapshot{
		DateKey:           s.Session.DateKey,
		Tasks:             tasks,
		TotalStudySeconds: s.Session.TotalStudySeconds,
		Timer:             s.Timer,
		Summary:           Summarize(tasks, s.Session.TotalStudySeconds),
	}
}

// findTask returns the index of the task with the given id, or -1
func findTask(tasks []Task, id string) int {
	return slices.IndexFunc(tasks, func(t Task) bool { return t.ID == id })
}
