package studytracker

import "time"

// dayKeyLayout matches the browser's Date.toDateString, e.g. "Mon Oct 19 2026"
const dayKeyLayout = "Mon Jan 02 2006"

// DayKey derives the session address from the local calendar date of t
func DayKey(t time.Time) string {
	return t.Local().Format(dayKeyLayout)
}

// TasksKey is the storage key holding a day's task list
func TasksKey(dayKey string) string {
	return "tasks-" + dayKey
}

// StudyTimeKey is the storage key holding a day's total study seconds
func StudyTimeKey(dayKey string) string {
	return "studyTime-" + dayKey
}
