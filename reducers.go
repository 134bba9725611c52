package studytracker

import "slices"

// reduceTaskAdded appends the new task at the end of the list
func reduceTaskAdded(state State, event Event) State {
	e := event.(TaskAdded)

	tasks := make([]Task, 0, len(state.Session.Tasks)+1)
	tasks = append(tasks, state.Session.Tasks...)
	state.Session.Tasks = append(tasks, Task{
		ID:        e.TaskID,
		Text:      e.Text,
		Completed: false,
	})

	return state
}

// reduceTaskToggled flips completion on the matching task
func reduceTaskToggled(state State, event Event) State {
	e := event.(TaskToggled)

	i := findTask(state.Session.Tasks, e.TaskID)
	if i < 0 {
		return state
	}

	tasks := slices.Clone(state.Session.Tasks)
	tasks[i].Completed = !tasks[i].Completed
	state.Session.Tasks = tasks

	return state
}

// reduceTaskRemoved drops the matching task, keeping the order of the rest
func reduceTaskRemoved(state State, event Event) State {
	e := event.(TaskRemoved)

	state.Session.Tasks = slices.DeleteFunc(slices.Clone(state.Session.Tasks), func(t Task) bool {
		return t.ID == e.TaskID
	})

	return state
}

func reduceTimerStarted(state State, event Event) State {
	e := event.(TimerStarted)
	state.Timer = TimerState{Elapsed: e.Elapsed, Running: true}
	return state
}

func reduceTimerPaused(state State, event Event) State {
	e := event.(TimerPaused)
	state.Timer = TimerState{Elapsed: e.Elapsed, Running: false}
	return state
}

// reduceTimerTicked makes the timer's cumulative total the session's study time
func reduceTimerTicked(state State, event Event) State {
	e := event.(TimerTicked)
	state.Timer.Elapsed = e.Elapsed
	state.Session.TotalStudySeconds = e.Elapsed
	return state
}

func reduceTimerReset(state State, event Event) State {
	state.Timer = TimerState{}
	state.Session.TotalStudySeconds = 0
	return state
}

// reduceSessionLoaded swaps in another day's session. The timer keeps running if it was.
func reduceSessionLoaded(state State, event Event) State {
	e := event.(SessionLoaded)
	state.Session = e.Session
	state.Session.Tasks = slices.Clone(e.Session.Tasks)
	state.Timer.Elapsed = e.Session.TotalStudySeconds
	return state
}
