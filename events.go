package studytracker

import "time"

// Event is anything the engine can process
type Event interface {
	Type() string
	Timestamp() time.Time
}

const (
	EventTaskAdded     = "task_added"
	EventTaskToggled   = "task_toggled"
	EventTaskRemoved   = "task_removed"
	EventTimerStarted  = "timer_started"
	EventTimerPaused   = "timer_paused"
	EventTimerTicked   = "timer_ticked"
	EventTimerReset    = "timer_reset"
	EventSessionLoaded = "session_loaded"
)

// TaskAdded event
type TaskAdded struct {
	TaskID string
	Text   string
	Time   time.Time
}

func (e TaskAdded) Type() string         { return EventTaskAdded }
func (e TaskAdded) Timestamp() time.Time { return e.Time }

// TaskToggled event
type TaskToggled struct {
	TaskID string
	Time   time.Time
}

func (e TaskToggled) Type() string         { return EventTaskToggled }
func (e TaskToggled) Timestamp() time.Time { return e.Time }

// TaskRemoved event
type TaskRemoved struct {
	TaskID string
	Time   time.Time
}

func (e TaskRemoved) Type() string         { return EventTaskRemoved }
func (e TaskRemoved) Timestamp() time.Time { return e.Time }

// TimerStarted event
type TimerStarted struct {
	Elapsed int
	Time    time.Time
}

func (e TimerStarted) Type() string         { return EventTimerStarted }
func (e TimerStarted) Timestamp() time.Time { return e.Time }

// TimerPaused event
type TimerPaused struct {
	Elapsed int
	Time    time.Time
}

func (e TimerPaused) Type() string         { return EventTimerPaused }
func (e TimerPaused) Timestamp() time.Time { return e.Time }

// TimerTicked carries the cumulative elapsed seconds after one tick
type TimerTicked struct {
	Elapsed int
	Time    time.Time
}

func (e TimerTicked) Type() string         { return EventTimerTicked }
func (e TimerTicked) Timestamp() time.Time { return e.Time }

// TimerReset event
type TimerReset struct {
	Time time.Time
}

func (e TimerReset) Type() string         { return EventTimerReset }
func (e TimerReset) Timestamp() time.Time { return e.Time }

// SessionLoaded replaces the active session, e.g. after the calendar day changed
type SessionLoaded struct {
	Session Session
	Time    time.Time
}

func (e SessionLoaded) Type() string         { return EventSessionLoaded }
func (e SessionLoaded) Timestamp() time.Time { return e.Time }
