package studytracker

import (
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
)

// Tracker is the root coordinator. It owns the canonical session for today, routes
// task and timer operations through the engine and persists after every change.
type Tracker struct {
	engine *Engine
	timer  *Timer
	repo   Repository

	now    func() time.Time
	newID  func() string
	logger *slog.Logger
	quote  string

	subMu       sync.RWMutex
	subscribers map[int]func(Snapshot)
	nextSubID   int
}

type trackerOptions struct {
	now    func() time.Time
	logger *slog.Logger
	ticks  TickSource
	rand   *rand.Rand
	newID  func() string
}

// Option configures a Tracker
type Option func(*trackerOptions)

// WithClock sets the clock used for day keys and event times
func WithClock(now func() time.Time) Option {
	return func(o *trackerOptions) { o.now = now }
}

// WithLogger sets the logger; the default discards
func WithLogger(logger *slog.Logger) Option {
	return func(o *trackerOptions) { o.logger = logger }
}

// WithTickSource replaces the 1s ticker driving the timer
func WithTickSource(ticks TickSource) Option {
	return func(o *trackerOptions) { o.ticks = ticks }
}

// WithRand sets the source used to pick the startup quote
func WithRand(r *rand.Rand) Option {
	return func(o *trackerOptions) { o.rand = r }
}

// WithIDGenerator replaces NewTaskID
func WithIDGenerator(newID func() string) Option {
	return func(o *trackerOptions) { o.newID = newID }
}

// NewTracker loads today's session from repo and wires the task list, timer,
// persistence and subscribers together
func NewTracker(repo Repository, opts ...Option) *Tracker {
	o := trackerOptions{
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
		ticks:  TickerSource{},
		newID:  NewTaskID,
	}
	for _, opt := range opts {
		opt(&o)
	}

	t := &Tracker{
		repo:        repo,
		now:         o.now,
		newID:       o.newID,
		logger:      o.logger,
		quote:       RandomQuote(o.rand),
		subscribers: make(map[int]func(Snapshot)),
	}

	session := t.load(DayKey(t.now()))

	t.engine = NewEngine(State{
		Session: session,
		Timer:   TimerState{Elapsed: session.TotalStudySeconds},
	})
	registerHandlers(t.engine)
	t.engine.Listen(t.persist)
	t.engine.Listen(t.publish)

	t.timer = NewTimer(session.TotalStudySeconds, o.ticks, func(e Event) { t.engine.Emit(e) })
	t.timer.now = t.now

	return t
}

// registerHandlers wires validators and reducers for every event the tracker emits
func registerHandlers(engine *Engine) {
	engine.When(EventTaskAdded).
		Requires(requireTaskText, requireUniqueTaskID).
		Updates(reduceTaskAdded)

	engine.When(EventTaskToggled).
		Requires(requireTaskExists).
		Updates(reduceTaskToggled)

	engine.When(EventTaskRemoved).
		Requires(requireTaskExists).
		Updates(reduceTaskRemoved)

	engine.When(EventTimerStarted).Updates(reduceTimerStarted)
	engine.When(EventTimerPaused).Updates(reduceTimerPaused)

	engine.When(EventTimerTicked).
		Requires(requireNonNegativeElapsed).
		Updates(reduceTimerTicked)

	engine.When(EventTimerReset).Updates(reduceTimerReset)
	engine.When(EventSessionLoaded).Updates(reduceSessionLoaded)
}

// AddTask appends a task with the trimmed text. Blank text is ignored and
// reported as false.
func (t *Tracker) AddTask(text string) (Task, bool) {
	t.Refresh()

	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false
	}

	id := t.uniqueID()
	if !t.engine.Emit(TaskAdded{TaskID: id, Text: text, Time: t.now()}) {
		return Task{}, false
	}
	return Task{ID: id, Text: text}, true
}

// ToggleTask flips completion. Unknown ids are ignored and reported as false.
func (t *Tracker) ToggleTask(id string) bool {
	t.Refresh()
	return t.engine.Emit(TaskToggled{TaskID: id, Time: t.now()})
}

// RemoveTask deletes a task. Unknown ids are ignored and reported as false.
func (t *Tracker) RemoveTask(id string) bool {
	t.Refresh()
	return t.engine.Emit(TaskRemoved{TaskID: id, Time: t.now()})
}

// StartTimer starts counting study time; false if already running
func (t *Tracker) StartTimer() bool {
	t.Refresh()
	return t.timer.Start()
}

// PauseTimer stops counting, keeping the total; false if not running
func (t *Tracker) PauseTimer() bool {
	t.Refresh()
	return t.timer.Pause()
}

// ToggleTimer starts an idle timer or pauses a running one
func (t *Tracker) ToggleTimer() {
	if t.Timer().Running {
		t.PauseTimer()
		return
	}
	t.StartTimer()
}

// ResetTimer stops the timer and zeroes today's study time
func (t *Tracker) ResetTimer() {
	t.Refresh()
	t.timer.Reset()
}

// Snapshot returns the current state with the summary derived from it
func (t *Tracker) Snapshot() Snapshot {
	return newSnapshot(t.engine.State())
}

// Tasks returns a copy of today's tasks in insertion order
func (t *Tracker) Tasks() []Task {
	return t.Snapshot().Tasks
}

// Summary derives the progress summary from the current state
func (t *Tracker) Summary() Summary {
	s := t.engine.State()
	return Summarize(s.Session.Tasks, s.Session.TotalStudySeconds)
}

// Timer returns the stopwatch state as of the last timer event
func (t *Tracker) Timer() TimerState {
	return t.engine.State().Timer
}

// DateKey returns the day key of the active session
func (t *Tracker) DateKey() string {
	return t.engine.State().Session.DateKey
}

// Quote returns the quote picked when the tracker was created
func (t *Tracker) Quote() string {
	return t.quote
}

// Subscribe registers fn to receive a snapshot after every change. fn runs
// synchronously inside dispatch, with the timer locked for timer changes. It may
// read Snapshot, Tasks, Summary, Timer, DateKey and Quote but must not call
// anything that changes the tracker, Refresh included.
func (t *Tracker) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	t.subMu.Lock()
	id := t.nextSubID
	t.nextSubID++
	t.subscribers[id] = fn
	t.subMu.Unlock()

	return func() {
		t.subMu.Lock()
		delete(t.subscribers, id)
		t.subMu.Unlock()
	}
}

// Refresh switches to a new session when the calendar day has changed since the
// active one was loaded. It reports whether a switch happened.
func (t *Tracker) Refresh() bool {
	today := DayKey(t.now())
	if today == t.DateKey() {
		return false
	}

	session := t.load(today)
	t.logger.Info("calendar day changed", "from", t.DateKey(), "to", today)

	t.timer.rebase(session.TotalStudySeconds, func() {
		t.engine.Emit(SessionLoaded{Session: session, Time: t.now()})
	})
	return true
}

// Close pauses a running timer, stops its tick source and drops all subscribers.
// The study time is already persisted tick by tick.
func (t *Tracker) Close() {
	t.timer.Close()

	t.subMu.Lock()
	clear(t.subscribers)
	t.subMu.Unlock()
}

func (t *Tracker) load(dateKey string) Session {
	session, found := t.repo.Load(dateKey)
	session.DateKey = dateKey
	if session.Tasks == nil {
		session.Tasks = []Task{}
	}
	t.logger.Debug("session loaded", "date", dateKey, "found", found,
		"tasks", len(session.Tasks), "seconds", session.TotalStudySeconds)
	return session
}

// uniqueID draws ids until one is free in the active session. A generator that
// keeps colliding gives up and leaves the rejection to requireUniqueTaskID.
func (t *Tracker) uniqueID() string {
	tasks := t.engine.State().Session.Tasks
	id := t.newID()
	for attempt := 0; attempt < 16 && (id == "" || findTask(tasks, id) >= 0); attempt++ {
		id = t.newID()
	}
	return id
}
