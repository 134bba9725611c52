package studytracker

import (
	"sync"
	"time"
)

// TickInterval is the fixed cadence of the study timer. Each tick counts as one
// second whatever the scheduler actually delivered; drift is not corrected.
const TickInterval = time.Second

// TickSource produces recurring ticks until the returned stop func is called
type TickSource interface {
	Start(interval time.Duration, tick func()) (stop func())
}

// TickerSource is the production TickSource backed by time.Ticker
type TickerSource struct{}

// Start runs tick on its own goroutine every interval. stop does not wait for an
// in-flight tick; Timer discards those by generation.
func (TickerSource) Start(interval time.Duration, tick func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				tick()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}

// Timer is the stopwatch engine. It is Idle until Start and reports every change
// through notify, which is called with the timer lock held so notifications arrive
// in the order the changes happened.
type Timer struct {
	mu sync.Mutex

	elapsed    int
	running    bool
	generation uint64
	stop       func()

	source TickSource
	notify func(Event)
	now    func() time.Time
}

// NewTimer creates an idle timer resuming from initial seconds
func NewTimer(initial int, source TickSource, notify func(Event)) *Timer {
	if initial < 0 {
		initial = 0
	}
	if source == nil {
		source = TickerSource{}
	}
	if notify == nil {
		notify = func(Event) {}
	}
	return &Timer{
		elapsed: initial,
		source:  source,
		notify:  notify,
		now:     time.Now,
	}
}

// Start moves Idle to Running. It reports false when already running.
func (t *Timer) Start() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return false
	}

	t.running = true
	t.generation++
	gen := t.generation
	t.stop = t.source.Start(TickInterval, func() { t.tick(gen) })

	t.notify(TimerStarted{Elapsed: t.elapsed, Time: t.now()})
	return true
}

// Pause moves Running to Idle, keeping the elapsed seconds. It reports false when idle.
func (t *Timer) Pause() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return false
	}

	t.halt()
	t.notify(TimerPaused{Elapsed: t.elapsed, Time: t.now()})
	return true
}

// Reset stops the timer from any state and zeroes it
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.halt()
	t.elapsed = 0
	t.notify(TimerReset{Time: t.now()})
}

// State returns elapsed seconds and whether the timer is running
func (t *Timer) State() TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return TimerState{Elapsed: t.elapsed, Running: t.running}
}

// Close tears down the tick source. A running timer is paused and reports it.
func (t *Timer) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	wasRunning := t.running
	t.halt()
	if wasRunning {
		t.notify(TimerPaused{Elapsed: t.elapsed, Time: t.now()})
	}
}

// rebase replaces the elapsed seconds and runs fn under the timer lock, so no tick
// can slip in between the two
func (t *Timer) rebase(seconds int, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if seconds < 0 {
		seconds = 0
	}
	t.elapsed = seconds
	if fn != nil {
		fn()
	}
}

func (t *Timer) tick(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// stale tick from a run that has since been paused or reset
	if !t.running || gen != t.generation {
		return
	}

	t.elapsed++
	t.notify(TimerTicked{Elapsed: t.elapsed, Time: t.now()})
}

// halt stops the tick source; callers hold t.mu
func (t *Timer) halt() {
	t.running = false
	t.generation++
	if t.stop != nil {
		t.stop()
		t.stop = nil
	}
}
