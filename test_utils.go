package studytracker

import (
	"strconv"
	"sync"
	"time"
)

// Test utilities - shared helpers for tests

// ManualTicks is a TickSource driven by hand, so tests decide when a second passes
type ManualTicks struct {
	mu     sync.Mutex
	tick   func()
	last   func()
	starts int
	stops  int
}

func (m *ManualTicks) Start(interval time.Duration, tick func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tick = tick
	m.last = tick
	m.starts++

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.tick = nil
			m.stops++
		})
	}
}

// Fire delivers n ticks to the active run, if any
func (m *ManualTicks) Fire(n int) {
	for i := 0; i < n; i++ {
		m.mu.Lock()
		tick := m.tick
		m.mu.Unlock()

		if tick != nil {
			tick()
		}
	}
}

// FireStale delivers a tick to the most recent run even if it was stopped,
// like a ticker that fired just before being cancelled
func (m *ManualTicks) FireStale() {
	m.mu.Lock()
	tick := m.last
	m.mu.Unlock()

	if tick != nil {
		tick()
	}
}

// Active reports whether a run is currently ticking
func (m *ManualTicks) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tick != nil
}

// Counts returns how many runs were started and stopped
func (m *ManualTicks) Counts() (starts, stops int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts, m.stops
}

// FixedClock returns a clock that reports t until moved with the returned setter
func FixedClock(t time.Time) (now func() time.Time, set func(time.Time)) {
	var mu sync.Mutex
	current := t
	now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}
	set = func(next time.Time) {
		mu.Lock()
		defer mu.Unlock()
		current = next
	}
	return now, set
}

// SequentialIDs returns a generator producing T1, T2, ...
func SequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return "T" + strconv.Itoa(n)
	}
}
