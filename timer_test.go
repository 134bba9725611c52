package studytracker

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder collects the events a timer reports
type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) notify(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.events {
		out = append(out, e.Type())
	}
	return out
}

func (r *recorder) last() Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}

func TestTimer_TicksAccumulateFromInitialValue(t *testing.T) {
	ticks := &ManualTicks{}
	rec := &recorder{}
	timer := NewTimer(40, ticks, rec.notify)

	assert.Equal(t, TimerState{Elapsed: 40, Running: false}, timer.State())

	assert.True(t, timer.Start())
	ticks.Fire(5)

	assert.Equal(t, TimerState{Elapsed: 45, Running: true}, timer.State())
	assert.Equal(t, TimerTicked{Elapsed: 45, Time: rec.last().Timestamp()}, rec.last())
}

func TestTimer_StartAndPauseAreNoOpsInTheirTargetState(t *testing.T) {
	ticks := &ManualTicks{}
	rec := &recorder{}
	timer := NewTimer(0, ticks, rec.notify)

	assert.False(t, timer.Pause(), "pause while idle")
	assert.True(t, timer.Start())
	assert.False(t, timer.Start(), "start while running")

	starts, _ := ticks.Counts()
	assert.Equal(t, 1, starts, "only one tick source per running period")

	ticks.Fire(3)
	assert.True(t, timer.Pause())
	assert.False(t, timer.Pause())

	assert.Equal(t, TimerState{Elapsed: 3}, timer.State())
	assert.False(t, ticks.Active())
	assert.Equal(t, []string{
		EventTimerStarted,
		EventTimerTicked, EventTimerTicked, EventTimerTicked,
		EventTimerPaused,
	}, rec.types())
}

func TestTimer_ResetZeroesAndNotifiesImmediately(t *testing.T) {
	ticks := &ManualTicks{}
	rec := &recorder{}
	timer := NewTimer(120, ticks, rec.notify)

	timer.Start()
	ticks.Fire(2)
	timer.Reset()

	assert.Equal(t, TimerState{Elapsed: 0, Running: false}, timer.State())
	assert.Equal(t, EventTimerReset, rec.last().Type())
	assert.False(t, ticks.Active())

	// Reset from idle still notifies
	timer.Reset()
	assert.Equal(t, []string{
		EventTimerStarted, EventTimerTicked, EventTimerTicked, EventTimerReset, EventTimerReset,
	}, rec.types())
}

func TestTimer_StaleTickAfterPauseIsDropped(t *testing.T) {
	ticks := &ManualTicks{}
	timer := NewTimer(0, ticks, nil)

	timer.Start()
	ticks.Fire(2)
	timer.Pause()

	ticks.FireStale()
	assert.Equal(t, 2, timer.State().Elapsed)

	// A tick from the previous run must not count in the next run either
	timer.Start()
	previous := ticks.last
	timer.Pause()
	timer.Start()
	previous()
	assert.Equal(t, 2, timer.State().Elapsed)

	ticks.Fire(1)
	assert.Equal(t, 3, timer.State().Elapsed)
}

func TestTimer_StaleTickAfterResetIsDropped(t *testing.T) {
	ticks := &ManualTicks{}
	timer := NewTimer(0, ticks, nil)

	timer.Start()
	ticks.Fire(10)
	timer.Reset()
	ticks.FireStale()

	assert.Equal(t, TimerState{}, timer.State())
}

func TestTimer_CloseStopsTickSource(t *testing.T) {
	ticks := &ManualTicks{}
	rec := &recorder{}
	timer := NewTimer(0, ticks, rec.notify)

	timer.Start()
	ticks.Fire(4)
	timer.Close()

	starts, stops := ticks.Counts()
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, stops)
	assert.False(t, timer.State().Running)

	// closing a running timer reports the pause so observers stop showing it running
	assert.Equal(t, EventTimerPaused, rec.last().Type())
	assert.Equal(t, 4, rec.last().(TimerPaused).Elapsed)
}

func TestTimer_CloseWhileIdleIsSilent(t *testing.T) {
	rec := &recorder{}
	timer := NewTimer(7, &ManualTicks{}, rec.notify)

	timer.Close()

	assert.Empty(t, rec.types())
	assert.Equal(t, TimerState{Elapsed: 7}, timer.State())
}

func TestTickerSource_StopEndsTicks(t *testing.T) {
	var mu sync.Mutex
	count := 0

	stop := TickerSource{}.Start(5*time.Millisecond, func() {
		mu.Lock()
		count++
		mu.Unlock()
	})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return count >= 2
	}, time.Second, time.Millisecond)

	stop()
	stop() // idempotent

	mu.Lock()
	stopped := count
	mu.Unlock()

	time.Sleep(30 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, count, stopped+1, "at most one in-flight tick after stop")
}
