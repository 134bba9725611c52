package tui

import (
	"math/rand/v2"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmizzell/studytracker"
)

var morning = time.Date(2026, time.October, 19, 8, 0, 0, 0, time.Local)

func newTestModel(t *testing.T) (Model, *studytracker.Tracker, *studytracker.ManualTicks) {
	t.Helper()

	ticks := &studytracker.ManualTicks{}
	now, _ := studytracker.FixedClock(morning)
	tracker := studytracker.NewTracker(
		studytracker.NewKVRepository(studytracker.NewMemoryStore(), nil),
		studytracker.WithClock(now),
		studytracker.WithTickSource(ticks),
		studytracker.WithIDGenerator(studytracker.SequentialIDs()),
		studytracker.WithRand(rand.New(rand.NewPCG(7, 7))),
	)
	t.Cleanup(tracker.Close)

	return New(tracker), tracker, ticks
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds keys through Update in order
func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestModel_AddTask(t *testing.T) {
	m, tracker, _ := newTestModel(t)
	assert.Contains(t, m.View(), "No tasks yet. Add one to get started!")

	m = press(m, "a", "Read chapter 1", "enter")

	tasks := tracker.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Read chapter 1", tasks[0].Text)
	assert.Equal(t, modeList, m.mode)
	assert.Contains(t, m.View(), "[ ] Read chapter 1")
	assert.Contains(t, m.status, "Added T1")
}

func TestModel_AddBlankStaysInAddMode(t *testing.T) {
	m, tracker, _ := newTestModel(t)

	m = press(m, "a", "   ", "enter")
	assert.Empty(t, tracker.Tasks())
	assert.Equal(t, modeAdd, m.mode)
	assert.Equal(t, "Task text cannot be empty", m.status)

	m = press(m, "esc")
	assert.Equal(t, modeList, m.mode)
	assert.Empty(t, tracker.Tasks())
}

func TestModel_AddModeSwallowsShortcuts(t *testing.T) {
	m, tracker, _ := newTestModel(t)

	// "q" and "s" are text while adding, not quit and start
	m = press(m, "a", "q", "s", "enter")
	require.Len(t, tracker.Tasks(), 1)
	assert.Equal(t, "qs", tracker.Tasks()[0].Text)
	assert.False(t, tracker.Timer().Running)
}

func TestModel_ToggleAndRemoveFollowCursor(t *testing.T) {
	m, tracker, _ := newTestModel(t)
	m = press(m, "a", "first", "enter", "a", "second", "enter")
	require.Len(t, tracker.Tasks(), 2)
	assert.Equal(t, 1, m.cursor)

	m = press(m, "k", " ")
	assert.True(t, tracker.Tasks()[0].Completed)
	assert.False(t, tracker.Tasks()[1].Completed)

	m = press(m, "down", "x")
	assert.True(t, tracker.Tasks()[1].Completed)

	summary := m.summaryView()
	assert.Contains(t, summary, "2/2  100%")
	assert.Contains(t, summary, studytracker.TierAllComplete.Message())

	m = press(m, "d")
	tasks := tracker.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "first", tasks[0].Text)
	assert.Equal(t, 0, m.cursor)

	m = press(m, "d", "d")
	assert.Empty(t, tracker.Tasks())
	assert.Equal(t, 0, m.cursor)
}

func TestModel_TimerKeys(t *testing.T) {
	m, tracker, ticks := newTestModel(t)
	assert.Contains(t, m.timerView(), "Ready to focus")
	assert.NotContains(t, m.timerView(), "Great work!")

	m = press(m, "s")
	assert.True(t, tracker.Timer().Running)
	assert.Equal(t, "Timer running", m.status)

	ticks.Fire(3725)
	next, _ := m.Update(changedMsg{})
	m = next.(Model)
	assert.Contains(t, m.timerView(), "01:02:05")
	assert.Contains(t, m.timerView(), "Studying...")
	assert.Contains(t, m.timerView(), "Great work! Keep it up!")
	assert.Contains(t, m.summaryView(), "Study Time Today: 1h 2m")

	m = press(m, "s")
	assert.False(t, tracker.Timer().Running)
	assert.Contains(t, m.timerView(), "Ready to focus")
	assert.Contains(t, m.timerView(), "01:02:05")

	m = press(m, "r")
	assert.Contains(t, m.timerView(), "00:00")
	assert.Equal(t, 0, tracker.Snapshot().TotalStudySeconds)
}

func TestModel_ProgressBarOnlyWithTasks(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.NotContains(t, m.summaryView(), "░")

	m = press(m, "a", "one", "enter", "a", "two", "enter", " ")
	assert.Contains(t, m.summaryView(), progressBar(50, 24))
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ChangedMsgRearmsWait(t *testing.T) {
	m, _, _ := newTestModel(t)
	changes := make(chan struct{}, 1)
	m.changes = changes

	changes <- struct{}{}
	msg := m.Init()()
	assert.IsType(t, changedMsg{}, msg)

	_, cmd := m.Update(msg)
	assert.NotNil(t, cmd)
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░", progressBar(0, 4))
	assert.Equal(t, "██░░", progressBar(50, 4))
	assert.Equal(t, "████", progressBar(100, 4))
	assert.Equal(t, "████", progressBar(120, 4))
}

func TestClampCursor(t *testing.T) {
	assert.Equal(t, 0, clampCursor(3, 0))
	assert.Equal(t, 0, clampCursor(-1, 2))
	assert.Equal(t, 1, clampCursor(5, 2))
	assert.Equal(t, 1, clampCursor(1, 2))
}
