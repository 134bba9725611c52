package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fmizzell/studytracker"
)

type mode int

const (
	modeList mode = iota
	modeAdd
)

// changedMsg tells the model the tracker state moved under it (a tick, usually)
type changedMsg struct{}

// Model is the dashboard. It never keeps its own copy of tasks or time beyond the
// last snapshot read from the tracker.
type Model struct {
	tracker *studytracker.Tracker
	snap    studytracker.Snapshot
	changes <-chan struct{}

	input  textinput.Model
	mode   mode
	cursor int
	status string
	width  int
}

// New builds a dashboard over tracker
func New(tracker *studytracker.Tracker) Model {
	ti := textinput.New()
	ti.Placeholder = "Add a new study task..."
	ti.CharLimit = 256
	ti.Width = 36

	m := Model{
		tracker: tracker,
		input:   ti,
		mode:    modeList,
		status:  "a add • space toggle • d delete • s start/pause • r reset • q quit",
	}
	m.refresh()
	return m
}

// Run subscribes to tracker changes and runs the dashboard until the user quits
func Run(tracker *studytracker.Tracker, opts ...tea.ProgramOption) error {
	// one slot: a pending notification already means "re-read the snapshot"
	changes := make(chan struct{}, 1)
	unsubscribe := tracker.Subscribe(func(studytracker.Snapshot) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	m := New(tracker)
	m.changes = changes

	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		<-changes
		return changedMsg{}
	}
}

func (m Model) Init() tea.Cmd {
	return waitForChange(m.changes)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case changedMsg:
		m.refresh()
		return m, waitForChange(m.changes)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.mode == modeAdd {
			return m.updateAddMode(msg)
		}
		return m.updateListMode(msg.String())
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case "enter":
		task, ok := m.tracker.AddTask(m.input.Value())
		if !ok {
			m.status = "Task text cannot be empty"
			return m, nil
		}
		m.refresh()
		m.cursor = len(m.snap.Tasks) - 1
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		m.status = fmt.Sprintf("Added %s", task.ID)
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "j", "down":
		m.cursor = clampCursor(m.cursor+1, len(m.snap.Tasks))
	case "k", "up":
		m.cursor = clampCursor(m.cursor-1, len(m.snap.Tasks))
	case "a":
		m.mode = modeAdd
		m.status = "Type a task and press Enter (Esc cancels)"
		return m, m.input.Focus()
	case " ", "x":
		if task, ok := m.selected(); ok {
			m.tracker.ToggleTask(task.ID)
			m.status = fmt.Sprintf("Toggled %s", task.ID)
		}
	case "d":
		if task, ok := m.selected(); ok {
			m.tracker.RemoveTask(task.ID)
			m.status = fmt.Sprintf("Removed %s", task.ID)
		}
	case "s":
		m.tracker.ToggleTimer()
		if m.tracker.Timer().Running {
			m.status = "Timer running"
		} else {
			m.status = "Timer paused"
		}
	case "r":
		m.tracker.ResetTimer()
		m.status = "Timer reset"
	}

	m.refresh()
	return m, nil
}

// refresh re-reads the tracker; it also catches a calendar day change
func (m *Model) refresh() {
	m.tracker.Refresh()
	m.snap = m.tracker.Snapshot()
	m.cursor = clampCursor(m.cursor, len(m.snap.Tasks))
}

func (m Model) selected() (studytracker.Task, bool) {
	if len(m.snap.Tasks) == 0 {
		return studytracker.Task{}, false
	}
	return m.snap.Tasks[m.cursor], true
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

// progressBar renders pct as a fixed-width bar
func progressBar(pct, width int) string {
	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
