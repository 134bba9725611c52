package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	quoteStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	paneStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(40)
	headingStyle = lipgloss.NewStyle().Bold(true)
	doneStyle    = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("245"))
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	idleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// stackBelow is the terminal width under which panes stack vertically
const stackBelow = 130

func (m Model) View() string {
	header := titleStyle.Render("StudyTracker") + "\n" +
		quoteStyle.Render(fmt.Sprintf("%q", m.tracker.Quote()))

	panes := []string{
		paneStyle.Render(m.tasksView()),
		paneStyle.Render(m.timerView()),
		paneStyle.Render(m.summaryView()),
	}

	var body string
	if m.width > 0 && m.width < stackBelow {
		body = lipgloss.JoinVertical(lipgloss.Left, panes...)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, panes...)
	}

	return header + "\n\n" + body + "\n" + statusStyle.Render(m.status) + "\n"
}

func (m Model) tasksView() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Today's Tasks"))
	b.WriteString("\n\n")

	if m.mode == modeAdd {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	if len(m.snap.Tasks) == 0 {
		b.WriteString("No tasks yet. Add one to get started!")
		return b.String()
	}

	for i, task := range m.snap.Tasks {
		prefix := "  "
		if i == m.cursor && m.mode == modeList {
			prefix = cursorStyle.Render("> ")
		}
		check, text := "[ ]", task.Text
		if task.Completed {
			check, text = "[x]", doneStyle.Render(task.Text)
		}
		fmt.Fprintf(&b, "%s%s %s\n", prefix, check, text)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) timerView() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Study Timer"))
	b.WriteString("\n\n")

	clock := m.snap.Summary.Clock
	if m.snap.Timer.Running {
		b.WriteString(runningStyle.Render(clock))
		b.WriteString("\nStudying...")
	} else {
		b.WriteString(idleStyle.Render(clock))
		b.WriteString("\nReady to focus")
	}

	if m.snap.Timer.Elapsed > 0 {
		b.WriteString("\n\nGreat work! Keep it up! 🎉")
	}

	b.WriteString("\n\n[s] start/pause  [r] reset")
	return b.String()
}

func (m Model) summaryView() string {
	s := m.snap.Summary

	var b strings.Builder
	b.WriteString(headingStyle.Render("Progress Summary"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Study Time Today: %s\n", s.StudyTime)
	fmt.Fprintf(&b, "Tasks Completed:  %d/%d  %d%%\n", s.CompletedCount, s.TotalTasks, s.CompletionPercentage)
	if s.ShowProgressBar {
		b.WriteString(progressBar(s.CompletionPercentage, 24))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n%s\n\n", s.Message)
	fmt.Fprintf(&b, "Total Minutes: %d   Total Tasks: %d", s.TotalMinutes, s.TotalTasks)
	return b.String()
}
