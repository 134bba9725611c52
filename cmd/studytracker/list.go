package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fmizzell/studytracker"
	"github.com/spf13/cobra"
)

var (
	statusFilter string
	listFormat   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's tasks",
	Long:  `List today's tasks in the order they were added.`,
	Run:   listTasks,
}

func init() {
	listCmd.Flags().StringVarP(&statusFilter, "status", "s", "all", "Filter by status: all, todo or completed")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "text", "Output format: text, json or yaml")
}

func listTasks(cmd *cobra.Command, args []string) {
	if _, err := filterTasks(nil, statusFilter); err != nil {
		fatal("%v", err)
	}

	err := withTracker(os.Stderr, func(tracker *studytracker.Tracker) error {
		snap := tracker.Snapshot()
		tasks, _ := filterTasks(snap.Tasks, statusFilter)

		if listFormat != "text" {
			return writeStructured(os.Stdout, listFormat, tasks)
		}
		printTasks(os.Stdout, snap, tasks)
		return nil
	})
	if err != nil {
		fatal("%v", err)
	}
}

// filterTasks keeps tasks matching status; "pending" and "done" are accepted aliases
func filterTasks(tasks []studytracker.Task, status string) ([]studytracker.Task, error) {
	var keep func(studytracker.Task) bool
	switch status {
	case "", "all":
		keep = func(studytracker.Task) bool { return true }
	case "todo", "pending":
		keep = func(t studytracker.Task) bool { return !t.Completed }
	case "completed", "done":
		keep = func(t studytracker.Task) bool { return t.Completed }
	default:
		return nil, fmt.Errorf("invalid status filter %q (want all, todo or completed)", status)
	}

	filtered := []studytracker.Task{}
	for _, t := range tasks {
		if keep(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func printTasks(w io.Writer, snap studytracker.Snapshot, tasks []studytracker.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found.")
		return
	}

	fmt.Fprintf(w, "📋 Tasks for %s:\n", snap.DateKey)
	fmt.Fprintln(w)
	for _, task := range tasks {
		statusIcon := "○"
		if task.Completed {
			statusIcon = "✓"
		}
		fmt.Fprintf(w, "  %s [%s] %s\n", statusIcon, task.ID, task.Text)
	}
	fmt.Fprintln(w)

	s := snap.Summary
	fmt.Fprintf(w, "%d/%d completed (%d%%)\n", s.CompletedCount, s.TotalTasks, s.CompletionPercentage)
}
