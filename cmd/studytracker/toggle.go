package main

import (
	"fmt"

	"github.com/fmizzell/studytracker"
	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <task-id>",
	Short: "Mark a task done or not done",
	Args:  cobra.ExactArgs(1),
	Run:   toggleTask,
}

func toggleTask(cmd *cobra.Command, args []string) {
	taskID := args[0]

	tracker, closeAll := mustOpenTracker()
	defer closeAll()

	if !tracker.ToggleTask(taskID) {
		fmt.Printf("Task not found: %s\n", taskID)
		return
	}

	task, _ := findByID(tracker.Tasks(), taskID)
	if task.Completed {
		fmt.Printf("✓ Task completed: %s\n", taskID)
	} else {
		fmt.Printf("○ Task reopened: %s\n", taskID)
	}
	fmt.Printf("  %s\n", task.Text)
}

func findByID(tasks []studytracker.Task, id string) (studytracker.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return studytracker.Task{}, false
}
