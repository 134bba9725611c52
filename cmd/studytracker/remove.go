package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <task-id>",
	Aliases: []string{"rm"},
	Short:   "Remove a task",
	Args:    cobra.ExactArgs(1),
	Run:     removeTask,
}

func removeTask(cmd *cobra.Command, args []string) {
	taskID := args[0]

	tracker, closeAll := mustOpenTracker()
	defer closeAll()

	task, found := findByID(tracker.Tasks(), taskID)
	if !found || !tracker.RemoveTask(taskID) {
		fmt.Printf("Task not found: %s\n", taskID)
		return
	}

	fmt.Printf("✓ Task removed: %s\n", taskID)
	fmt.Printf("  %s\n", task.Text)
}
