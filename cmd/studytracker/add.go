package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <text...>",
	Short: "Add a study task",
	Long:  `Add a task to today's list. All arguments are joined into the task text.`,
	Args:  cobra.MinimumNArgs(1),
	Run:   addTask,
}

func addTask(cmd *cobra.Command, args []string) {
	tracker, closeAll := mustOpenTracker()
	defer closeAll()

	task, ok := tracker.AddTask(strings.Join(args, " "))
	if !ok {
		fmt.Println("Nothing to add: task text is empty.")
		return
	}

	fmt.Printf("✓ Task added: %s\n", task.ID)
	fmt.Printf("  %s\n", task.Text)
}
