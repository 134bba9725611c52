package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fmizzell/studytracker"
	"github.com/fmizzell/studytracker/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive dashboard",
	Run:   runTUI,
}

func runTUI(cmd *cobra.Command, args []string) {
	// logs would tear the alt screen, so only a configured log file receives them
	err := withTracker(nil, func(tracker *studytracker.Tracker) error {
		if err := tui.Run(tracker, tea.WithAltScreen()); err != nil {
			return fmt.Errorf("dashboard failed: %w", err)
		}
		return nil
	})
	if err != nil {
		fatal("%v", err)
	}
}
