package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fmizzell/studytracker"
	"github.com/spf13/cobra"
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Run the study timer in the foreground",
	Long: `Start the study timer and redraw it every second. Ctrl+C pauses the timer
and exits; today's total is saved every second while it runs.`,
	Run: runTimer,
}

var timerResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Zero today's study time",
	Args:  cobra.NoArgs,
	Run:   resetTimer,
}

func init() {
	timerCmd.AddCommand(timerResetCmd)
}

func runTimer(cmd *cobra.Command, args []string) {
	tracker, closeAll := mustOpenTracker()
	defer closeAll()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	studyUntil(ctx, tracker, os.Stdout)
}

// studyUntil runs the timer until ctx is done, redrawing the clock on every tick
func studyUntil(ctx context.Context, tracker *studytracker.Tracker, w io.Writer) {
	changes := make(chan struct{}, 1)
	unsubscribe := tracker.Subscribe(func(studytracker.Snapshot) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	tracker.StartTimer()
	fmt.Fprintf(w, "⏱  Studying (%s). Press Ctrl+C to pause.\n", tracker.DateKey())
	fmt.Fprintf(w, "\r%s", tracker.Snapshot().Summary.Clock)

	for {
		select {
		case <-ctx.Done():
			tracker.PauseTimer()
			snap := tracker.Snapshot()
			fmt.Fprintf(w, "\r%s\n", snap.Summary.Clock)
			fmt.Fprintf(w, "✓ Paused. Study time today: %s\n", snap.Summary.StudyTime)
			return
		case <-changes:
			// past midnight the next seconds belong to the new day
			if tracker.Refresh() {
				fmt.Fprintf(w, "\n⏱  New day: %s\n", tracker.DateKey())
			}
			fmt.Fprintf(w, "\r%s", tracker.Snapshot().Summary.Clock)
		}
	}
}

func resetTimer(cmd *cobra.Command, args []string) {
	tracker, closeAll := mustOpenTracker()
	defer closeAll()

	tracker.ResetTimer()
	fmt.Printf("✓ Study time reset for %s\n", tracker.DateKey())
}
