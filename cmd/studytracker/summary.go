package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fmizzell/studytracker"
	"github.com/spf13/cobra"
)

var summaryFormat string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show today's progress",
	Run:   showSummary,
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryFormat, "format", "f", "text", "Output format: text, json or yaml")
}

// summaryReport is the structured form of the summary command
type summaryReport struct {
	Date    string               `json:"date" yaml:"date"`
	Summary studytracker.Summary `json:"summary" yaml:"summary"`
	Quote   string               `json:"quote" yaml:"quote"`
}

func showSummary(cmd *cobra.Command, args []string) {
	err := withTracker(os.Stderr, func(tracker *studytracker.Tracker) error {
		snap := tracker.Snapshot()
		if summaryFormat != "text" {
			report := summaryReport{Date: snap.DateKey, Summary: snap.Summary, Quote: tracker.Quote()}
			return writeStructured(os.Stdout, summaryFormat, report)
		}
		printSummary(os.Stdout, snap, tracker.Quote())
		return nil
	})
	if err != nil {
		fatal("%v", err)
	}
}

func printSummary(w io.Writer, snap studytracker.Snapshot, quote string) {
	s := snap.Summary
	fmt.Fprintf(w, "📊 Progress for %s\n", snap.DateKey)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Study Time Today: %s\n", s.StudyTime)
	fmt.Fprintf(w, "  Tasks Completed:  %d/%d (%d%%)\n", s.CompletedCount, s.TotalTasks, s.CompletionPercentage)
	fmt.Fprintf(w, "  Total Minutes:    %d\n", s.TotalMinutes)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", s.Message)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %q\n", quote)
}
