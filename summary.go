package studytracker

import (
	"fmt"
	"math"
)

// Tier is a motivational message bucket
type Tier string

const (
	TierAllComplete Tier = "all_complete"
	TierExcellent   Tier = "excellent"
	TierGreat       Tier = "great"
	TierGoodStart   Tier = "good_start"
	TierReady       Tier = "ready"
)

var tierMessages = map[Tier]string{
	TierAllComplete: "Perfect! All tasks completed! 🎉",
	TierExcellent:   "Excellent progress! Almost there! 💪",
	TierGreat:       "Great work! Keep it going! 🌟",
	TierGoodStart:   "Good start! Every step counts! 🚀",
	TierReady:       "Ready to begin your study session! 📚",
}

// Message returns the text shown for the tier
func (t Tier) Message() string {
	return tierMessages[t]
}

// Summary is the progress view derived from tasks and study time
type Summary struct {
	CompletedCount       int    `json:"completed_count" yaml:"completed_count"`
	TotalTasks           int    `json:"total_tasks" yaml:"total_tasks"`
	CompletionPercentage int    `json:"completion_percentage" yaml:"completion_percentage"`
	StudyTime            string `json:"study_time" yaml:"study_time"`
	Clock                string `json:"clock" yaml:"clock"`
	TotalMinutes         int    `json:"total_minutes" yaml:"total_minutes"`
	Tier                 Tier   `json:"tier" yaml:"tier"`
	Message              string `json:"message" yaml:"message"`
	ShowProgressBar      bool   `json:"-" yaml:"-"`
}

// Summarize derives the summary. It holds no state and is recomputed on every read.
func Summarize(tasks []Task, totalSeconds int) Summary {
	if totalSeconds < 0 {
		totalSeconds = 0
	}

	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	percentage := CompletionPercentage(completed, len(tasks))
	tier := SelectTier(percentage, len(tasks), totalSeconds)

	return Summary{
		CompletedCount:       completed,
		TotalTasks:           len(tasks),
		CompletionPercentage: percentage,
		StudyTime:            FormatStudyTime(totalSeconds),
		Clock:                FormatClock(totalSeconds),
		TotalMinutes:         roundHalfUp(float64(totalSeconds) / 60),
		Tier:                 tier,
		Message:              tier.Message(),
		ShowProgressBar:      len(tasks) > 0,
	}
}

// CompletionPercentage rounds completed/total to the nearest whole percent, 0 for no tasks
func CompletionPercentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return roundHalfUp(float64(completed) / float64(total) * 100)
}

// SelectTier picks the first matching tier in descending priority
func SelectTier(percentage, taskCount, totalSeconds int) Tier {
	switch {
	case percentage == 100 && taskCount > 0:
		return TierAllComplete
	case percentage >= 75:
		return TierExcellent
	case percentage >= 50:
		return TierGreat
	case percentage > 0 || totalSeconds > 0:
		return TierGoodStart
	default:
		return TierReady
	}
}

// FormatStudyTime renders whole hours and minutes, dropping seconds
func FormatStudyTime(totalSeconds int) string {
	hours, minutes, _ := splitSeconds(totalSeconds)

	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	}
	return "0m"
}

// FormatClock renders the stopwatch display: MM:SS, or HH:MM:SS once an hour has passed
func FormatClock(totalSeconds int) string {
	hours, minutes, seconds := splitSeconds(totalSeconds)
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func splitSeconds(totalSeconds int) (hours, minutes, seconds int) {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	return totalSeconds / 3600, (totalSeconds % 3600) / 60, totalSeconds % 60
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
