package studytracker

import "github.com/google/uuid"

// NewTaskID generates a short task id
func NewTaskID() string {
	return "T-" + uuid.New().String()[:8]
}
