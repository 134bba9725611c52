package studytracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayKey(t *testing.T) {
	morning := time.Date(2026, time.October, 19, 0, 0, 1, 0, time.Local)
	night := time.Date(2026, time.October, 19, 23, 59, 59, 0, time.Local)
	next := night.Add(2 * time.Second)

	assert.Equal(t, "Mon Oct 19 2026", DayKey(morning))
	assert.Equal(t, DayKey(morning), DayKey(night), "stable within a day")
	assert.Equal(t, "Tue Oct 20 2026", DayKey(next), "changes at midnight")
	assert.Equal(t, "Thu Mar 05 2026", DayKey(time.Date(2026, time.March, 5, 12, 0, 0, 0, time.Local)))
}

func TestStorageKeys(t *testing.T) {
	assert.Equal(t, "tasks-Mon Oct 19 2026", TasksKey("Mon Oct 19 2026"))
	assert.Equal(t, "studyTime-Mon Oct 19 2026", StudyTimeKey("Mon Oct 19 2026"))
}

func TestRandomQuote(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.Contains(t, Quotes, RandomQuote(nil))
	}
}
