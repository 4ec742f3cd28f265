package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"deadliner/pkg/database"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func pending(due time.Time) database.Deadline {
	return database.Deadline{Title: "t", Type: database.TypeFiling, DueDate: due}
}

func TestClassifyCompletedWinsOverEverything(t *testing.T) {
	now := day(2026, time.March, 15)

	d := pending(day(2026, time.January, 1)) // long overdue
	d.IsCompleted = true

	assert.Equal(t, Completed, Classify(d, now))
}

func TestClassifyOverdueBoundary(t *testing.T) {
	now := day(2026, time.March, 15)

	// Due yesterday: overdue
	assert.Equal(t, Overdue, Classify(pending(day(2026, time.March, 14)), now))

	// Due exactly today: soon, never overdue. The overdue boundary is
	// strictly before today.
	assert.Equal(t, Soon, Classify(pending(day(2026, time.March, 15)), now))
}

func TestClassifySoonWindowEdges(t *testing.T) {
	now := day(2026, time.March, 15)

	// Last day inside the 7-day window
	assert.Equal(t, Soon, Classify(pending(day(2026, time.March, 22)), now))

	// First day past it
	assert.Equal(t, Normal, Classify(pending(day(2026, time.March, 23)), now))
}

func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	// "Now" late in the evening must not push a same-day deadline into
	// overdue, and a deadline's stored time-of-day must not matter either.
	now := time.Date(2026, time.March, 15, 23, 50, 0, 0, time.UTC)

	dueEarlyToday := pending(time.Date(2026, time.March, 15, 0, 5, 0, 0, time.UTC))
	assert.Equal(t, Soon, Classify(dueEarlyToday, now))

	dueLateYesterday := pending(time.Date(2026, time.March, 14, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, Overdue, Classify(dueLateYesterday, now))
}

func TestClassifyHonorsConfiguredWindow(t *testing.T) {
	orig := SoonWindowDays
	SoonWindowDays = 2
	defer func() { SoonWindowDays = orig }()

	now := day(2026, time.March, 15)
	assert.Equal(t, Soon, Classify(pending(day(2026, time.March, 17)), now))
	assert.Equal(t, Normal, Classify(pending(day(2026, time.March, 18)), now))
}
