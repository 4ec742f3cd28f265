package datemath

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthGridRangeWholeWeeks(t *testing.T) {
	// Every month over three years: the grid spans whole Sunday-Saturday
	// weeks and contains the entire anchor month.
	anchor := day(2024, time.January, 1)
	for i := 0; i < 36; i++ {
		start, end := MonthGridRange(anchor)

		assert.Equal(t, time.Sunday, start.Weekday(), "start of grid for %s", anchor.Format("2006-01"))
		assert.Equal(t, time.Saturday, end.Weekday(), "end of grid for %s", anchor.Format("2006-01"))

		days := EnumerateDays(start, end)
		assert.Equal(t, 0, len(days)%7, "grid for %s is not whole weeks", anchor.Format("2006-01"))

		first := day(anchor.Year(), anchor.Month(), 1)
		last := first.AddDate(0, 1, 0).AddDate(0, 0, -1)
		assert.False(t, start.After(first))
		assert.False(t, end.Before(last))

		anchor = AddMonths(anchor, 1)
	}
}

func TestMonthGridRangeKnownSizes(t *testing.T) {
	// March 2026 starts on a Sunday and needs five weeks
	start, end := MonthGridRange(day(2026, time.March, 15))
	assert.Len(t, EnumerateDays(start, end), 35)

	// August 2026 starts on a Saturday and needs six weeks
	start, end = MonthGridRange(day(2026, time.August, 1))
	assert.Len(t, EnumerateDays(start, end), 42)
}

func TestWeekRange(t *testing.T) {
	// Wednesday 2026-03-18 sits in the week of Sunday the 15th
	start, end := WeekRange(day(2026, time.March, 18))
	assert.Equal(t, day(2026, time.March, 15), start)
	assert.Equal(t, day(2026, time.March, 21), end)

	days := EnumerateDays(start, end)
	require.Len(t, days, 7)
	assert.Equal(t, time.Sunday, days[0].Weekday())
	assert.Equal(t, time.Saturday, days[6].Weekday())

	// A Sunday anchors its own week
	start, _ = WeekRange(day(2026, time.March, 15))
	assert.Equal(t, day(2026, time.March, 15), start)
}

func TestEnumerateDays(t *testing.T) {
	days := EnumerateDays(day(2026, time.February, 27), day(2026, time.March, 2))
	require.Len(t, days, 4)
	assert.Equal(t, day(2026, time.February, 27), days[0])
	assert.Equal(t, day(2026, time.February, 28), days[1])
	assert.Equal(t, day(2026, time.March, 1), days[2])
	assert.Equal(t, day(2026, time.March, 2), days[3])

	// Single-day range is inclusive
	assert.Len(t, EnumerateDays(day(2026, time.May, 5), day(2026, time.May, 5)), 1)
}

func TestAddMonthsClampsToShorterMonth(t *testing.T) {
	// Jan 31 + 1 month is the last day of February, never Feb 31
	assert.Equal(t, day(2026, time.February, 28), AddMonths(day(2026, time.January, 31), 1))
	assert.Equal(t, day(2024, time.February, 29), AddMonths(day(2024, time.January, 31), 1))

	// Leap day + 12 months clamps to Feb 28
	assert.Equal(t, day(2025, time.February, 28), AddMonths(day(2024, time.February, 29), 12))

	assert.Equal(t, day(2026, time.April, 30), AddMonths(day(2026, time.March, 31), 1))
}

func TestAddMonthsRollsOverYears(t *testing.T) {
	assert.Equal(t, day(2027, time.January, 15), AddMonths(day(2026, time.December, 15), 1))
	assert.Equal(t, day(2028, time.June, 10), AddMonths(day(2026, time.June, 10), 24))
	assert.Equal(t, day(2025, time.December, 31), SubMonths(day(2026, time.January, 31), 1))
	assert.Equal(t, day(2026, time.February, 28), SubMonths(day(2026, time.March, 31), 1))
}

func TestAddWeeks(t *testing.T) {
	assert.Equal(t, day(2026, time.January, 8), AddWeeks(day(2026, time.January, 1), 1))
	assert.Equal(t, day(2025, time.December, 25), SubWeeks(day(2026, time.January, 1), 1))
}

func TestCalendarDayComparisons(t *testing.T) {
	morning := time.Date(2026, time.March, 15, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, time.March, 15, 23, 45, 0, 0, time.UTC)
	nextDay := time.Date(2026, time.March, 16, 0, 30, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(evening, nextDay))

	// Time of day never makes the same calendar day "before" itself
	assert.False(t, Before(morning, evening))
	assert.False(t, After(evening, morning))
	assert.True(t, Before(evening, nextDay))
	assert.True(t, After(nextDay, evening))

	assert.True(t, SameMonth(morning, day(2026, time.March, 1)))
	assert.False(t, SameMonth(morning, day(2026, time.April, 15)))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(day(2024, time.February, 10)))
	assert.Equal(t, 28, DaysInMonth(day(2026, time.February, 10)))
	assert.Equal(t, 31, DaysInMonth(day(2026, time.January, 1)))
	assert.Equal(t, 30, DaysInMonth(day(2026, time.April, 30)))
}
