package datemath

import (
	"time"
)

// Truncate drops any time-of-day component, returning midnight of the same
// calendar day in the same location
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SameMonth reports whether a and b fall in the same calendar month
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// Before reports whether a falls on an earlier calendar day than b
func Before(a, b time.Time) bool {
	return Truncate(a).Before(Truncate(b))
}

// After reports whether a falls on a later calendar day than b
func After(a, b time.Time) bool {
	return Truncate(a).After(Truncate(b))
}

// MonthGridRange returns the bounds of the calendar grid displaying the
// anchor's month: the Sunday on or before the 1st, through the Saturday on
// or after the last day. The range always spans a whole number of weeks.
func MonthGridRange(anchor time.Time) (time.Time, time.Time) {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	last := first.AddDate(0, 1, 0).AddDate(0, 0, -1)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday)-int(last.Weekday()))

	return start, end
}

// WeekRange returns the Sunday-Saturday week containing the anchor
func WeekRange(anchor time.Time) (time.Time, time.Time) {
	day := Truncate(anchor)
	start := day.AddDate(0, 0, -int(day.Weekday()))
	return start, start.AddDate(0, 0, 6)
}

// EnumerateDays returns every calendar day from start through end inclusive,
// in ascending order
func EnumerateDays(start, end time.Time) []time.Time {
	var days []time.Time
	for d := Truncate(start); !d.After(Truncate(end)); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// AddMonths shifts the date by n calendar months, clamping the day of month
// to the target month's length (Jan 31 + 1 month is the last day of
// February, never an invalid date). Year boundaries roll over naturally.
func AddMonths(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())

	day := t.Day()
	if max := DaysInMonth(first); day > max {
		day = max
	}

	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

// SubMonths shifts the date back by n calendar months with the same clamping
func SubMonths(t time.Time, n int) time.Time {
	return AddMonths(t, -n)
}

// AddWeeks shifts the date forward by n whole weeks
func AddWeeks(t time.Time, n int) time.Time {
	return Truncate(t).AddDate(0, 0, 7*n)
}

// SubWeeks shifts the date back by n whole weeks
func SubWeeks(t time.Time, n int) time.Time {
	return AddWeeks(t, -n)
}

// DaysInMonth returns the number of days in t's month
func DaysInMonth(t time.Time) int {
	// Move to the first of next month, roll back a day.
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, 0).AddDate(0, 0, -1).Day()
}
