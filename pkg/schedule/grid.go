package schedule

import (
	"sort"
	"time"

	"deadliner/pkg/database"
	"deadliner/pkg/datemath"
)

// MaxCellSummaries caps how many deadlines a month cell summarizes before
// collapsing the rest into an overflow count. Display policy only: the
// cell's full entry list stays available. Overridable from configuration.
var MaxCellSummaries = 3

// Entry pairs a deadline with its classification relative to the grid's now
type Entry struct {
	Deadline database.Deadline
	Class    Classification
}

// GridCell is one day of a month or week grid
type GridCell struct {
	Date       time.Time
	InMonth    bool // false for the padding days of adjacent months
	IsToday    bool
	IsSelected bool
	Entries    []Entry // every deadline due on this day, title order
}

// Summaries returns at most MaxCellSummaries entries for compact rendering
func (c GridCell) Summaries() []Entry {
	if len(c.Entries) <= MaxCellSummaries {
		return c.Entries
	}
	return c.Entries[:MaxCellSummaries]
}

// Overflow is how many entries the summary view hides
func (c GridCell) Overflow() int {
	if n := len(c.Entries) - MaxCellSummaries; n > 0 {
		return n
	}
	return 0
}

// BuildMonthGrid lays out the filtered deadlines on the 35- or 42-cell grid
// spanning the anchor's month, padding to whole Sunday-Saturday weeks.
// The caller threads now explicitly so the grid is reproducible in tests.
func BuildMonthGrid(items []database.Deadline, anchor time.Time, selected *time.Time, now time.Time) []GridCell {
	start, end := datemath.MonthGridRange(anchor)

	var cells []GridCell
	for _, day := range datemath.EnumerateDays(start, end) {
		cells = append(cells, GridCell{
			Date:       day,
			InMonth:    datemath.SameMonth(day, anchor),
			IsToday:    datemath.SameDay(day, now),
			IsSelected: selected != nil && datemath.SameDay(day, *selected),
			Entries:    entriesOn(items, day, now),
		})
	}
	return cells
}

// BuildWeekGrid lays out the filtered deadlines on the 7-cell
// Sunday-Saturday week containing the anchor
func BuildWeekGrid(items []database.Deadline, anchor time.Time, selected *time.Time, now time.Time) []GridCell {
	start, end := datemath.WeekRange(anchor)

	var cells []GridCell
	for _, day := range datemath.EnumerateDays(start, end) {
		cells = append(cells, GridCell{
			Date:       day,
			InMonth:    datemath.SameMonth(day, anchor),
			IsToday:    datemath.SameDay(day, now),
			IsSelected: selected != nil && datemath.SameDay(day, *selected),
			Entries:    entriesOn(items, day, now),
		})
	}
	return cells
}

func entriesOn(items []database.Deadline, day time.Time, now time.Time) []Entry {
	var entries []Entry
	for _, item := range items {
		if datemath.SameDay(item.DueDate, day) {
			entries = append(entries, Entry{Deadline: item, Class: Classify(item, now)})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Deadline.Title < entries[j].Deadline.Title
	})
	return entries
}

// ListGroups is the list view's partition of the filtered deadlines
type ListGroups struct {
	Overdue   []Entry
	Upcoming  []Entry // soon and normal together
	Completed []Entry // empty unless completed records passed the filter
}

// BuildListGroups partitions the filtered deadlines into overdue, upcoming
// and completed groups, each ordered by due date then title
func BuildListGroups(items []database.Deadline, now time.Time) ListGroups {
	var groups ListGroups

	for _, item := range items {
		entry := Entry{Deadline: item, Class: Classify(item, now)}
		switch entry.Class {
		case Overdue:
			groups.Overdue = append(groups.Overdue, entry)
		case Completed:
			groups.Completed = append(groups.Completed, entry)
		default:
			groups.Upcoming = append(groups.Upcoming, entry)
		}
	}

	sortEntries(groups.Overdue)
	sortEntries(groups.Upcoming)
	sortEntries(groups.Completed)

	return groups
}

// sortEntries orders by due date ascending, ties broken by title so the
// output is deterministic
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].Deadline, entries[j].Deadline
		if !datemath.SameDay(a.DueDate, b.DueDate) {
			return datemath.Before(a.DueDate, b.DueDate)
		}
		return a.Title < b.Title
	})
}
