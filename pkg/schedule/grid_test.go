package schedule

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deadliner/pkg/database"
)

func cellFor(t *testing.T, cells []GridCell, d time.Time) GridCell {
	t.Helper()
	for _, cell := range cells {
		if cell.Date.Equal(d) {
			return cell
		}
	}
	t.Fatalf("no cell for %s", d.Format("2006-01-02"))
	return GridCell{}
}

func TestBuildMonthGridShape(t *testing.T) {
	now := day(2026, time.March, 10)
	cells := BuildMonthGrid(nil, day(2026, time.March, 1), nil, now)

	// March 2026 runs Sunday the 1st through Tuesday the 31st: five weeks
	require.Len(t, cells, 35)

	inMonth := 0
	todays := 0
	for _, cell := range cells {
		if cell.InMonth {
			inMonth++
		}
		if cell.IsToday {
			todays++
		}
	}
	assert.Equal(t, 31, inMonth)
	assert.Equal(t, 1, todays)
	assert.True(t, cellFor(t, cells, now).IsToday)
}

func TestBuildMonthGridAnnotatesSelection(t *testing.T) {
	now := day(2026, time.March, 10)
	selected := day(2026, time.March, 20)

	cells := BuildMonthGrid(nil, day(2026, time.March, 1), &selected, now)
	assert.True(t, cellFor(t, cells, selected).IsSelected)

	// Without a selection nothing is marked
	cells = BuildMonthGrid(nil, day(2026, time.March, 1), nil, now)
	for _, cell := range cells {
		assert.False(t, cell.IsSelected)
	}
}

func TestBuildMonthGridPlacesDeadlines(t *testing.T) {
	now := day(2026, time.March, 10)
	items := []database.Deadline{
		{ID: 1, Title: "b-second", Type: database.TypeFiling, DueDate: day(2026, time.March, 12)},
		{ID: 2, Title: "a-first", Type: database.TypeReport, DueDate: day(2026, time.March, 12)},
		{ID: 3, Title: "elsewhere", Type: database.TypeOther, DueDate: day(2026, time.March, 25)},
		// Out-of-month padding day still gets its deadlines
		{ID: 4, Title: "april padding", Type: database.TypeOther, DueDate: day(2026, time.April, 2)},
	}

	cells := BuildMonthGrid(items, day(2026, time.March, 1), nil, now)

	cell := cellFor(t, cells, day(2026, time.March, 12))
	require.Len(t, cell.Entries, 2)
	assert.Equal(t, "a-first", cell.Entries[0].Deadline.Title, "cell entries are title-ordered")
	assert.Equal(t, "b-second", cell.Entries[1].Deadline.Title)

	padding := cellFor(t, cells, day(2026, time.April, 2))
	assert.False(t, padding.InMonth)
	require.Len(t, padding.Entries, 1)
	assert.Equal(t, "april padding", padding.Entries[0].Deadline.Title)
}

func TestGridCellSummariesAreDisplayOnly(t *testing.T) {
	now := day(2026, time.March, 10)
	var items []database.Deadline
	for i := 0; i < 5; i++ {
		items = append(items, database.Deadline{
			ID:      i + 1,
			Title:   fmt.Sprintf("deadline %d", i+1),
			Type:    database.TypeOther,
			DueDate: day(2026, time.March, 12),
		})
	}

	cells := BuildMonthGrid(items, day(2026, time.March, 1), nil, now)
	cell := cellFor(t, cells, day(2026, time.March, 12))

	// Truncation is a display policy, not data loss: the full list stays
	assert.Len(t, cell.Entries, 5)
	assert.Len(t, cell.Summaries(), MaxCellSummaries)
	assert.Equal(t, 2, cell.Overflow())
}

func TestBuildWeekGrid(t *testing.T) {
	now := day(2026, time.March, 18)
	items := []database.Deadline{
		{ID: 1, Title: "within", Type: database.TypeFiling, DueDate: day(2026, time.March, 17)},
		{ID: 2, Title: "outside", Type: database.TypeFiling, DueDate: day(2026, time.March, 29)},
	}

	cells := BuildWeekGrid(items, now, nil, now)
	require.Len(t, cells, 7)
	assert.Equal(t, day(2026, time.March, 15), cells[0].Date)
	assert.Equal(t, day(2026, time.March, 21), cells[6].Date)

	assert.Len(t, cellFor(t, cells, day(2026, time.March, 17)).Entries, 1)
	for _, cell := range cells {
		for _, entry := range cell.Entries {
			assert.NotEqual(t, "outside", entry.Deadline.Title)
		}
	}
}

func TestBuildListGroupsScenario(t *testing.T) {
	// 10 deadlines: 3 due yesterday, 2 due today, 5 due in 30 days
	now := day(2026, time.March, 15)
	var items []database.Deadline
	for i := 0; i < 3; i++ {
		items = append(items, database.Deadline{ID: i + 1, Title: fmt.Sprintf("late %d", i), Type: database.TypeFiling, DueDate: day(2026, time.March, 14)})
	}
	for i := 0; i < 2; i++ {
		items = append(items, database.Deadline{ID: i + 4, Title: fmt.Sprintf("today %d", i), Type: database.TypePayment, DueDate: day(2026, time.March, 15)})
	}
	for i := 0; i < 5; i++ {
		items = append(items, database.Deadline{ID: i + 6, Title: fmt.Sprintf("future %d", i), Type: database.TypeReport, DueDate: day(2026, time.April, 14)})
	}

	filtered := ApplyFilters(items, DefaultFilters())
	groups := BuildListGroups(filtered, now)

	assert.Len(t, groups.Overdue, 3)
	assert.Len(t, groups.Upcoming, 7)
	assert.Empty(t, groups.Completed)

	// The two due today are soon, and sort ahead of the 30-day batch
	assert.Equal(t, Soon, groups.Upcoming[0].Class)
	assert.Equal(t, Soon, groups.Upcoming[1].Class)
	assert.Equal(t, Normal, groups.Upcoming[2].Class)
}

func TestBuildListGroupsCompletedBucket(t *testing.T) {
	now := day(2026, time.March, 15)
	items := []database.Deadline{
		{ID: 1, Title: "done", Type: database.TypeFiling, DueDate: day(2026, time.February, 1), IsCompleted: true},
		{ID: 2, Title: "open", Type: database.TypeFiling, DueDate: day(2026, time.April, 20)},
	}

	// With completed filtered out beforehand the bucket never appears
	f := DefaultFilters()
	groups := BuildListGroups(ApplyFilters(items, f), now)
	assert.Empty(t, groups.Completed)
	assert.Len(t, groups.Upcoming, 1)

	f.IncludeCompleted = true
	groups = BuildListGroups(ApplyFilters(items, f), now)
	require.Len(t, groups.Completed, 1)
	assert.Equal(t, Completed, groups.Completed[0].Class)
}

func TestBuildListGroupsDeterministicOrder(t *testing.T) {
	now := day(2026, time.March, 15)
	items := []database.Deadline{
		{ID: 1, Title: "zeta", Type: database.TypeOther, DueDate: day(2026, time.April, 1)},
		{ID: 2, Title: "alpha", Type: database.TypeOther, DueDate: day(2026, time.April, 1)},
		{ID: 3, Title: "mid", Type: database.TypeOther, DueDate: day(2026, time.March, 20)},
	}

	groups := BuildListGroups(items, now)
	require.Len(t, groups.Upcoming, 3)

	// Due date ascending, ties broken by title
	assert.Equal(t, "mid", groups.Upcoming[0].Deadline.Title)
	assert.Equal(t, "alpha", groups.Upcoming[1].Deadline.Title)
	assert.Equal(t, "zeta", groups.Upcoming[2].Deadline.Title)
}
