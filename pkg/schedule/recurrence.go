package schedule

import (
	"time"

	"deadliner/pkg/database"
	"deadliner/pkg/datemath"
)

// ProjectNextRecurrence computes the payload for the next instance of a
// recurring deadline being completed. The original record is never touched:
// it keeps its historical due date and simply becomes completed, while the
// returned sibling carries the projected due date. Returns nil for
// non-recurring deadlines, in which case completion is just a flag flip.
//
// Day-of-month clamping comes from datemath.AddMonths, so a recurrence from
// Jan 31 lands on the last day of February rather than an invalid date.
func ProjectNextRecurrence(d database.Deadline) *database.Deadline {
	if !d.IsRecurring || d.RecurrenceMonths <= 0 {
		return nil
	}

	next := d
	next.ID = 0
	next.IsCompleted = false
	next.DueDate = datemath.AddMonths(d.DueDate, d.RecurrenceMonths)
	next.Created = time.Time{}
	next.LastModified = time.Time{}

	return &next
}
