package schedule

import (
	"time"

	"deadliner/pkg/database"
	"deadliner/pkg/datemath"
)

// SoonWindowDays is how many days ahead (inclusive) a pending deadline still
// counts as due soon. A presentation-tuning constant, overridable from
// configuration.
var SoonWindowDays = 7

// Classification is a deadline's status relative to a reference day
type Classification int

const (
	Overdue Classification = iota
	Soon
	Normal
	Completed
)

func (c Classification) String() string {
	switch c {
	case Overdue:
		return "overdue"
	case Soon:
		return "soon"
	case Normal:
		return "normal"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// Classify assigns a status to the deadline relative to now. Completion wins
// over everything else. A deadline due exactly today is soon, not overdue:
// the overdue boundary is strictly before today.
func Classify(d database.Deadline, now time.Time) Classification {
	if d.IsCompleted {
		return Completed
	}

	due := datemath.Truncate(d.DueDate)
	today := datemath.Truncate(now)

	if due.Before(today) {
		return Overdue
	}
	if !due.After(today.AddDate(0, 0, SoonWindowDays)) {
		return Soon
	}
	return Normal
}
