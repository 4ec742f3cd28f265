package database

import (
	"fmt"
	"strings"
	"time"
)

// DeadlineType is the closed set of deadline categories
type DeadlineType string

const (
	TypeFiling  DeadlineType = "filing"
	TypeRenewal DeadlineType = "renewal"
	TypePayment DeadlineType = "payment"
	TypeReport  DeadlineType = "report"
	TypeMeeting DeadlineType = "meeting"
	TypeOther   DeadlineType = "other"
)

// DeadlineTypes lists every valid type in display order
var DeadlineTypes = []DeadlineType{
	TypeFiling,
	TypeRenewal,
	TypePayment,
	TypeReport,
	TypeMeeting,
	TypeOther,
}

// Valid reports whether t is a member of the closed type set
func (t DeadlineType) Valid() bool {
	for _, known := range DeadlineTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Deadline represents a single tracked compliance deadline
type Deadline struct {
	ID               int          `db:"id" json:"id"`
	Title            string       `db:"title" json:"title"`
	Description      string       `db:"description" json:"description,omitempty"`
	Type             DeadlineType `db:"type" json:"type"`
	DueDate          time.Time    `db:"duedate" json:"due_date"`
	ReminderDays     int          `db:"reminderdays" json:"reminder_days"`
	IsRecurring      bool         `db:"recurring" json:"is_recurring"`
	RecurrenceMonths int          `db:"recurrencemonths" json:"recurrence_months,omitempty"`
	IsCompleted      bool         `db:"completed" json:"is_completed"`
	BusinessID       *int         `db:"businessid" json:"business_id,omitempty"`
	Created          time.Time    `db:"created" json:"created,omitempty"`
	LastModified     time.Time    `db:"lastmodified" json:"last_modified,omitempty"`
}

// Business is an entry in the read-only business directory. A deadline with
// no business reference is organization-wide.
type Business struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Validate checks the invariants on a deadline before it enters the store.
// It fails fast instead of coercing: a silently wrong due date is worse than
// a visible error. RecurrenceMonths is cleared when the deadline is not
// recurring, where it carries no meaning.
func (d *Deadline) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("deadline title must not be empty")
	}
	if !d.Type.Valid() {
		return fmt.Errorf("unknown deadline type %q", d.Type)
	}
	if d.DueDate.IsZero() {
		return fmt.Errorf("deadline %q has no due date", d.Title)
	}
	if d.ReminderDays < 0 {
		return fmt.Errorf("reminder days must not be negative, got %d", d.ReminderDays)
	}
	if d.IsRecurring && d.RecurrenceMonths <= 0 {
		return fmt.Errorf("recurring deadline %q needs a positive recurrence interval, got %d months", d.Title, d.RecurrenceMonths)
	}
	if !d.IsRecurring {
		d.RecurrenceMonths = 0
	}
	return nil
}
