package commands

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"deadliner/pkg/database"
)

// AddOptions carries the flags of the --add command
type AddOptions struct {
	Title      string
	Date       string
	Type       string
	Remind     int
	Recur      int
	BusinessID int
}

// HandleAddDeadline processes the --add command
func HandleAddDeadline(db *sql.DB, opts AddOptions) {
	dueDate := time.Now()
	if opts.Date != "" {
		parsed, err := time.Parse("2006-01-02", opts.Date)
		if err != nil {
			fmt.Printf("Error parsing date: %v\n", err)
			os.Exit(1)
		}
		dueDate = parsed
	}

	deadline := database.Deadline{
		Title:            opts.Title,
		Type:             database.DeadlineType(opts.Type),
		DueDate:          dueDate,
		ReminderDays:     opts.Remind,
		IsRecurring:      opts.Recur > 0,
		RecurrenceMonths: opts.Recur,
	}
	if opts.BusinessID > 0 {
		id := opts.BusinessID
		deadline.BusinessID = &id
	}

	if err := database.CreateDeadline(db, &deadline); err != nil {
		fmt.Printf("Error adding deadline: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Added deadline %d: %s (due %s)\n", deadline.ID, deadline.Title, deadline.DueDate.Format("2006-01-02"))
}

// HandleAddBusiness processes the --add-business command
func HandleAddBusiness(db *sql.DB, name string) {
	if err := database.AddBusiness(db, name); err != nil {
		fmt.Printf("Error adding business: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Added business: %s\n", name)
}
