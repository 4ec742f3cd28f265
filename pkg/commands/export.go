package commands

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"deadliner/pkg/database"
)

// HandleExportCommand processes --export commands
func HandleExportCommand(db *sql.DB, filename, format string) {
	deadlines, err := database.ListDeadlines(db, database.ListFilter{IncludeCompleted: true})
	if err != nil {
		fmt.Printf("Error loading deadlines: %v\n", err)
		os.Exit(1)
	}

	// Ensure directory exists
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Printf("Error creating directory: %v\n", err)
		os.Exit(1)
	}

	var content []byte

	switch format {
	case "json":
		content, err = json.MarshalIndent(deadlines, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling deadlines to JSON: %v\n", err)
			os.Exit(1)
		}

	case "txt":
		var lines []string
		var lastDate string
		for _, d := range deadlines {
			dateStr := d.DueDate.Format("02.01.2006")
			if dateStr != lastDate {
				lines = append(lines, fmt.Sprintf("\n%s:", dateStr))
				lastDate = dateStr
			}

			status := " "
			if d.IsCompleted {
				status = "x"
			}
			line := fmt.Sprintf("- [%s] %s (%s)", status, d.Title, d.Type)
			if d.IsRecurring {
				line += fmt.Sprintf(", every %d months", d.RecurrenceMonths)
			}
			lines = append(lines, line)
		}
		content = []byte(strings.TrimSpace(strings.Join(lines, "\n")))

	case "ics":
		content = []byte(buildCalendar(deadlines))

	default:
		fmt.Printf("Unknown export format: %s\n", format)
		os.Exit(1)
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully exported %d deadline(s) to %s\n", len(deadlines), filename)
}

// buildCalendar serializes deadlines as all-day iCalendar events so they can
// be imported into an external calendar
func buildCalendar(deadlines []database.Deadline) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//deadliner//EN")

	for _, d := range deadlines {
		event := cal.AddEvent(fmt.Sprintf("deadline-%d@deadliner", d.ID))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetAllDayStartAt(d.DueDate)
		event.SetAllDayEndAt(d.DueDate.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("[%s] %s", d.Type, d.Title))
		if d.Description != "" {
			event.SetDescription(d.Description)
		}
		if d.IsCompleted {
			event.SetStatus(ics.ObjectStatusCancelled)
		}
	}

	return cal.Serialize()
}
