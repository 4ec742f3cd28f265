package database

import (
	"database/sql"
	"fmt"
	"strings"

	"deadliner/pkg/utils"
)

// ListFilter narrows the snapshot returned by ListDeadlines. The zero value
// returns every pending deadline.
type ListFilter struct {
	Type             DeadlineType // empty means any type
	IncludeCompleted bool
	BusinessIDs      []int // non-empty keeps only these businesses
	UnassignedOnly   bool  // keeps only organization-wide deadlines
}

// ListDeadlines returns a snapshot of deadlines matching the filter, ordered
// by due date then title
func ListDeadlines(db *sql.DB, filter ListFilter) ([]Deadline, error) {
	query := `
		SELECT id, title, description, type, duedate, reminderdays,
		       recurring, recurrencemonths, completed, businessid,
		       created, lastmodified
		FROM deadlines
	`

	var conditions []string
	var args []interface{}

	if filter.Type != "" {
		conditions = append(conditions, "type = ?")
		args = append(args, string(filter.Type))
	}
	if !filter.IncludeCompleted {
		conditions = append(conditions, "completed = 0")
	}
	if filter.UnassignedOnly {
		conditions = append(conditions, "businessid IS NULL")
	} else if len(filter.BusinessIDs) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(filter.BusinessIDs)), ",")
		conditions = append(conditions, fmt.Sprintf("businessid IN (%s)", placeholders))
		for _, id := range filter.BusinessIDs {
			args = append(args, id)
		}
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY duedate, title"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list deadlines: %w", err)
	}
	defer rows.Close()

	var items []Deadline
	for rows.Next() {
		item, err := scanDeadline(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	utils.Log("Loaded %d deadlines from database", len(items))

	return items, nil
}

func scanDeadline(rows *sql.Rows) (Deadline, error) {
	var item Deadline
	var businessID sql.NullInt64

	if err := rows.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.Type,
		&item.DueDate,
		&item.ReminderDays,
		&item.IsRecurring,
		&item.RecurrenceMonths,
		&item.IsCompleted,
		&businessID,
		&item.Created,
		&item.LastModified,
	); err != nil {
		return Deadline{}, fmt.Errorf("scan deadline: %w", err)
	}

	if businessID.Valid {
		id := int(businessID.Int64)
		item.BusinessID = &id
	}

	return item, nil
}

// CreateDeadline validates and inserts a new deadline, assigning its ID
func CreateDeadline(db *sql.DB, deadline *Deadline) error {
	if err := deadline.Validate(); err != nil {
		return err
	}

	result, err := db.Exec(
		`INSERT INTO deadlines (title, description, type, duedate, reminderdays, recurring, recurrencemonths, completed, businessid)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		deadline.Title,
		deadline.Description,
		string(deadline.Type),
		deadline.DueDate,
		deadline.ReminderDays,
		deadline.IsRecurring,
		deadline.RecurrenceMonths,
		deadline.IsCompleted,
		nullableID(deadline.BusinessID),
	)
	if err != nil {
		return fmt.Errorf("create deadline: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("create deadline: %w", err)
	}
	deadline.ID = int(id)

	utils.Log("Added deadline %d: %s", deadline.ID, deadline.Title)
	return nil
}

// UpdateDeadline validates and saves an edited deadline
func UpdateDeadline(db *sql.DB, deadline *Deadline) error {
	if err := deadline.Validate(); err != nil {
		return err
	}

	_, err := db.Exec(
		`UPDATE deadlines
		 SET title = ?, description = ?, type = ?, duedate = ?, reminderdays = ?,
		     recurring = ?, recurrencemonths = ?, completed = ?, businessid = ?,
		     lastmodified = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		deadline.Title,
		deadline.Description,
		string(deadline.Type),
		deadline.DueDate,
		deadline.ReminderDays,
		deadline.IsRecurring,
		deadline.RecurrenceMonths,
		deadline.IsCompleted,
		nullableID(deadline.BusinessID),
		deadline.ID,
	)
	if err != nil {
		return fmt.Errorf("update deadline %d: %w", deadline.ID, err)
	}

	utils.Log("Updated deadline %d: %s", deadline.ID, deadline.Title)
	return nil
}

// CompleteDeadline marks a deadline done. The record keeps its historical
// due date; for recurring deadlines the caller creates the next instance
// separately from the recurrence projection.
func CompleteDeadline(db *sql.DB, id int) error {
	_, err := db.Exec(
		"UPDATE deadlines SET completed = 1, lastmodified = CURRENT_TIMESTAMP WHERE id = ?",
		id,
	)
	if err != nil {
		return fmt.Errorf("complete deadline %d: %w", id, err)
	}
	return nil
}

// DeleteDeadline removes a deadline from the store
func DeleteDeadline(db *sql.DB, id int) error {
	_, err := db.Exec("DELETE FROM deadlines WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete deadline %d: %w", id, err)
	}
	return nil
}

// ListBusinesses returns the business directory ordered by name
func ListBusinesses(db *sql.DB) ([]Business, error) {
	rows, err := db.Query("SELECT id, name FROM businesses ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer rows.Close()

	var businesses []Business
	for rows.Next() {
		var b Business
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("scan business: %w", err)
		}
		businesses = append(businesses, b)
	}
	return businesses, rows.Err()
}

// AddBusiness inserts a new entry into the business directory
func AddBusiness(db *sql.DB, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("business name must not be empty")
	}
	if _, err := db.Exec("INSERT INTO businesses (name) VALUES (?)", name); err != nil {
		return fmt.Errorf("add business %q: %w", name, err)
	}
	return nil
}

func nullableID(id *int) interface{} {
	if id == nil {
		return nil
	}
	return *id
}
