package commands

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"
)

// HandleDatabaseCommand processes --database commands
func HandleDatabaseCommand(db *sql.DB, cmd, beforeStr, typeStr string, completedOnly, skipConfirm bool) {
	if cmd != "purge" {
		fmt.Printf("Unknown database command: %s\n", cmd)
		os.Exit(1)
	}

	var conditions []string
	var args []interface{}

	if beforeStr != "" {
		before, err := time.Parse("2006-01-02", beforeStr)
		if err != nil {
			fmt.Printf("Error parsing date: %v\n", err)
			os.Exit(1)
		}
		conditions = append(conditions, "duedate < ?")
		args = append(args, before)
	}
	if typeStr != "" && typeStr != "other" {
		conditions = append(conditions, "type = ?")
		args = append(args, typeStr)
	}
	if completedOnly {
		conditions = append(conditions, "completed = 1")
	}

	// Show confirmation unless --yes flag is used
	if !skipConfirm {
		fmt.Print("Are you sure you want to delete these deadlines? (y/N): ")
		var response string
		fmt.Scanln(&response)
		if strings.ToLower(response) != "y" && strings.ToLower(response) != "yes" {
			fmt.Println("Operation cancelled.")
			return
		}
	}

	query := "DELETE FROM deadlines"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	result, err := db.Exec(query, args...)
	if err != nil {
		fmt.Printf("Error purging deadlines: %v\n", err)
		os.Exit(1)
	}

	rowsAffected, _ := result.RowsAffected()
	fmt.Printf("Successfully deleted %d deadline(s)\n", rowsAffected)
}
