package commands

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"deadliner/pkg/database"
)

// HandleImportCommand processes --import commands. The file is expected to
// hold a JSON array in the same shape --export produces; IDs are reassigned
// by the store.
func HandleImportCommand(db *sql.DB, filename string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		os.Exit(1)
	}

	var deadlines []database.Deadline
	if err := json.Unmarshal(content, &deadlines); err != nil {
		fmt.Printf("Error parsing file: %v\n", err)
		os.Exit(1)
	}

	var added int
	for _, d := range deadlines {
		d.ID = 0
		if err := database.CreateDeadline(db, &d); err != nil {
			fmt.Printf("Skipping %q: %v\n", d.Title, err)
			continue
		}
		added++
	}

	fmt.Printf("Successfully imported %d deadline(s) from %s\n", added, filename)
}
