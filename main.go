package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"deadliner/pkg/cli"
	"deadliner/pkg/config"
	"deadliner/pkg/database"
	"deadliner/pkg/schedule"
	"deadliner/pkg/ui"
	"deadliner/pkg/utils"
)

func main() {
	args := cli.ParseArgs()

	utils.InitLogger(args.Verbose)
	defer utils.CloseLogger()

	cfg, err := config.Load(args.ConfigPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if args.Database != "" {
		cfg.Database = args.Database
	}

	// Presentation tuning from config
	if cfg.SoonWindowDays > 0 {
		schedule.SoonWindowDays = cfg.SoonWindowDays
	}
	if cfg.MaxCellSummaries > 0 {
		schedule.MaxCellSummaries = cfg.MaxCellSummaries
	}

	db, err := database.ConnectDB(cfg.Database)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		fmt.Printf("Error creating schema: %v\n", err)
		os.Exit(1)
	}

	// One-shot CLI commands skip the TUI entirely
	if cli.HandleCommands(db, args) {
		return
	}

	p := tea.NewProgram(ui.NewModel(db, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
