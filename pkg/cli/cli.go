package cli

import (
	"database/sql"
	"flag"

	"deadliner/pkg/commands"
)

// Args represents parsed command line arguments
type Args struct {
	ConfigPath string
	Database   string
	Verbose    bool

	// Deadline operations
	AddDeadline  string
	DateFlag     string
	TypeFlag     string
	RemindFlag   int
	RecurFlag    int
	BusinessFlag int

	// Business directory
	AddBusiness string

	// Database operations
	DatabaseCmd   string
	BeforeFlag    string
	CompletedFlag bool
	YesFlag       bool

	// Import/Export operations
	ImportFile string
	ExportFile string
	FormatFlag string
}

// ParseArgs parses command line arguments and returns Args struct
func ParseArgs() *Args {
	args := &Args{}

	flag.StringVar(&args.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&args.Database, "db", "", "Path to database file (overrides config)")
	flag.BoolVar(&args.Verbose, "verbose", false, "Enable verbose logging")

	// Deadline operations
	flag.StringVar(&args.AddDeadline, "add", "", "Add a new deadline with the given title")
	flag.StringVar(&args.DateFlag, "date", "", "Due date for the deadline (YYYY-MM-DD)")
	flag.StringVar(&args.TypeFlag, "type", "other", "Deadline type (filing, renewal, payment, report, meeting, other)")
	flag.IntVar(&args.RemindFlag, "remind", 0, "Remind this many days before the due date")
	flag.IntVar(&args.RecurFlag, "recur", 0, "Repeat every N months (0 = one-off)")
	flag.IntVar(&args.BusinessFlag, "business", 0, "Business ID to scope the deadline to (0 = organization-wide)")

	// Business directory
	flag.StringVar(&args.AddBusiness, "add-business", "", "Add a business to the directory")

	// Database operations
	flag.StringVar(&args.DatabaseCmd, "database", "", "Database command (purge)")
	flag.StringVar(&args.BeforeFlag, "before", "", "Purge only deadlines due before this date (YYYY-MM-DD)")
	flag.BoolVar(&args.CompletedFlag, "completed", false, "Purge only completed deadlines")
	flag.BoolVar(&args.YesFlag, "yes", false, "Skip confirmation")

	// Import/Export operations
	flag.StringVar(&args.ImportFile, "import", "", "Import deadlines from a JSON file")
	flag.StringVar(&args.ExportFile, "export", "", "Export deadlines to a file")
	flag.StringVar(&args.FormatFlag, "format", "json", "Export format (json, txt, ics)")

	flag.Parse()
	return args
}

// HandleCommands processes CLI commands and returns true if a command was handled
func HandleCommands(db *sql.DB, args *Args) bool {
	if args.AddBusiness != "" {
		commands.HandleAddBusiness(db, args.AddBusiness)
		return true
	}

	if args.AddDeadline != "" {
		commands.HandleAddDeadline(db, commands.AddOptions{
			Title:      args.AddDeadline,
			Date:       args.DateFlag,
			Type:       args.TypeFlag,
			Remind:     args.RemindFlag,
			Recur:      args.RecurFlag,
			BusinessID: args.BusinessFlag,
		})
		return true
	}

	if args.DatabaseCmd != "" {
		commands.HandleDatabaseCommand(db, args.DatabaseCmd, args.BeforeFlag, args.TypeFlag, args.CompletedFlag, args.YesFlag)
		return true
	}

	if args.ImportFile != "" {
		commands.HandleImportCommand(db, args.ImportFile)
		return true
	}

	if args.ExportFile != "" {
		commands.HandleExportCommand(db, args.ExportFile, args.FormatFlag)
		return true
	}

	// No CLI command was handled
	return false
}
