package ui

import (
	"database/sql"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"deadliner/pkg/config"
	"deadliner/pkg/database"
	"deadliner/pkg/datemath"
	"deadliner/pkg/keymaps"
	"deadliner/pkg/schedule"
)

// ViewMode selects which calendar presentation is active
type ViewMode int

const (
	MonthView ViewMode = iota
	WeekView
	ListView
)

func (v ViewMode) String() string {
	switch v {
	case MonthView:
		return "month"
	case WeekView:
		return "week"
	case ListView:
		return "list"
	}
	return "unknown"
}

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	AddMode
	EditMode
	DeleteConfirmMode
	SearchMode   // Mode for entering a search term
	HelpViewMode // Mode for displaying help
)

// Form field indices
const (
	fieldTitle = iota
	fieldDescription
	fieldType
	fieldDueDate
	fieldReminder
	fieldRecurrence
	fieldBusiness
	fieldCount
)

var formLabels = [fieldCount]string{
	"Title",
	"Description",
	"Type (filing/renewal/payment/report/meeting/other)",
	"Due Date (YYYY-MM-DD)",
	"Remind days before",
	"Repeat every N months (0 = one-off)",
	"Business ID (empty = organization-wide)",
}

// Model is the application state. The view state block is the single source
// of truth shared by the month, week and list presentations: all three
// render the same filtered snapshot, so switching modes never disagrees on
// which deadlines exist.
type Model struct {
	db            *sql.DB
	items         []database.Deadline
	businesses    []database.Business
	width, height int
	err           error

	// Configuration
	config config.Config
	styles config.Styles
	keyMap keymaps.KeyMap

	// Clock, injected so grids and classification are testable
	now func() time.Time

	// View state
	viewMode     ViewMode
	anchorDate   time.Time
	selectedDate *time.Time
	filters      schedule.Filters
	typeIndex    int // -1 = all types, else index into database.DeadlineTypes
	scopeIndex   int // -1 = all, 0 = organization-only, 1.. = businesses[i-1]

	// Derived render state, recomputed from scratch after every change
	visible   []database.Deadline
	cells     []schedule.GridCell
	groups    schedule.ListGroups
	listIndex int

	// Form state
	mode        InputMode
	inputs      [fieldCount]textinput.Model
	activeInput int
	searchInput textinput.Model

	// Edit/delete state
	editing *database.Deadline
}

// NewModel creates a new UI model with the provided configuration
func NewModel(db *sql.DB, cfg config.Config) Model {
	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = formLabels[i]
		in.Width = 44
		inputs[i] = in
	}
	inputs[fieldTitle].Focus()

	searchInput := textinput.New()
	searchInput.Placeholder = "Search title or description"
	searchInput.Width = 44

	m := Model{
		db:          db,
		config:      cfg,
		styles:      cfg.Styles,
		keyMap:      keymaps.BuildKeyMap(cfg.KeyMap),
		now:         time.Now,
		viewMode:    MonthView,
		anchorDate:  datemath.Truncate(time.Now()),
		filters:     schedule.DefaultFilters(),
		typeIndex:   -1,
		scopeIndex:  -1,
		mode:        NormalMode,
		inputs:      inputs,
		searchInput: searchInput,
	}

	m.refresh()

	return m
}

// Init initializes the model (required by Bubble Tea Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}
