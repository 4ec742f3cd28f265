package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":           {"ctrl+b", "show/hide commands"},
	"QuitApp":            {"q", "quit"},
	"AddDeadline":        {"a", "add deadline"},
	"EditDeadline":       {"e", "edit deadline"},
	"DeleteDeadline":     {"d", "delete deadline"},
	"CompleteDeadline":   {"space", "complete deadline"},
	"MonthView":          {"m", "month view"},
	"WeekView":           {"w", "week view"},
	"ListView":           {"l", "list view"},
	"PrevPeriod":         {"ctrl+left,pgup", "previous month/week"},
	"NextPeriod":         {"ctrl+right,pgdown", "next month/week"},
	"JumpToToday":        {"h", "jump to today"},
	"SelectLeft":         {"left", "select previous day"},
	"SelectRight":        {"right", "select next day"},
	"SelectUp":           {"up", "select same day previous week"},
	"SelectDown":         {"down", "select same day next week"},
	"CursorUp":           {"k", "move list cursor up"},
	"CursorDown":         {"j", "move list cursor down"},
	"ToggleCompleted":    {"c", "show/hide completed"},
	"CycleTypeFilter":    {"f", "cycle type filter"},
	"CycleBusinessScope": {"b", "cycle business scope"},
	"SearchDeadlines":    {"ctrl+f", "search deadlines"},
}

type KeyMap struct {
	ShowHelp           key.Binding
	QuitApp            key.Binding
	AddDeadline        key.Binding
	EditDeadline       key.Binding
	DeleteDeadline     key.Binding
	CompleteDeadline   key.Binding
	MonthView          key.Binding
	WeekView           key.Binding
	ListView           key.Binding
	PrevPeriod         key.Binding
	NextPeriod         key.Binding
	JumpToToday        key.Binding
	SelectLeft         key.Binding
	SelectRight        key.Binding
	SelectUp           key.Binding
	SelectDown         key.Binding
	CursorUp           key.Binding
	CursorDown         key.Binding
	ToggleCompleted    key.Binding
	CycleTypeFilter    key.Binding
	CycleBusinessScope key.Binding
	SearchDeadlines    key.Binding
}

func BuildKeyMap(configOverrides map[string]string) KeyMap {
	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := configOverrides[action]; exists && override != "" {
			keyStr = override
		}

		binding := parseKeyBinding(keyStr, def.DefaultKey, def.Help)

		switch action {
		case "ShowHelp":
			km.ShowHelp = binding
		case "QuitApp":
			km.QuitApp = binding
		case "AddDeadline":
			km.AddDeadline = binding
		case "EditDeadline":
			km.EditDeadline = binding
		case "DeleteDeadline":
			km.DeleteDeadline = binding
		case "CompleteDeadline":
			km.CompleteDeadline = binding
		case "MonthView":
			km.MonthView = binding
		case "WeekView":
			km.WeekView = binding
		case "ListView":
			km.ListView = binding
		case "PrevPeriod":
			km.PrevPeriod = binding
		case "NextPeriod":
			km.NextPeriod = binding
		case "JumpToToday":
			km.JumpToToday = binding
		case "SelectLeft":
			km.SelectLeft = binding
		case "SelectRight":
			km.SelectRight = binding
		case "SelectUp":
			km.SelectUp = binding
		case "SelectDown":
			km.SelectDown = binding
		case "CursorUp":
			km.CursorUp = binding
		case "CursorDown":
			km.CursorDown = binding
		case "ToggleCompleted":
			km.ToggleCompleted = binding
		case "CycleTypeFilter":
			km.CycleTypeFilter = binding
		case "CycleBusinessScope":
			km.CycleBusinessScope = binding
		case "SearchDeadlines":
			km.SearchDeadlines = binding
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	keys := strings.Split(keyStr, ",")
	for i, k := range keys {
		keys[i] = strings.TrimSpace(k)
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
