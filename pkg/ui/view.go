package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"deadliner/pkg/schedule"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	switch m.mode {
	case NormalMode:
		sb.WriteString(m.titleBar(" Deadliner "))
		sb.WriteString("\n\n")

		switch m.viewMode {
		case MonthView:
			sb.WriteString(m.renderMonth())
		case WeekView:
			sb.WriteString(m.renderWeek())
		case ListView:
			sb.WriteString(m.renderList())
		}

		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor)).
			Render(m.statusLine()))
		sb.WriteString("\n")

	case AddMode:
		sb.WriteString(m.titleBar(" Add Deadline "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case EditMode:
		sb.WriteString(m.titleBar(" Edit Deadline "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case DeleteConfirmMode:
		sb.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
			Background(lipgloss.Color(m.styles.ErrorColor)).
			Padding(0, 1).
			Render(" Delete Deadline "))
		sb.WriteString("\n\n")

		if m.editing != nil {
			sb.WriteString("Are you sure you want to delete this deadline?\n\n")
			sb.WriteString(fmt.Sprintf("Title: %s\n", m.editing.Title))
			sb.WriteString(fmt.Sprintf("Due: %s\n", m.editing.DueDate.Format("2006-01-02")))
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))
		}

	case SearchMode:
		sb.WriteString(m.titleBar(" Search Deadlines "))
		sb.WriteString("\n\n")
		sb.WriteString("Enter search term (matches title and description):")
		sb.WriteString("\n\n")
		sb.WriteString(m.searchInput.View())

	case HelpViewMode:
		sb.WriteString(m.renderHelp())
	}

	// Error message if any
	if m.err != nil {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.ErrorColor)).
			Render(fmt.Sprintf("\n\nError: %v", m.err)))
	}

	sb.WriteString("\n")
	sb.WriteString(m.helpBar())

	return sb.String()
}

func (m Model) titleBar(title string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.AccentColor)).
		Padding(0, 1).
		Render(title)
}

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// cellWidth sizes grid cells to the terminal, with a usable floor
func (m Model) cellWidth() int {
	w := 18
	if m.width > 0 {
		w = (m.width - 2) / 7
	}
	if w < 12 {
		w = 12
	}
	return w
}

// renderMonth renders the month grid: whole weeks from Sunday to Saturday,
// out-of-month days dimmed, each cell summarizing up to MaxCellSummaries
// deadlines plus an overflow count
func (m Model) renderMonth() string {
	var sb strings.Builder

	cellW := m.cellWidth()

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(m.anchorDate.Format("January 2006")))
	sb.WriteString("\n")

	header := ""
	for _, day := range weekdayNames {
		header += fmt.Sprintf("%-*s", cellW, day)
	}
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(header))
	sb.WriteString("\n")

	cellHeight := 2 + schedule.MaxCellSummaries

	for row := 0; row < len(m.cells)/7; row++ {
		rendered := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			cell := m.cells[row*7+col]
			rendered = append(rendered, m.renderMonthCell(cell, cellW, cellHeight))
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m Model) renderMonthCell(cell schedule.GridCell, width, height int) string {
	dayStyle := lipgloss.NewStyle().Bold(true)
	if !cell.InMonth {
		dayStyle = dayStyle.Bold(false).Foreground(lipgloss.Color(m.styles.DimColor))
	}
	if cell.IsToday {
		dayStyle = dayStyle.
			Background(lipgloss.Color(m.styles.SelectedBgColor)).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor))
	}
	if cell.IsSelected {
		dayStyle = dayStyle.
			Background(lipgloss.Color(m.styles.AccentColor)).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor))
	}

	lines := []string{dayStyle.Render(fmt.Sprintf("%2d", cell.Date.Day()))}

	for _, entry := range cell.Summaries() {
		lines = append(lines, m.entryStyle(entry.Class).Render(truncate(entry.Deadline.Title, width-1)))
	}
	if n := cell.Overflow(); n > 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.DimColor)).
			Render(fmt.Sprintf("+%d more", n)))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

// renderWeek renders seven columns with every deadline of each day; the
// week view never truncates
func (m Model) renderWeek() string {
	var sb strings.Builder

	cellW := m.cellWidth()

	if len(m.cells) > 0 {
		start := m.cells[0].Date
		end := m.cells[len(m.cells)-1].Date
		sb.WriteString(lipgloss.NewStyle().Bold(true).
			Render(fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))))
		sb.WriteString("\n")
	}

	height := 2
	for _, cell := range m.cells {
		if h := len(cell.Entries) + 2; h > height {
			height = h
		}
	}

	columns := make([]string, 0, 7)
	for _, cell := range m.cells {
		columns = append(columns, m.renderWeekColumn(cell, cellW, height))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) renderWeekColumn(cell schedule.GridCell, width, height int) string {
	headStyle := lipgloss.NewStyle().Bold(true)
	if cell.IsToday {
		headStyle = headStyle.
			Background(lipgloss.Color(m.styles.SelectedBgColor)).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor))
	}
	if cell.IsSelected {
		headStyle = headStyle.
			Background(lipgloss.Color(m.styles.AccentColor)).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor))
	}

	lines := []string{headStyle.Render(cell.Date.Format("Mon 2"))}
	for _, entry := range cell.Entries {
		lines = append(lines, m.entryStyle(entry.Class).Render(truncate(entry.Deadline.Title, width-1)))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.styles.BorderColor)).
		BorderLeft(true).
		Render(strings.Join(lines, "\n"))
}

// renderList renders the overdue/upcoming/completed groups with a cursor
func (m Model) renderList() string {
	var sb strings.Builder

	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.styles.AccentColor))

	index := 0
	writeGroup := func(name string, entries []schedule.Entry) {
		sb.WriteString(sectionStyle.Render(fmt.Sprintf("%s (%d)", name, len(entries))))
		sb.WriteString("\n")
		if len(entries) == 0 {
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.DimColor)).
				Render("  none"))
			sb.WriteString("\n")
		}
		for _, entry := range entries {
			line := m.listLine(entry)
			if index == m.listIndex {
				line = lipgloss.NewStyle().
					Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
					Background(lipgloss.Color(m.styles.SelectedBgColor)).
					Bold(true).
					Render(line)
			} else {
				line = m.entryStyle(entry.Class).Render(line)
			}
			sb.WriteString(line)
			sb.WriteString("\n")
			index++
		}
		sb.WriteString("\n")
	}

	writeGroup("Overdue", m.groups.Overdue)
	writeGroup("Upcoming", m.groups.Upcoming)
	if m.filters.IncludeCompleted {
		writeGroup("Completed", m.groups.Completed)
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

func (m Model) listLine(entry schedule.Entry) string {
	d := entry.Deadline

	status := "[ ]"
	if d.IsCompleted {
		status = "[x]"
	}

	line := fmt.Sprintf("  %s %s  %s (%s)", status, d.DueDate.Format("2006-01-02"), d.Title, d.Type)
	if d.IsRecurring {
		line += fmt.Sprintf(" ~%dmo", d.RecurrenceMonths)
	}
	if d.BusinessID != nil {
		line += " " + m.businessName(*d.BusinessID)
	}
	return line
}

func (m Model) businessName(id int) string {
	for _, b := range m.businesses {
		if b.ID == id {
			return "@" + b.Name
		}
	}
	return fmt.Sprintf("@business-%d", id)
}

func (m Model) entryStyle(class schedule.Classification) lipgloss.Style {
	switch class {
	case schedule.Overdue:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.OverdueColor))
	case schedule.Soon:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.SoonColor))
	case schedule.Completed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.CompletedColor))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor))
}

// statusLine summarizes the active view mode and filters
func (m Model) statusLine() string {
	var viewPart string
	switch m.viewMode {
	case MonthView:
		viewPart = fmt.Sprintf("month of %s", m.anchorDate.Format("January 2006"))
	case WeekView:
		viewPart = fmt.Sprintf("week of %s", m.anchorDate.Format("Jan 2, 2006"))
	case ListView:
		viewPart = "all deadlines"
	}

	typePart := "all types"
	if m.filters.Type != "" {
		typePart = string(m.filters.Type) + " only"
	}

	var scopePart string
	switch m.filters.Scope.Kind {
	case schedule.ScopeNone:
		scopePart = "organization-wide only"
	case schedule.ScopeSelected:
		names := make([]string, 0, len(m.filters.Scope.IDs))
		for id := range m.filters.Scope.IDs {
			names = append(names, m.businessName(id))
		}
		sort.Strings(names)
		scopePart = strings.Join(names, ",")
	default:
		scopePart = "all businesses"
	}

	completedPart := "completed hidden"
	if m.filters.IncludeCompleted {
		completedPart = "completed shown"
	}

	line := fmt.Sprintf("Showing %s | %s | %s | %s", viewPart, typePart, scopePart, completedPart)
	if m.filters.Search != "" {
		line += fmt.Sprintf(" | search: %s", m.filters.Search)
	}
	return line
}

// renderForm renders the input form for adding/editing deadlines
func (m Model) renderForm() string {
	var sb strings.Builder

	for i, input := range m.inputs {
		sb.WriteString(formLabels[i])
		sb.WriteString(":\n")
		sb.WriteString(input.View())
		sb.WriteString("\n\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// renderHelp renders the fullscreen command list
func (m Model) renderHelp() string {
	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Available Commands"))
	sb.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))

	addCommand := func(binding key.Binding) {
		sb.WriteString(fmt.Sprintf("%s: %s\n",
			descStyle.Render(binding.Help().Desc),
			keyStyle.Render(binding.Help().Key)))
	}

	addCommand(m.keyMap.QuitApp)
	addCommand(m.keyMap.ShowHelp)
	addCommand(m.keyMap.AddDeadline)
	addCommand(m.keyMap.EditDeadline)
	addCommand(m.keyMap.DeleteDeadline)
	addCommand(m.keyMap.CompleteDeadline)
	addCommand(m.keyMap.ToggleCompleted)
	addCommand(m.keyMap.CycleTypeFilter)
	addCommand(m.keyMap.CycleBusinessScope)
	addCommand(m.keyMap.SearchDeadlines)

	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Views and Navigation"))
	sb.WriteString("\n\n")

	addCommand(m.keyMap.MonthView)
	addCommand(m.keyMap.WeekView)
	addCommand(m.keyMap.ListView)
	addCommand(m.keyMap.PrevPeriod)
	addCommand(m.keyMap.NextPeriod)
	addCommand(m.keyMap.JumpToToday)
	addCommand(m.keyMap.SelectLeft)
	addCommand(m.keyMap.SelectRight)
	addCommand(m.keyMap.SelectUp)
	addCommand(m.keyMap.SelectDown)

	return sb.String()
}

// helpBar renders a sleek status bar with available actions
func (m Model) helpBar() string {
	var actions []string

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))
	separatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.BorderColor))

	separator := separatorStyle.Render(" • ")

	addAction := func(k, desc string) {
		actions = append(actions, fmt.Sprintf("%s %s", keyStyle.Render(k), descStyle.Render(desc)))
	}

	switch m.mode {
	case NormalMode:
		addAction("m/w/l", "views")
		if m.viewMode != ListView {
			addAction("←↑↓→", "select")
			addAction("ctrl+←/→", "prev/next")
		} else {
			addAction("↑↓", "cursor")
		}
		addAction("h", "today")
		addAction("a", "add")
		addAction("space", "done")
		addAction("f/b/c", "filters")
		addAction("ctrl+f", "search")
		addAction("ctrl+b", "help")
		addAction("q", "quit")

	case AddMode, EditMode:
		addAction("tab", "next field")
		addAction("enter", "save")
		addAction("esc", "cancel")

	case DeleteConfirmMode:
		addAction("y", "confirm")
		addAction("n", "cancel")

	case SearchMode:
		addAction("enter", "search")
		addAction("esc", "clear")

	case HelpViewMode:
		addAction("ctrl+b/esc", "back")
		addAction("q", "quit")
	}

	return strings.Join(actions, separator)
}

// truncate shortens a string to fit a cell, appending an ellipsis
func truncate(s string, width int) string {
	if width <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
