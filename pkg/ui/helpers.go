package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"deadliner/pkg/database"
	"deadliner/pkg/datemath"
	"deadliner/pkg/schedule"
	"deadliner/pkg/utils"
)

// refresh re-fetches the authoritative snapshot from the store and rebuilds
// every derived view. State-changing actions always go through here rather
// than patching the previous render: recomputation is cheap and stale
// partial updates are not.
func (m *Model) refresh() {
	if m.db != nil {
		items, err := database.ListDeadlines(m.db, database.ListFilter{IncludeCompleted: true})
		if err != nil {
			m.err = err
			return
		}
		m.items = items

		businesses, err := database.ListBusinesses(m.db)
		if err != nil {
			m.err = err
			return
		}
		m.businesses = businesses
	}

	m.rederive()
}

// rederive recomputes the filtered set and the grid/list projections from
// the in-memory snapshot. Filtering happens exactly once, here, for all
// three view modes.
func (m *Model) rederive() {
	m.visible = schedule.ApplyFilters(m.items, m.filters)

	now := m.now()
	switch m.viewMode {
	case MonthView:
		m.cells = schedule.BuildMonthGrid(m.visible, m.anchorDate, m.selectedDate, now)
	case WeekView:
		m.cells = schedule.BuildWeekGrid(m.visible, m.anchorDate, m.selectedDate, now)
	case ListView:
		m.cells = nil
	}
	m.groups = schedule.BuildListGroups(m.visible, now)

	if max := len(m.listEntries()) - 1; m.listIndex > max {
		m.listIndex = max
	}
	if m.listIndex < 0 {
		m.listIndex = 0
	}
}

// navigatePrev shifts the anchor one month or week back; the list view has
// no anchor so it is a no-op there
func (m *Model) navigatePrev() {
	switch m.viewMode {
	case MonthView:
		m.anchorDate = datemath.SubMonths(m.anchorDate, 1)
	case WeekView:
		m.anchorDate = datemath.SubWeeks(m.anchorDate, 1)
	case ListView:
		return
	}
	m.rederive()
}

// navigateNext shifts the anchor one month or week forward
func (m *Model) navigateNext() {
	switch m.viewMode {
	case MonthView:
		m.anchorDate = datemath.AddMonths(m.anchorDate, 1)
	case WeekView:
		m.anchorDate = datemath.AddWeeks(m.anchorDate, 1)
	case ListView:
		return
	}
	m.rederive()
}

// goToToday re-anchors on the current day and selects it
func (m *Model) goToToday() {
	today := datemath.Truncate(m.now())
	m.anchorDate = today
	m.selectedDate = &today
	m.rederive()
}

// selectDate focuses a date without moving the anchor, even when the date
// falls outside the displayed grid
func (m *Model) selectDate(d time.Time) {
	day := datemath.Truncate(d)
	m.selectedDate = &day
	m.rederive()
}

// moveSelection shifts the selected date by whole days, starting from the
// anchor when nothing is selected yet
func (m *Model) moveSelection(days int) {
	base := datemath.Truncate(m.anchorDate)
	if m.selectedDate != nil {
		base = *m.selectedDate
	}
	m.selectDate(base.AddDate(0, 0, days))
}

// setViewMode switches the presentation; anchor, selection and filters are
// preserved so the user never loses their place
func (m *Model) setViewMode(mode ViewMode) {
	m.viewMode = mode
	m.rederive()
}

func (m *Model) toggleCompleted() {
	m.filters.IncludeCompleted = !m.filters.IncludeCompleted
	m.rederive()
}

// cycleTypeFilter steps through all types, then each concrete type in order
func (m *Model) cycleTypeFilter() {
	m.typeIndex++
	if m.typeIndex >= len(database.DeadlineTypes) {
		m.typeIndex = -1
	}
	if m.typeIndex < 0 {
		m.filters.Type = ""
	} else {
		m.filters.Type = database.DeadlineTypes[m.typeIndex]
	}
	m.rederive()
}

// cycleBusinessScope steps through all businesses, organization-only, then
// each business from the directory
func (m *Model) cycleBusinessScope() {
	m.scopeIndex++
	if m.scopeIndex > len(m.businesses) {
		m.scopeIndex = -1
	}

	switch {
	case m.scopeIndex < 0:
		m.filters.Scope = schedule.BusinessScope{Kind: schedule.ScopeAll}
	case m.scopeIndex == 0:
		m.filters.Scope = schedule.BusinessScope{Kind: schedule.ScopeNone}
	default:
		id := m.businesses[m.scopeIndex-1].ID
		m.filters.Scope = schedule.BusinessScope{
			Kind: schedule.ScopeSelected,
			IDs:  map[int]bool{id: true},
		}
	}
	m.rederive()
}

func (m *Model) setSearch(term string) {
	m.filters.Search = term
	m.rederive()
}

// listEntries flattens the list groups in display order for cursor math
func (m *Model) listEntries() []schedule.Entry {
	entries := make([]schedule.Entry, 0,
		len(m.groups.Overdue)+len(m.groups.Upcoming)+len(m.groups.Completed))
	entries = append(entries, m.groups.Overdue...)
	entries = append(entries, m.groups.Upcoming...)
	entries = append(entries, m.groups.Completed...)
	return entries
}

// currentDeadline is the deadline the next action applies to: the cursor
// row in list view, the first deadline on the selected day in the grids
func (m *Model) currentDeadline() *database.Deadline {
	if m.viewMode == ListView {
		entries := m.listEntries()
		if m.listIndex >= 0 && m.listIndex < len(entries) {
			d := entries[m.listIndex].Deadline
			return &d
		}
		return nil
	}

	if m.selectedDate == nil {
		return nil
	}
	for _, cell := range m.cells {
		if !cell.IsSelected {
			continue
		}
		for _, entry := range cell.Entries {
			d := entry.Deadline
			return &d
		}
	}
	return nil
}

// completeCurrent marks the current deadline done and, for recurring ones,
// creates the projected next instance as a sibling record
func (m *Model) completeCurrent() {
	d := m.currentDeadline()
	if d == nil || d.IsCompleted {
		return
	}

	if err := database.CompleteDeadline(m.db, d.ID); err != nil {
		m.err = err
		return
	}
	utils.Log("Completed deadline %d: %s", d.ID, d.Title)

	if next := schedule.ProjectNextRecurrence(*d); next != nil {
		if err := database.CreateDeadline(m.db, next); err != nil {
			m.err = err
			return
		}
		utils.Log("Projected next recurrence of %d to %s", d.ID, next.DueDate.Format("2006-01-02"))
	}

	m.refresh()
}

// beginAdd opens the add form, pre-filling the due date from the selection
func (m *Model) beginAdd() {
	m.mode = AddMode
	m.editing = nil
	m.resetInputs()

	due := datemath.Truncate(m.now())
	if m.selectedDate != nil {
		due = *m.selectedDate
	}
	m.inputs[fieldDueDate].SetValue(due.Format("2006-01-02"))
	m.inputs[fieldType].SetValue(string(database.TypeOther))
	m.inputs[fieldReminder].SetValue("0")
	m.inputs[fieldRecurrence].SetValue("0")
}

// beginEdit opens the edit form populated from the current deadline
func (m *Model) beginEdit() {
	d := m.currentDeadline()
	if d == nil {
		return
	}

	m.mode = EditMode
	m.editing = d
	m.resetInputs()

	m.inputs[fieldTitle].SetValue(d.Title)
	m.inputs[fieldDescription].SetValue(d.Description)
	m.inputs[fieldType].SetValue(string(d.Type))
	m.inputs[fieldDueDate].SetValue(d.DueDate.Format("2006-01-02"))
	m.inputs[fieldReminder].SetValue(strconv.Itoa(d.ReminderDays))
	m.inputs[fieldRecurrence].SetValue(strconv.Itoa(d.RecurrenceMonths))
	if d.BusinessID != nil {
		m.inputs[fieldBusiness].SetValue(strconv.Itoa(*d.BusinessID))
	}
}

// submitForm validates the form and persists the add or edit
func (m *Model) submitForm() {
	parsed, err := m.parseForm()
	if err != nil {
		m.err = err
		return
	}

	switch m.mode {
	case AddMode:
		if err := database.CreateDeadline(m.db, &parsed); err != nil {
			m.err = err
			return
		}
		m.selectDate(parsed.DueDate)

	case EditMode:
		if m.editing == nil {
			return
		}
		parsed.ID = m.editing.ID
		parsed.IsCompleted = m.editing.IsCompleted
		if err := database.UpdateDeadline(m.db, &parsed); err != nil {
			m.err = err
			return
		}
	}

	m.mode = NormalMode
	m.editing = nil
	m.err = nil
	m.resetInputs()
	m.refresh()
}

// parseForm converts the raw form inputs into a deadline, failing on the
// first malformed field rather than coercing
func (m *Model) parseForm() (database.Deadline, error) {
	var d database.Deadline

	d.Title = strings.TrimSpace(m.inputs[fieldTitle].Value())
	d.Description = strings.TrimSpace(m.inputs[fieldDescription].Value())
	d.Type = database.DeadlineType(strings.ToLower(strings.TrimSpace(m.inputs[fieldType].Value())))

	due, err := time.Parse("2006-01-02", strings.TrimSpace(m.inputs[fieldDueDate].Value()))
	if err != nil {
		return d, fmt.Errorf("invalid due date: use YYYY-MM-DD")
	}
	d.DueDate = due

	d.ReminderDays, err = parseOptionalInt(m.inputs[fieldReminder].Value())
	if err != nil {
		return d, fmt.Errorf("invalid reminder days: %w", err)
	}

	d.RecurrenceMonths, err = parseOptionalInt(m.inputs[fieldRecurrence].Value())
	if err != nil {
		return d, fmt.Errorf("invalid recurrence months: %w", err)
	}
	d.IsRecurring = d.RecurrenceMonths > 0

	if raw := strings.TrimSpace(m.inputs[fieldBusiness].Value()); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return d, fmt.Errorf("invalid business id: %w", err)
		}
		d.BusinessID = &id
	}

	return d, d.Validate()
}

func parseOptionalInt(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// resetInputs clears all form inputs and focuses the first
func (m *Model) resetInputs() {
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.activeInput = fieldTitle
	m.inputs[fieldTitle].Focus()
}

// focusNextInput cycles through the form inputs
func (m *Model) focusNextInput() {
	m.inputs[m.activeInput].Blur()
	m.activeInput = (m.activeInput + 1) % fieldCount
	m.inputs[m.activeInput].Focus()
}

// focusPreviousInput cycles through the form inputs
func (m *Model) focusPreviousInput() {
	m.inputs[m.activeInput].Blur()
	m.activeInput = (m.activeInput + fieldCount - 1) % fieldCount
	m.inputs[m.activeInput].Focus()
}
