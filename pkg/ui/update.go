package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"deadliner/pkg/database"
	"deadliner/pkg/utils"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case NormalMode:
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = HelpViewMode

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.JumpToToday):
				m.goToToday()

			case key.Matches(msg, m.keyMap.MonthView):
				m.setViewMode(MonthView)

			case key.Matches(msg, m.keyMap.WeekView):
				m.setViewMode(WeekView)

			case key.Matches(msg, m.keyMap.ListView):
				m.setViewMode(ListView)

			case key.Matches(msg, m.keyMap.PrevPeriod):
				m.navigatePrev()

			case key.Matches(msg, m.keyMap.NextPeriod):
				m.navigateNext()

			case key.Matches(msg, m.keyMap.SelectLeft):
				if m.viewMode != ListView {
					m.moveSelection(-1)
				}

			case key.Matches(msg, m.keyMap.SelectRight):
				if m.viewMode != ListView {
					m.moveSelection(1)
				}

			case key.Matches(msg, m.keyMap.SelectUp):
				if m.viewMode == ListView {
					m.moveCursor(-1)
				} else {
					m.moveSelection(-7)
				}

			case key.Matches(msg, m.keyMap.SelectDown):
				if m.viewMode == ListView {
					m.moveCursor(1)
				} else {
					m.moveSelection(7)
				}

			case key.Matches(msg, m.keyMap.CursorUp):
				if m.viewMode == ListView {
					m.moveCursor(-1)
				}

			case key.Matches(msg, m.keyMap.CursorDown):
				if m.viewMode == ListView {
					m.moveCursor(1)
				}

			case key.Matches(msg, m.keyMap.CompleteDeadline):
				m.completeCurrent()

			case key.Matches(msg, m.keyMap.AddDeadline):
				m.beginAdd()

			case key.Matches(msg, m.keyMap.EditDeadline):
				m.beginEdit()

			case key.Matches(msg, m.keyMap.DeleteDeadline):
				if d := m.currentDeadline(); d != nil {
					m.mode = DeleteConfirmMode
					m.editing = d
				}

			case key.Matches(msg, m.keyMap.ToggleCompleted):
				m.toggleCompleted()

			case key.Matches(msg, m.keyMap.CycleTypeFilter):
				m.cycleTypeFilter()

			case key.Matches(msg, m.keyMap.CycleBusinessScope):
				m.cycleBusinessScope()

			case key.Matches(msg, m.keyMap.SearchDeadlines), msg.String() == "/":
				m.mode = SearchMode
				m.searchInput.Focus()
				m.searchInput.SetValue(m.filters.Search)
				return m, nil
			}

		case AddMode, EditMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.editing = nil
				m.resetInputs()

			case "tab":
				m.focusNextInput()

			case "shift+tab":
				m.focusPreviousInput()

			case "enter":
				if m.activeInput == fieldCount-1 {
					// Submit on enter from the last field
					m.submitForm()
				} else {
					m.focusNextInput()
				}

			default:
				m.inputs[m.activeInput], cmd = m.inputs[m.activeInput].Update(msg)
				cmds = append(cmds, cmd)
			}

		case SearchMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.setSearch("")

			case "enter":
				m.mode = NormalMode
				m.setSearch(m.searchInput.Value())
				utils.Log("Searching for: %s", m.filters.Search)

			default:
				m.searchInput, cmd = m.searchInput.Update(msg)
				cmds = append(cmds, cmd)
			}

		case DeleteConfirmMode:
			switch msg.String() {
			case "y", "Y":
				if m.editing != nil {
					utils.Log("Deleting deadline ID: %d", m.editing.ID)
					if err := database.DeleteDeadline(m.db, m.editing.ID); err != nil {
						m.err = err
					} else {
						m.refresh()
					}
				}
				m.mode = NormalMode
				m.editing = nil

			case "n", "N", "esc":
				m.mode = NormalMode
				m.editing = nil
			}

		case HelpViewMode:
			switch msg.String() {
			case "esc", "ctrl+b", "q":
				m.mode = NormalMode
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}

	return m, tea.Batch(cmds...)
}

// moveCursor shifts the list cursor, clamped to the flattened group length
func (m *Model) moveCursor(delta int) {
	entries := m.listEntries()
	if len(entries) == 0 {
		m.listIndex = 0
		return
	}

	m.listIndex += delta
	if m.listIndex < 0 {
		m.listIndex = 0
	}
	if m.listIndex > len(entries)-1 {
		m.listIndex = len(entries) - 1
	}
}
