package prompt

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel represents the Bubble Tea model for picking one choice.
type selectModel struct {
	title           string
	choices         []string
	filteredChoices []string
	cursor          int
	filter          string
	selected        *string
	quitting        bool
}

// initialSelectModel creates a new select model with the cursor on current.
func initialSelectModel(title string, choices []string, current string) selectModel {
	m := selectModel{
		title:           title,
		choices:         choices,
		filteredChoices: choices,
	}
	for i, choice := range choices {
		if choice == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.handleSpecialKeys(key.String()) {
		return m, tea.Quit
	}
	m.handleNavigationKeys(key.String())
	m.handleFilterKeys(key.String())

	return m, nil
}

// handleSpecialKeys handles the keys that end the selection.
func (m *selectModel) handleSpecialKeys(key string) bool {
	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return true
	case "enter":
		if m.cursor < len(m.filteredChoices) {
			selected := m.filteredChoices[m.cursor]
			m.selected = &selected
			return true
		}
	}
	return false
}

// handleNavigationKeys handles navigation keys (up/down).
func (m *selectModel) handleNavigationKeys(key string) {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filteredChoices)-1 {
			m.cursor++
		}
	}
}

// handleFilterKeys handles filter-related keys.
func (m *selectModel) handleFilterKeys(key string) {
	switch key {
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.updateFilteredChoices()
		}
	case "esc":
		m.filter = ""
		m.updateFilteredChoices()
	case "up", "down", "k", "j", "q":
	default:
		if len(key) == 1 {
			m.filter += key
			m.updateFilteredChoices()
		}
	}
}

// updateFilteredChoices updates the filtered choices based on the current filter.
func (m *selectModel) updateFilteredChoices() {
	if m.filter == "" {
		m.filteredChoices = m.choices
	} else {
		m.filteredChoices = nil
		filterLower := strings.ToLower(m.filter)
		for _, choice := range m.choices {
			if strings.Contains(strings.ToLower(choice), filterLower) {
				m.filteredChoices = append(m.filteredChoices, choice)
			}
		}
	}

	if m.cursor >= len(m.filteredChoices) {
		m.cursor = 0
	}
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	fmt.Fprintf(&s, "? %s  [Use arrows to move, type to filter]\n\n", m.title)

	if m.filter != "" {
		fmt.Fprintf(&s, "Filter: %s\n\n", m.filter)
	}

	for i, choice := range m.filteredChoices {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		fmt.Fprintf(&s, "%s %s\n", cursor, choice)
	}

	s.WriteString("\nPress Enter to select, Ctrl+C or q to quit")
	if m.filter != "" {
		s.WriteString(", Esc to clear filter")
	}

	return s.String()
}

// runSelect runs the Bubble Tea program for the selection.
func runSelect(title string, choices []string, current string, in io.Reader, out io.Writer) (string, error) {
	p := tea.NewProgram(initialSelectModel(title, choices, current), tea.WithInput(in), tea.WithOutput(out))

	finalModel, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run selection program: %w", err)
	}

	model, ok := finalModel.(selectModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type %T", finalModel)
	}

	if model.selected == nil {
		return "", ErrNoSelection
	}

	return *model.selected, nil
}
