package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tsamuels/livewire/internal/ui/theme"
)

// SearchInput wraps bubbles/textinput for inline filtering, e.g. the
// catalog title search.
type SearchInput struct {
	Model  textinput.Model
	Active bool
}

// NewSearchInput creates a styled search input, initially inactive.
func NewSearchInput(placeholder string) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 40
	return SearchInput{Model: ti}
}

// Focus activates the input for typing.
func (s *SearchInput) Focus() tea.Cmd {
	s.Active = true
	return s.Model.Focus()
}

// Blur deactivates the input, keeping its value as the active filter.
func (s *SearchInput) Blur() {
	s.Active = false
	s.Model.Blur()
}

// Clear empties and deactivates the input.
func (s *SearchInput) Clear() {
	s.Model.SetValue("")
	s.Blur()
}

// Update forwards messages to the underlying model while active.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	if !s.Active {
		return s, nil
	}
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// Value returns the current search text.
func (s SearchInput) Value() string {
	return s.Model.Value()
}

// View renders the input with a search prefix.
func (s SearchInput) View() string {
	prefix := lipgloss.NewStyle().Foreground(theme.TextDim).Render("/ ")
	if s.Active {
		prefix = lipgloss.NewStyle().Foreground(theme.Primary).Render("/ ")
	}
	return prefix + s.Model.View()
}
