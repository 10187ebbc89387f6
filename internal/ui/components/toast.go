package components

import (
	"charm.land/lipgloss/v2"

	"github.com/tsamuels/livewire/internal/notify"
	"github.com/tsamuels/livewire/internal/ui/theme"
)

// Toast renders a single notification event. Display timing is owned by
// the screen showing it.
type Toast struct {
	Event   notify.Event
	Visible bool
}

// View renders the toast, or an empty string when hidden.
func (t Toast) View(width int) string {
	if !t.Visible {
		return ""
	}

	border := theme.Border
	switch t.Event.Kind {
	case notify.KindCorrect:
		border = theme.Success
	case notify.KindIncorrect:
		border = theme.Error
	case notify.KindNoSelection:
		border = theme.Warning
	case notify.KindComplete:
		border = theme.Primary
	}

	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(t.Event.Title)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Event.Description)

	maxWidth := width - 8
	if maxWidth < 20 {
		maxWidth = 20
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(theme.BgCard).
		Padding(0, 1).
		MaxWidth(maxWidth).
		Render(title + "\n" + desc)
}
