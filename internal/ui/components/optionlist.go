package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tsamuels/livewire/internal/catalog"
	"github.com/tsamuels/livewire/internal/ui/theme"
)

// OptionList renders a step's answer options with a movable cursor. The
// list owns only the cursor; selection, submission, and scoring belong to
// the scenario controller, which drives the Locked/ChosenID fields.
type OptionList struct {
	Options []catalog.Option
	Cursor  int

	// Locked freezes the cursor once the step is submitted.
	Locked bool
	// ChosenID is the submitted option id, for feedback coloring.
	ChosenID string
}

// NewOptionList creates an option list with the cursor on the first option.
func NewOptionList(options []catalog.Option) OptionList {
	return OptionList{Options: options}
}

// Update handles cursor movement. Movement is ignored while locked.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Locked {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
	}

	return o, nil
}

// CursorOption returns the option under the cursor, or nil for an empty list.
func (o OptionList) CursorOption() *catalog.Option {
	if o.Cursor < 0 || o.Cursor >= len(o.Options) {
		return nil
	}
	return &o.Options[o.Cursor]
}

// View renders the options. Before submission the cursor row is
// highlighted; after submission the correct option shows green and a wrong
// choice red.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor && !o.Locked {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, opt.ID, opt.Text)

		switch {
		case o.Locked && opt.Correct:
			s += theme.Correct.Render(line) + "\n"
		case o.Locked && opt.ID == o.ChosenID:
			s += theme.Incorrect.Render(line) + "\n"
		case o.Locked:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
