package run

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tsamuels/livewire/internal/catalog"
	"github.com/tsamuels/livewire/internal/notify"
	"github.com/tsamuels/livewire/internal/progress"
	"github.com/tsamuels/livewire/internal/router"
	"github.com/tsamuels/livewire/internal/scenario"
	"github.com/tsamuels/livewire/internal/screen"
	"github.com/tsamuels/livewire/internal/ui/components"
	"github.com/tsamuels/livewire/internal/ui/layout"
	"github.com/tsamuels/livewire/internal/ui/theme"
)

const toastDuration = 4 * time.Second

// toastExpiredMsg hides the toast whose sequence number matches.
type toastExpiredMsg struct {
	seq int
}

// RunScreen drives a scenario session: one step at a time, option cursor,
// submission feedback, and the completion view. All session mutation goes
// through the controller; the screen only mirrors its state.
type RunScreen struct {
	controller *scenario.Controller
	events     *notify.Queue
	visible    []catalog.Scenario // filter context for "next scenario"

	options  components.OptionList
	toast    components.Toast
	toastSeq int
}

var _ screen.Screen = (*RunScreen)(nil)
var _ screen.KeyHintProvider = (*RunScreen)(nil)

// New creates a RunScreen and starts a fresh session on the scenario. The
// visible slice is the filtered list the scenario was picked from; "next"
// continues within it.
func New(controller *scenario.Controller, events *notify.Queue, sc catalog.Scenario, visible []catalog.Scenario) *RunScreen {
	r := &RunScreen{
		controller: controller,
		events:     events,
		visible:    visible,
	}
	controller.Start(&sc)
	r.syncOptions()
	return r
}

func (r *RunScreen) Init() tea.Cmd {
	return nil
}

func (r *RunScreen) Title() string {
	if sc := r.controller.Active(); sc != nil {
		return sc.Title
	}
	return "Scenario"
}

func (r *RunScreen) KeyHints() []layout.KeyHint {
	switch {
	case r.controller.Phase() == scenario.PhaseComplete:
		return []layout.KeyHint{
			{Key: "n", Description: "Next scenario"},
			{Key: "Esc", Description: "Back"},
		}
	case r.controller.FeedbackVisible():
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Quit scenario"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit scenario"},
		}
	}
}

// syncOptions rebuilds the option list from the controller's current step.
func (r *RunScreen) syncOptions() {
	step := r.controller.CurrentStep()
	if step == nil {
		r.options = components.OptionList{}
		return
	}
	r.options = components.NewOptionList(step.Options)
}

// drainEvents pulls queued controller notifications into the toast,
// returning a command to expire it.
func (r *RunScreen) drainEvents() tea.Cmd {
	events := r.events.Drain()
	if len(events) == 0 {
		return nil
	}

	// Only the most recent event is shown.
	r.toast = components.Toast{Event: events[len(events)-1], Visible: true}
	r.toastSeq++
	seq := r.toastSeq

	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (r *RunScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case toastExpiredMsg:
		if msg.seq == r.toastSeq {
			r.toast.Visible = false
		}
		return r, nil

	case tea.KeyMsg:
		if r.controller.Phase() == scenario.PhaseComplete {
			return r.updateComplete(msg)
		}
		return r.updateInProgress(msg)
	}

	return r, nil
}

func (r *RunScreen) updateInProgress(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		r.controller.Exit()
		return r, func() tea.Msg { return router.PopScreenMsg{} }

	case "enter":
		if r.controller.FeedbackVisible() {
			r.controller.AdvanceStep()
			cmd := r.drainEvents()
			if r.controller.Phase() != scenario.PhaseComplete {
				r.syncOptions()
			}
			return r, cmd
		}

		if opt := r.options.CursorOption(); opt != nil {
			r.controller.SelectOption(opt.ID)
		}
		r.controller.SubmitStep()
		cmd := r.drainEvents()

		if r.controller.FeedbackVisible() {
			r.options.Locked = true
			r.options.ChosenID = r.controller.PendingOptionID()
		}
		return r, cmd
	}

	var cmd tea.Cmd
	r.options, cmd = r.options.Update(msg)
	return r, cmd
}

func (r *RunScreen) updateComplete(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "n":
		r.controller.GoToNextScenario(r.visible)
		if r.controller.Phase() == scenario.PhaseInProgress {
			r.toast.Visible = false
			r.syncOptions()
			return r, nil
		}
		// end of the filtered list
		return r, func() tea.Msg { return router.PopScreenMsg{} }

	case "esc", "q", "enter":
		r.controller.Exit()
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return r, nil
}

func (r *RunScreen) View(width, height int) string {
	sc := r.controller.Active()
	if sc == nil {
		return ""
	}

	if r.controller.Phase() == scenario.PhaseComplete {
		return r.viewComplete(sc, width)
	}

	step := r.controller.CurrentStep()
	if step == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Step %d of %d", r.controller.StepIndex()+1, len(sc.Steps))))
	b.WriteString("\n\n")

	situation := theme.Card.Width(width - 8).Render(step.Situation)
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(situation))
	b.WriteString("\n\n")

	b.WriteString("  " + theme.Body.Bold(true).Render(step.Question))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(r.options.View()))

	if r.controller.FeedbackVisible() {
		b.WriteString("\n")
		b.WriteString(r.renderFeedback(step, width))
	}

	if r.toast.Visible {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(r.toast.View(width)))
	}

	return b.String()
}

// renderFeedback shows the chosen option's feedback text and code reference
// after submission.
func (r *RunScreen) renderFeedback(step *catalog.Step, width int) string {
	result := r.controller.LastResult()
	if result == nil {
		return ""
	}

	chosen := step.Option(result.SelectedOptionID)

	var lines []string
	if result.Correct {
		lines = append(lines, theme.Correct.Render("✓ Correct"))
	} else {
		lines = append(lines, theme.Incorrect.Render("✗ Unsafe choice"))
	}
	if chosen != nil && chosen.Feedback != "" {
		lines = append(lines, theme.Body.Render(chosen.Feedback))
	}
	if right := step.CorrectOption(); right != nil && right.Reference != "" {
		lines = append(lines, theme.Hint.Render("Reference: "+right.Reference))
	}

	box := theme.Card.Width(width - 8).Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().PaddingLeft(2).Render(box)
}

func (r *RunScreen) viewComplete(sc *catalog.Scenario, width int) string {
	results := r.controller.Results()
	correct := 0
	for _, res := range results {
		if res.Correct {
			correct++
		}
	}
	total := len(sc.Steps)
	store := r.controller.Store()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("SCENARIO COMPLETE"))
	b.WriteString("\n\n")

	score := fmt.Sprintf("%d%%", progress.ScorePercent(correct, total))
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).Bold(true).Render(score))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%d of %d steps correct", correct, total)))
	b.WriteString("\n\n")

	var steps []string
	for i, res := range results {
		mark := theme.Correct.Render("✓")
		if !res.Correct {
			mark = theme.Incorrect.Render("✗")
		}
		steps = append(steps, fmt.Sprintf("%s Step %d", mark, i+1))
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Render(strings.Join(steps, "   ")))
	b.WriteString("\n\n")

	streak := fmt.Sprintf("⚡ %d day streak", store.CurrentStreak)
	if store.CurrentStreak >= store.BestStreak && store.BestStreak > 0 {
		streak += "  ·  personal best"
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.Accent).Render(streak))

	if sc.RealWorldCase != "" {
		b.WriteString("\n\n")
		box := theme.Card.Width(width - 12).Render(
			theme.Hint.Render("Real-world case: ") + sc.RealWorldCase)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, box))
	}

	return b.String()
}
