package run

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/tsamuels/livewire/internal/catalog"
	"github.com/tsamuels/livewire/internal/notify"
	"github.com/tsamuels/livewire/internal/progress"
	"github.com/tsamuels/livewire/internal/router"
	"github.com/tsamuels/livewire/internal/scenario"
	"github.com/tsamuels/livewire/internal/storage"
)

func testScenario(id string, steps int) catalog.Scenario {
	sc := catalog.Scenario{
		ID:         id,
		Title:      "Test " + id,
		Category:   catalog.CategoryLockoutTagout,
		Difficulty: catalog.DifficultyApprentice,
	}
	for i := 0; i < steps; i++ {
		sc.Steps = append(sc.Steps, catalog.Step{
			ID:        "s" + string(rune('1'+i)),
			Situation: "A de-energized panel.",
			Question:  "What do you do first?",
			Options: []catalog.Option{
				{ID: "A", Text: "Verify zero energy", Correct: true, Feedback: "Always test before touch."},
				{ID: "B", Text: "Start working"},
			},
		})
	}
	return sc
}

func newTestRun(t *testing.T, scenarios ...catalog.Scenario) *RunScreen {
	t.Helper()
	events := &notify.Queue{}
	ctrl := scenario.New(progress.NewStore(), &storage.MemorySlot{}, events)
	return New(ctrl, events, scenarios[0], scenarios)
}

func enter() tea.KeyPressMsg  { return tea.KeyPressMsg{Code: tea.KeyEnter} }
func escape() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEscape} }
func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestStartBeginsSession(t *testing.T) {
	r := newTestRun(t, testScenario("sc-1", 2))

	if r.controller.Phase() != scenario.PhaseInProgress {
		t.Fatalf("phase = %v, want in progress", r.controller.Phase())
	}
	if got := len(r.options.Options); got != 2 {
		t.Fatalf("option list has %d options, want 2", got)
	}
}

func TestSubmitLocksOptionsAndShowsFeedback(t *testing.T) {
	r := newTestRun(t, testScenario("sc-1", 2))

	r.Update(enter())

	if !r.controller.FeedbackVisible() {
		t.Fatal("feedback should be visible after submit")
	}
	if !r.options.Locked {
		t.Fatal("options should lock after submit")
	}
	if !r.toast.Visible {
		t.Fatal("toast should show after submit")
	}
	if r.toast.Event.Kind != notify.KindCorrect {
		t.Fatalf("toast kind = %v, want correct", r.toast.Event.Kind)
	}
}

func TestWrongAnswerShowsIncorrectToast(t *testing.T) {
	r := newTestRun(t, testScenario("sc-1", 1))

	r.Update(keyPress('j')) // cursor to option B
	r.Update(enter())

	if r.toast.Event.Kind != notify.KindIncorrect {
		t.Fatalf("toast kind = %v, want incorrect", r.toast.Event.Kind)
	}
	if !strings.Contains(r.toast.Event.Description, "Verify zero energy") {
		t.Errorf("incorrect toast should name the safe choice, got %q", r.toast.Event.Description)
	}
}

func TestAdvanceMovesToNextStep(t *testing.T) {
	r := newTestRun(t, testScenario("sc-1", 2))

	r.Update(enter()) // submit
	r.Update(enter()) // advance

	if got := r.controller.StepIndex(); got != 1 {
		t.Fatalf("step index = %d, want 1", got)
	}
	if r.options.Locked {
		t.Error("options should unlock on the next step")
	}
}

func TestLastStepAdvanceCompletes(t *testing.T) {
	r := newTestRun(t, testScenario("sc-1", 1))

	r.Update(enter()) // submit
	r.Update(enter()) // advance → finalize

	if r.controller.Phase() != scenario.PhaseComplete {
		t.Fatalf("phase = %v, want complete", r.controller.Phase())
	}

	view := r.View(100, 40)
	if !strings.Contains(view, "SCENARIO COMPLETE") {
		t.Error("completion view should render the banner")
	}
	if !strings.Contains(view, "100%") {
		t.Errorf("completion view should show the score, got:\n%s", view)
	}
}

func TestNextContinuesWithinVisibleList(t *testing.T) {
	first := testScenario("sc-1", 1)
	second := testScenario("sc-2", 1)
	r := newTestRun(t, first, second)

	r.Update(enter())
	r.Update(enter())
	r.Update(keyPress('n'))

	if r.controller.Phase() != scenario.PhaseInProgress {
		t.Fatalf("phase = %v, want in progress on next scenario", r.controller.Phase())
	}
	if got := r.controller.Active().ID; got != "sc-2" {
		t.Fatalf("active scenario = %s, want sc-2", got)
	}
}

func TestNextOnLastScenarioPops(t *testing.T) {
	r := newTestRun(t, testScenario("sc-1", 1))

	r.Update(enter())
	r.Update(enter())
	_, cmd := r.Update(keyPress('n'))

	if cmd == nil {
		t.Fatal("expected a pop command at end of list")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
	if r.controller.Phase() != scenario.PhaseIdle {
		t.Errorf("phase = %v, want idle after exiting", r.controller.Phase())
	}
}

func TestEscapeExitsMidSession(t *testing.T) {
	r := newTestRun(t, testScenario("sc-1", 2))

	_, cmd := r.Update(escape())

	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
	if r.controller.Phase() != scenario.PhaseIdle {
		t.Errorf("phase = %v, want idle after quitting", r.controller.Phase())
	}
}

func TestToastExpiryIgnoresStaleSequence(t *testing.T) {
	r := newTestRun(t, testScenario("sc-1", 2))

	r.Update(enter()) // toast seq 1
	r.Update(enter()) // advance
	r.Update(enter()) // submit step 2, toast seq 2

	r.Update(toastExpiredMsg{seq: 1})
	if !r.toast.Visible {
		t.Fatal("stale expiry must not hide the current toast")
	}

	r.Update(toastExpiredMsg{seq: 2})
	if r.toast.Visible {
		t.Fatal("matching expiry should hide the toast")
	}
}
