package scenario

import (
	"strings"
	"testing"
	"time"

	"github.com/tsamuels/livewire/internal/catalog"
	"github.com/tsamuels/livewire/internal/notify"
	"github.com/tsamuels/livewire/internal/progress"
	"github.com/tsamuels/livewire/internal/storage"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// twoStepScenario mirrors the shape of real catalog content: step 1's
// correct option is C, step 2's is B.
func twoStepScenario() *catalog.Scenario {
	return &catalog.Scenario{
		ID:    "sc-1",
		Title: "Test scenario",
		Steps: []catalog.Step{
			{
				ID: "st-1", Situation: "sit", Question: "q1",
				Options: []catalog.Option{
					{ID: "A", Text: "wrong a", Feedback: "fa"},
					{ID: "B", Text: "wrong b", Feedback: "fb"},
					{ID: "C", Text: "right c", Correct: true, Feedback: "fc"},
				},
			},
			{
				ID: "st-2", Situation: "sit", Question: "q2",
				Options: []catalog.Option{
					{ID: "A", Text: "wrong a", Feedback: "fa"},
					{ID: "B", Text: "right b", Correct: true, Feedback: "fb"},
				},
			},
		},
	}
}

func newTestController(t *testing.T) (*Controller, *storage.MemorySlot, *notify.Recorder) {
	t.Helper()
	slot := &storage.MemorySlot{}
	rec := &notify.Recorder{}
	c := New(progress.Load(slot, testNow), slot, rec)
	c.now = func() time.Time { return testNow }
	return c, slot, rec
}

// completeScenario drives a started session to completion, answering every
// step with the given option ids.
func completeScenario(t *testing.T, c *Controller, answers ...string) {
	t.Helper()
	for _, id := range answers {
		c.SelectOption(id)
		c.SubmitStep()
		c.AdvanceStep()
	}
}

func TestStartResetsSession(t *testing.T) {
	c, _, _ := newTestController(t)
	sc := twoStepScenario()

	c.Start(sc)

	if c.Phase() != PhaseInProgress {
		t.Fatalf("Phase = %v, want PhaseInProgress", c.Phase())
	}
	if c.StepIndex() != 0 || c.PendingOptionID() != "" || c.FeedbackVisible() || len(c.Results()) != 0 {
		t.Errorf("fresh session not zeroed: idx=%d pending=%q feedback=%v results=%d",
			c.StepIndex(), c.PendingOptionID(), c.FeedbackVisible(), len(c.Results()))
	}
	if c.SessionID() == "" {
		t.Error("fresh session has no attempt id")
	}

	// Starting again mid-scenario discards the first attempt.
	c.SelectOption("C")
	c.SubmitStep()
	first := c.SessionID()
	c.Start(sc)
	if len(c.Results()) != 0 {
		t.Error("restart kept prior results")
	}
	if c.SessionID() == first {
		t.Error("restart reused the attempt id")
	}
}

func TestSelectionLockedDuringFeedback(t *testing.T) {
	c, _, _ := newTestController(t)
	c.Start(twoStepScenario())

	c.SelectOption("C")
	c.SubmitStep()
	if !c.FeedbackVisible() {
		t.Fatal("feedback not visible after submit")
	}

	c.SelectOption("A")
	if got := c.PendingOptionID(); got != "C" {
		t.Errorf("selection changed during feedback: %q", got)
	}
}

func TestSelectOptionIdleIsNoop(t *testing.T) {
	c, _, _ := newTestController(t)
	c.SelectOption("A")
	if c.PendingOptionID() != "" {
		t.Error("idle controller recorded a selection")
	}
}

func TestSubmitWithoutSelection(t *testing.T) {
	c, _, rec := newTestController(t)
	c.Start(twoStepScenario())

	c.SubmitStep()

	if c.FeedbackVisible() || len(c.Results()) != 0 {
		t.Error("submit without selection mutated session state")
	}
	if got := rec.Last().Kind; got != notify.KindNoSelection {
		t.Errorf("notification kind = %v, want KindNoSelection", got)
	}
}

func TestSubmitCorrectAndIncorrectNotifications(t *testing.T) {
	c, _, rec := newTestController(t)
	c.Start(twoStepScenario())

	c.SelectOption("C")
	c.SubmitStep()
	if got := rec.Last(); got.Kind != notify.KindCorrect {
		t.Errorf("correct submit notification = %+v", got)
	}

	c.AdvanceStep()
	c.SelectOption("A")
	c.SubmitStep()
	got := rec.Last()
	if got.Kind != notify.KindIncorrect {
		t.Fatalf("incorrect submit notification = %+v", got)
	}
	// Guidance carries the text of the actually-correct option.
	if want := "right b"; !strings.Contains(got.Description, want) {
		t.Errorf("incorrect feedback %q does not carry correct option text %q", got.Description, want)
	}
}

func TestDoubleSubmitAppendsNothing(t *testing.T) {
	c, _, _ := newTestController(t)
	c.Start(twoStepScenario())

	c.SelectOption("C")
	c.SubmitStep()
	c.SubmitStep()

	if len(c.Results()) != 1 {
		t.Errorf("double submit produced %d results, want 1", len(c.Results()))
	}
}

func TestUnknownOptionIDScoresIncorrect(t *testing.T) {
	c, _, rec := newTestController(t)
	c.Start(twoStepScenario())

	c.SelectOption("Z")
	c.SubmitStep()

	r := c.LastResult()
	if r == nil || r.Correct {
		t.Errorf("unknown option id result = %+v, want incorrect", r)
	}
	if rec.Last().Kind != notify.KindIncorrect {
		t.Errorf("unknown option notification = %+v", rec.Last())
	}
}

func TestFullRunStepInvariant(t *testing.T) {
	c, _, _ := newTestController(t)
	sc := twoStepScenario()
	c.Start(sc)

	for i := range sc.Steps {
		if got := len(c.Results()); got != i {
			t.Errorf("before step %d: results = %d, want %d", i, got, i)
		}
		c.SelectOption("A")
		c.SubmitStep()
		c.AdvanceStep()
	}

	if c.Phase() != PhaseComplete {
		t.Fatalf("Phase = %v, want PhaseComplete", c.Phase())
	}
	if got := len(c.Results()); got != len(sc.Steps) {
		t.Errorf("results = %d, want %d", got, len(sc.Steps))
	}
}

func TestEndToEndScoreFifty(t *testing.T) {
	// Step 1 answered correctly (C), step 2 incorrectly (A): 1/2 = 50%.
	c, slot, rec := newTestController(t)
	c.Start(twoStepScenario())

	completeScenario(t, c, "C", "A")

	if c.Phase() != PhaseComplete {
		t.Fatalf("Phase = %v, want PhaseComplete", c.Phase())
	}

	rec2 := c.Store().Completed["sc-1"]
	if rec2.Score != 50 || rec2.StepsCorrect != 1 || rec2.TotalSteps != 2 {
		t.Errorf("completion record = %+v, want score 50, 1/2 correct", rec2)
	}
	if c.Store().CurrentStreak != 1 {
		t.Errorf("first completion streak = %d, want 1", c.Store().CurrentStreak)
	}
	if got := rec.Last(); got.Kind != notify.KindComplete || !strings.Contains(got.Description, "50%") {
		t.Errorf("completion notification = %+v", got)
	}

	// The store was persisted.
	reloaded := progress.Load(slot, testNow)
	if reloaded.Completed["sc-1"].Score != 50 {
		t.Errorf("persisted record = %+v, want score 50", reloaded.Completed["sc-1"])
	}
}

func TestNoDoubleAdvancePastCompletion(t *testing.T) {
	c, _, _ := newTestController(t)
	c.Start(twoStepScenario())
	completeScenario(t, c, "C", "B")

	streak := c.Store().CurrentStreak
	recorded := c.Store().Completed["sc-1"]

	c.AdvanceStep()
	c.AdvanceStep()

	if c.Store().CurrentStreak != streak {
		t.Error("advance after completion mutated streak")
	}
	if c.Store().Completed["sc-1"] != recorded {
		t.Error("advance after completion mutated completion record")
	}
	if c.Phase() != PhaseComplete {
		t.Errorf("Phase = %v, want PhaseComplete", c.Phase())
	}
}

func TestAdvanceBeforeSubmitIsNoop(t *testing.T) {
	c, _, _ := newTestController(t)
	c.Start(twoStepScenario())

	c.AdvanceStep()

	if c.StepIndex() != 0 {
		t.Errorf("advance before submit moved to step %d", c.StepIndex())
	}
}

func TestSameDayRecompletionKeepsStreak(t *testing.T) {
	c, _, _ := newTestController(t)
	sc := twoStepScenario()

	c.Start(sc)
	completeScenario(t, c, "C", "B")
	if c.Store().CurrentStreak != 1 {
		t.Fatalf("streak after first completion = %d, want 1", c.Store().CurrentStreak)
	}

	c.Start(sc)
	completeScenario(t, c, "A", "A")

	if c.Store().CurrentStreak != 1 {
		t.Errorf("same-day re-completion moved streak to %d", c.Store().CurrentStreak)
	}
	if c.Store().Completed["sc-1"].Score != 0 {
		t.Errorf("re-completion did not overwrite record: %+v", c.Store().Completed["sc-1"])
	}
}

func TestSecondNewScenarioSameDayKeepsStreak(t *testing.T) {
	c, _, _ := newTestController(t)

	first := twoStepScenario()
	second := twoStepScenario()
	second.ID = "sc-2"

	c.Start(first)
	completeScenario(t, c, "C", "B")
	c.Start(second)
	completeScenario(t, c, "C", "B")

	if c.Store().CurrentStreak != 1 {
		t.Errorf("second new completion same day moved streak to %d, want 1", c.Store().CurrentStreak)
	}
	if len(c.Store().Completed) != 2 {
		t.Errorf("completion records = %d, want 2", len(c.Store().Completed))
	}
}

func TestFinalizeToleratesStorageFailure(t *testing.T) {
	slot := &storage.MemorySlot{FailWrites: true}
	c := New(progress.Load(slot, testNow), slot, notify.Discard)
	c.now = func() time.Time { return testNow }

	c.Start(twoStepScenario())
	completeScenario(t, c, "C", "B")

	// In-memory state is authoritative even though persistence failed.
	if c.Phase() != PhaseComplete {
		t.Errorf("Phase = %v, want PhaseComplete", c.Phase())
	}
	if c.Store().Completed["sc-1"].Score != 100 {
		t.Errorf("in-memory record = %+v, want score 100", c.Store().Completed["sc-1"])
	}
}

func TestExit(t *testing.T) {
	c, _, _ := newTestController(t)
	c.Start(twoStepScenario())
	c.SelectOption("C")
	c.SubmitStep()

	c.Exit()

	if c.Phase() != PhaseIdle || c.Active() != nil || len(c.Results()) != 0 {
		t.Errorf("exit did not reset session: phase=%v active=%v results=%d",
			c.Phase(), c.Active(), len(c.Results()))
	}
	if len(c.Store().Completed) != 0 {
		t.Error("exit touched the progress store")
	}
}

func TestGoToNextScenario(t *testing.T) {
	c, _, _ := newTestController(t)

	a := twoStepScenario()
	b := twoStepScenario()
	b.ID = "sc-2"
	visible := []catalog.Scenario{*a, *b}

	c.Start(a)
	completeScenario(t, c, "C", "B")
	c.GoToNextScenario(visible)

	if c.Phase() != PhaseInProgress || c.Active() == nil || c.Active().ID != "sc-2" {
		t.Errorf("expected fresh session on sc-2, got phase=%v active=%v", c.Phase(), c.Active())
	}

	// Last in the list: exits.
	completeScenario(t, c, "C", "B")
	c.GoToNextScenario(visible)
	if c.Phase() != PhaseIdle {
		t.Errorf("Phase = %v, want PhaseIdle after last scenario", c.Phase())
	}

	// Active scenario filtered out of the visible list: exits.
	c.Start(a)
	c.GoToNextScenario([]catalog.Scenario{*b})
	if c.Phase() != PhaseIdle {
		t.Errorf("Phase = %v, want PhaseIdle when active not in list", c.Phase())
	}
}
