// Package scenario implements the session controller that walks a user
// through a multi-step safety scenario: step sequencing, answer submission
// and scoring, completion detection, and progress/streak bookkeeping
// against the persisted store.
package scenario

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tsamuels/livewire/internal/catalog"
	"github.com/tsamuels/livewire/internal/notify"
	"github.com/tsamuels/livewire/internal/progress"
	"github.com/tsamuels/livewire/internal/storage"
)

// Controller owns the single active scenario session and is the only
// mutator of the progress store. All operations are synchronous and either
// succeed or are safe no-ops.
type Controller struct {
	store    *progress.Store
	slot     storage.Slot
	notifier notify.Notifier
	now      func() time.Time

	sess session
}

// New creates a Controller over a loaded progress store and its slot.
// A nil notifier discards events.
func New(store *progress.Store, slot storage.Slot, notifier notify.Notifier) *Controller {
	if notifier == nil {
		notifier = notify.Discard
	}
	return &Controller{
		store:    store,
		slot:     slot,
		notifier: notifier,
		now:      time.Now,
	}
}

// Phase returns the session lifecycle phase.
func (c *Controller) Phase() Phase { return c.sess.phase }

// Active returns the scenario of the current session, nil when idle.
func (c *Controller) Active() *catalog.Scenario { return c.sess.active }

// SessionID returns the attempt id, empty when idle.
func (c *Controller) SessionID() string { return c.sess.sessionID }

// StepIndex returns the zero-based index of the current step.
func (c *Controller) StepIndex() int { return c.sess.stepIndex }

// CurrentStep returns the step the session is on, nil when idle.
func (c *Controller) CurrentStep() *catalog.Step {
	if c.sess.active == nil || c.sess.stepIndex >= len(c.sess.active.Steps) {
		return nil
	}
	return &c.sess.active.Steps[c.sess.stepIndex]
}

// PendingOptionID returns the selected-but-unsubmitted option id, empty if none.
func (c *Controller) PendingOptionID() string { return c.sess.pendingOptionID }

// FeedbackVisible reports whether the current step has been submitted and
// its feedback is showing.
func (c *Controller) FeedbackVisible() bool { return c.sess.feedbackVisible }

// Results returns the per-step results accumulated so far, in step order.
func (c *Controller) Results() []StepResult { return c.sess.results }

// LastResult returns the most recent step result, or nil if none.
func (c *Controller) LastResult() *StepResult {
	if len(c.sess.results) == 0 {
		return nil
	}
	return &c.sess.results[len(c.sess.results)-1]
}

// Store returns the progress store for read-only consumers (stats, catalog
// completion markers).
func (c *Controller) Store() *progress.Store { return c.store }

// Start begins a fresh session on the given scenario, silently discarding
// any in-progress session. There is no resume behavior.
func (c *Controller) Start(sc *catalog.Scenario) {
	c.sess = session{
		phase:     PhaseInProgress,
		active:    sc,
		sessionID: uuid.NewString(),
	}
}

// SelectOption records the user's pending choice for the current step.
// A no-op while feedback is showing: the answer is locked once submitted.
func (c *Controller) SelectOption(optionID string) {
	if c.sess.phase != PhaseInProgress || c.sess.feedbackVisible {
		return
	}
	c.sess.pendingOptionID = optionID
}

// SubmitStep scores the pending selection against the current step. With no
// active scenario or no selection it mutates nothing and signals the missing
// selection. An option id not on the step scores as incorrect rather than
// failing, so the session can always proceed.
func (c *Controller) SubmitStep() {
	if c.sess.phase != PhaseInProgress || c.sess.feedbackVisible {
		return
	}
	if c.sess.pendingOptionID == "" {
		c.notifier.Notify(notify.Event{
			Kind:        notify.KindNoSelection,
			Title:       "No answer selected",
			Description: "Choose an option before submitting.",
		})
		return
	}

	step := c.CurrentStep()
	if step == nil {
		return
	}

	chosen := step.Option(c.sess.pendingOptionID)
	correct := chosen != nil && chosen.Correct

	c.sess.feedbackVisible = true
	c.sess.results = append(c.sess.results, StepResult{
		StepID:           step.ID,
		SelectedOptionID: c.sess.pendingOptionID,
		Correct:          correct,
	})

	if correct {
		c.notifier.Notify(notify.Event{
			Kind:        notify.KindCorrect,
			Title:       "Correct",
			Description: chosen.Feedback,
		})
		return
	}

	desc := "That choice is unsafe."
	if right := step.CorrectOption(); right != nil {
		desc = fmt.Sprintf("The safe choice: %s", right.Text)
	}
	c.notifier.Notify(notify.Event{
		Kind:        notify.KindIncorrect,
		Title:       "Not quite",
		Description: desc,
	})
}

// AdvanceStep moves past a submitted step: to the next step, or on the last
// step to finalization (score computed, progress store updated and saved,
// completion announced). A no-op unless the current step's feedback is
// showing, which also guards double-finalization.
func (c *Controller) AdvanceStep() {
	if c.sess.phase != PhaseInProgress || !c.sess.feedbackVisible {
		return
	}

	if c.sess.stepIndex+1 < len(c.sess.active.Steps) {
		c.sess.stepIndex++
		c.sess.pendingOptionID = ""
		c.sess.feedbackVisible = false
		return
	}

	c.finalize()
}

func (c *Controller) finalize() {
	correct := c.sess.correctCount()
	total := len(c.sess.active.Steps)

	c.sess.phase = PhaseComplete

	c.store.RecordCompletion(c.sess.active.ID, c.sess.sessionID, correct, total, c.now())
	progress.Save(c.slot, c.store)

	c.notifier.Notify(notify.Event{
		Kind:  notify.KindComplete,
		Title: "Scenario complete",
		Description: fmt.Sprintf("Score %d%% — %d of %d steps correct",
			progress.ScorePercent(correct, total), correct, total),
	})
}

// Exit discards the session and returns to idle. No progress interaction.
func (c *Controller) Exit() {
	c.sess.reset()
}

// GoToNextScenario starts the successor of the active scenario within the
// given filtered, ordered list, or exits if there is none. Continuation
// never crosses outside the caller's current filter.
func (c *Controller) GoToNextScenario(visible []catalog.Scenario) {
	if c.sess.active == nil {
		c.Exit()
		return
	}
	for i := range visible {
		if visible[i].ID == c.sess.active.ID && i+1 < len(visible) {
			c.Start(&visible[i+1])
			return
		}
	}
	c.Exit()
}
