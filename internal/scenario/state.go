package scenario

import "github.com/tsamuels/livewire/internal/catalog"

// Phase is the session lifecycle state. The tagged phase replaces nullable
// flag combinations: an idle session has no scenario, an in-progress one
// has a current step, and a complete one has a full result set.
type Phase int

const (
	PhaseIdle       Phase = iota // browsing the catalog, no session
	PhaseInProgress              // mid-scenario
	PhaseComplete                // finished, showing results
)

// StepResult records one submitted step. Appended in step order, never
// mutated, discarded when the session ends.
type StepResult struct {
	StepID           string
	SelectedOptionID string
	Correct          bool
}

// session holds the ephemeral state of one scenario attempt.
type session struct {
	phase           Phase
	active          *catalog.Scenario
	sessionID       string
	stepIndex       int
	pendingOptionID string
	feedbackVisible bool
	results         []StepResult
}

// reset returns the session to the idle shape.
func (s *session) reset() {
	*s = session{}
}

// correctCount returns the number of correct results so far.
func (s *session) correctCount() int {
	n := 0
	for _, r := range s.results {
		if r.Correct {
			n++
		}
	}
	return n
}
