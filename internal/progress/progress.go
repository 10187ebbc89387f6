// Package progress owns the durable record of scenario completions and the
// daily streak. The store is loaded once per run, mutated only when a
// scenario finalizes, and saved best-effort after every mutation. Storage
// failures never propagate: the in-memory store stays authoritative for the
// rest of the session.
package progress

import (
	"encoding/json"
	"math"
	"time"

	"github.com/tsamuels/livewire/internal/storage"
)

// DateLayout is the date-only form used for streak bookkeeping.
const DateLayout = "2006-01-02"

// CompletionRecord is the most recent completion of one scenario.
// Re-completions overwrite; there is no attempt history.
type CompletionRecord struct {
	CompletedAt  time.Time `json:"completedAt"`
	StepsCorrect int       `json:"stepsCorrect"`
	TotalSteps   int       `json:"totalSteps"`
	Score        int       `json:"score"` // percent, 0-100
	SessionID    string    `json:"sessionId,omitempty"`
}

// Store is the persisted progress state.
type Store struct {
	Completed         map[string]CompletionRecord `json:"completedScenarios"`
	CurrentStreak     int                         `json:"currentStreak"`
	LastCompletedDate string                      `json:"lastCompletedDate,omitempty"` // YYYY-MM-DD, empty for never
	BestStreak        int                         `json:"bestStreak"`
}

// NewStore returns the zeroed default store.
func NewStore() *Store {
	return &Store{Completed: make(map[string]CompletionRecord)}
}

// Load reads the store from the slot. Absent, unreadable, or corrupted
// values all yield the default store; Load never fails. If the last
// completion is more than one whole day in the past the current streak is
// reset in memory (the reset is persisted on the next save).
func Load(slot storage.Slot, now time.Time) *Store {
	s := NewStore()

	raw, ok, err := slot.Read()
	if err != nil || !ok {
		return s
	}
	if err := json.Unmarshal([]byte(raw), s); err != nil {
		return NewStore()
	}
	if s.Completed == nil {
		s.Completed = make(map[string]CompletionRecord)
	}

	if s.LastCompletedDate != "" {
		last, err := time.ParseInLocation(DateLayout, s.LastCompletedDate, now.Location())
		if err != nil {
			s.LastCompletedDate = ""
			s.CurrentStreak = 0
		} else if daysBetween(last, now) > 1 {
			s.CurrentStreak = 0
		}
	}

	return s
}

// Save serializes the store into the slot. Write failures are swallowed;
// persistence is best-effort by contract.
func Save(slot storage.Slot, s *Store) {
	_ = save(slot, s)
}

func save(slot storage.Slot, s *Store) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return slot.Write(string(raw))
}

// Reset overwrites the slot with a fresh, empty store. Unlike Save this
// reports failure: an unacknowledged failed reset would leave the user
// believing their data is gone.
func Reset(slot storage.Slot) error {
	return save(slot, NewStore())
}

// RecordCompletion applies one scenario completion to the store: the
// completion record is overwritten unconditionally, and the streak advances
// only on a scenario's first-ever completion on a day with no prior
// completion. The caller is responsible for saving afterwards.
func (s *Store) RecordCompletion(scenarioID, sessionID string, stepsCorrect, totalSteps int, now time.Time) {
	today := now.Format(DateLayout)

	_, seen := s.Completed[scenarioID]
	isNewCompletion := !seen
	completedAlreadyToday := s.LastCompletedDate == today

	newStreak := s.CurrentStreak
	if isNewCompletion && !completedAlreadyToday {
		yesterday := now.AddDate(0, 0, -1).Format(DateLayout)
		if s.LastCompletedDate == yesterday || s.CurrentStreak == 0 {
			newStreak = s.CurrentStreak + 1
		}
		// A gap of more than one day with a nonzero streak is left
		// unchanged here; Load's staleness reset already zeroes that
		// case before any completion can run.
	}

	s.Completed[scenarioID] = CompletionRecord{
		CompletedAt:  now,
		StepsCorrect: stepsCorrect,
		TotalSteps:   totalSteps,
		Score:        ScorePercent(stepsCorrect, totalSteps),
		SessionID:    sessionID,
	}
	s.CurrentStreak = newStreak
	s.LastCompletedDate = today
	if newStreak > s.BestStreak {
		s.BestStreak = newStreak
	}
}

// ScorePercent returns the rounded percentage of correct steps.
func ScorePercent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// daysBetween returns the number of whole calendar days from a to b,
// ignoring time-of-day. Calendar arithmetic avoids off-by-one results
// around DST boundaries that elapsed-hours division would produce.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	am0 := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bm0 := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bm0.Sub(am0) / (24 * time.Hour))
}
