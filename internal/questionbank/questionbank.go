// Package questionbank holds the static quiz question bank and the pure
// filtering/sampling helpers over it. Quiz drills are session-scoped; the
// bank never touches persisted progress.
package questionbank

import (
	"embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"

	"github.com/tsamuels/livewire/internal/catalog"
)

// Question is one multiple-choice quiz question.
type Question struct {
	ID          string             `json:"id"`
	Category    catalog.Category   `json:"category"`
	Difficulty  catalog.Difficulty `json:"difficulty"`
	Prompt      string             `json:"prompt"`
	Choices     []string           `json:"choices"`
	AnswerIndex int                `json:"answerIndex"`
	Explanation string             `json:"explanation"`
}

//go:embed data/questions.json
var bankFS embed.FS

var (
	loadOnce  sync.Once
	questions []Question
	loadErr   error
)

// Load parses and caches the embedded question bank.
func Load() ([]Question, error) {
	loadOnce.Do(func() {
		questions, loadErr = loadBank()
	})
	return questions, loadErr
}

func loadBank() ([]Question, error) {
	raw, err := bankFS.ReadFile("data/questions.json")
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	var bank struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal(raw, &bank); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}

	for _, q := range bank.Questions {
		if len(q.Choices) < 2 {
			return nil, fmt.Errorf("question %q has %d choices, want >= 2", q.ID, len(q.Choices))
		}
		if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Choices) {
			return nil, fmt.Errorf("question %q answer index %d out of range", q.ID, q.AnswerIndex)
		}
	}
	return bank.Questions, nil
}

// Filter returns the questions matching both filters, preserving bank order.
// CategoryAll / DifficultyAll (or empty) match everything.
func Filter(all []Question, category catalog.Category, difficulty catalog.Difficulty) []Question {
	matchCategory := category == "" || category == catalog.CategoryAll
	matchDifficulty := difficulty == "" || difficulty == catalog.DifficultyAll

	out := make([]Question, 0, len(all))
	for _, q := range all {
		if !matchCategory && q.Category != category {
			continue
		}
		if !matchDifficulty && q.Difficulty != difficulty {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Sample returns up to n questions drawn without replacement in random
// order. The input slice is not modified.
func Sample(all []Question, n int, rng *rand.Rand) []Question {
	if n > len(all) {
		n = len(all)
	}
	if n <= 0 {
		return nil
	}

	shuffled := make([]Question, len(all))
	copy(shuffled, all)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}
