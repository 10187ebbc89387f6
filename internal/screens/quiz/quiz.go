package quiz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tsamuels/livewire/internal/catalog"
	"github.com/tsamuels/livewire/internal/config"
	"github.com/tsamuels/livewire/internal/questionbank"
	"github.com/tsamuels/livewire/internal/router"
	"github.com/tsamuels/livewire/internal/screen"
	"github.com/tsamuels/livewire/internal/ui/layout"
	"github.com/tsamuels/livewire/internal/ui/theme"
)

// QuizScreen runs a rapid-fire drill sampled from the question bank.
// Drills are throwaway practice: nothing here touches persisted progress.
type QuizScreen struct {
	questions []questionbank.Question
	index     int
	cursor    int
	answered  bool
	chosen    int
	correct   int
	finished  bool
	errMsg    string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen with questions sampled per the config's filters
// and drill size.
func New(cfg config.Config) *QuizScreen {
	s := &QuizScreen{}

	all, err := questionbank.Load()
	if err != nil {
		s.errMsg = err.Error()
		return s
	}

	filtered := questionbank.Filter(all,
		catalog.Category(cfg.Filters.Category),
		catalog.Difficulty(cfg.Filters.Difficulty))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	s.questions = questionbank.Sample(filtered, cfg.Quiz.DrillSize, rng)

	if len(s.questions) == 0 {
		s.errMsg = "no questions match the current filters"
	}
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz Drill"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.finished || s.errMsg != "":
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case s.answered:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Quit drill"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit drill"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if kmsg.String() == "esc" || kmsg.String() == "q" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.finished || s.errMsg != "" {
		return s, nil
	}

	q := s.questions[s.index]

	switch kmsg.String() {
	case "up", "k":
		if !s.answered && s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if !s.answered && s.cursor < len(q.Choices)-1 {
			s.cursor++
		}
	case "enter":
		if !s.answered {
			s.answered = true
			s.chosen = s.cursor
			if s.chosen == q.AnswerIndex {
				s.correct++
			}
			return s, nil
		}

		if s.index+1 < len(s.questions) {
			s.index++
			s.cursor = 0
			s.answered = false
		} else {
			s.finished = true
		}
	}

	return s, nil
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nQuiz unavailable: %s", s.errMsg))
	}
	if s.finished {
		return s.viewFinished(width)
	}

	q := s.questions[s.index]

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Question %d of %d   ·   %d correct", s.index+1, len(s.questions), s.correct)))
	b.WriteString("\n\n")

	b.WriteString("  " + theme.Body.Bold(true).Render(q.Prompt))
	b.WriteString("\n\n")

	for i, choice := range q.Choices {
		prefix := "  "
		if i == s.cursor && !s.answered {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+i, choice)

		switch {
		case s.answered && i == q.AnswerIndex:
			b.WriteString("  " + theme.Correct.Render(line) + "\n")
		case s.answered && i == s.chosen:
			b.WriteString("  " + theme.Incorrect.Render(line) + "\n")
		case s.answered:
			b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n")
		case i == s.cursor:
			b.WriteString("  " + theme.Selected.Render(line) + "\n")
		default:
			b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n")
		}
	}

	if s.answered && q.Explanation != "" {
		b.WriteString("\n")
		box := theme.Card.Width(width - 8).Render(q.Explanation)
		b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(box))
	}

	return b.String()
}

func (s *QuizScreen) viewFinished(width int) string {
	total := len(s.questions)
	pct := 0
	if total > 0 {
		pct = s.correct * 100 / total
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("DRILL COMPLETE"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("%d / %d  (%d%%)", s.correct, total, pct)))
	b.WriteString("\n\n")

	verdict := "Keep drilling — safety knowledge saves lives."
	if pct >= 80 {
		verdict = "Solid. Stay sharp out there."
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).Render(verdict))

	return b.String()
}
