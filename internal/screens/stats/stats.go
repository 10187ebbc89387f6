package stats

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tsamuels/livewire/internal/catalog"
	"github.com/tsamuels/livewire/internal/progress"
	"github.com/tsamuels/livewire/internal/router"
	"github.com/tsamuels/livewire/internal/screen"
	"github.com/tsamuels/livewire/internal/ui/components"
	"github.com/tsamuels/livewire/internal/ui/layout"
	"github.com/tsamuels/livewire/internal/ui/theme"
)

// StatsScreen summarizes persisted progress: completion per scenario,
// overall completion percentage, and streaks. Read-only over the store.
type StatsScreen struct {
	all   []catalog.Scenario
	store *progress.Store
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen.
func New(all []catalog.Scenario, store *progress.Store) *StatsScreen {
	return &StatsScreen{all: all, store: store}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "My Progress"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	pct := progress.CompletionPercentage(s.store, s.all)
	b.WriteString("  " + components.NewProgressBar("Scenarios", float64(pct)/100, true, 50).View())
	b.WriteString("\n\n")

	streaks := fmt.Sprintf("  Current streak: %s    Best streak: %s",
		theme.Selected.Render(fmt.Sprintf("⚡ %d days", s.store.CurrentStreak)),
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("%d days", s.store.BestStreak)))
	b.WriteString(streaks)
	b.WriteString("\n")

	if s.store.LastCompletedDate != "" {
		b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Last completion: "+s.store.LastCompletedDate))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(s.store.Completed) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).Italic(true).
			Render("  No scenarios completed yet. Head to Safety Scenarios to start."))
		return b.String()
	}

	// Catalog order first, then any records for scenarios no longer in
	// the catalog (older content pack).
	seen := make(map[string]bool, len(s.all))
	for _, sc := range s.all {
		seen[sc.ID] = true
		rec, ok := s.store.Completed[sc.ID]
		if !ok {
			b.WriteString("    " + lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("· "+sc.Title) + "\n")
			continue
		}
		b.WriteString(fmt.Sprintf("    %s %s  %s\n",
			theme.Correct.Render("✓"),
			theme.Body.Render(sc.Title),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("%d%% · %d/%d · %s",
					rec.Score, rec.StepsCorrect, rec.TotalSteps,
					rec.CompletedAt.Format("Jan 02, 2006")))))
	}

	var orphans []string
	for id := range s.store.Completed {
		if !seen[id] {
			orphans = append(orphans, id)
		}
	}
	sort.Strings(orphans)
	for _, id := range orphans {
		rec := s.store.Completed[id]
		b.WriteString(fmt.Sprintf("    %s %s  %s\n",
			theme.Correct.Render("✓"),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(id),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("%d%% · retired scenario", rec.Score))))
	}

	return b.String()
}
