package browse

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tsamuels/livewire/internal/catalog"
	"github.com/tsamuels/livewire/internal/config"
	"github.com/tsamuels/livewire/internal/notify"
	"github.com/tsamuels/livewire/internal/progress"
	"github.com/tsamuels/livewire/internal/router"
	"github.com/tsamuels/livewire/internal/scenario"
	"github.com/tsamuels/livewire/internal/screen"
	"github.com/tsamuels/livewire/internal/screens/run"
	"github.com/tsamuels/livewire/internal/ui/components"
	"github.com/tsamuels/livewire/internal/ui/layout"
	"github.com/tsamuels/livewire/internal/ui/theme"
)

// BrowseScreen lists the scenario catalog with category, difficulty, and
// title filters. Filters are applied to the catalog's stable order, so the
// list (and "next scenario" continuation started from it) never reshuffles.
type BrowseScreen struct {
	all        []catalog.Scenario
	controller *scenario.Controller
	events     *notify.Queue

	categories []catalog.Category
	catIdx     int
	diffIdx    int

	search   components.SearchInput
	selected int
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)

// difficulty cycle: All first, then the fixed ladder.
var difficulties = append([]catalog.Difficulty{catalog.DifficultyAll}, catalog.AllDifficulties()...)

// New creates a BrowseScreen with filters seeded from config defaults.
func New(all []catalog.Scenario, controller *scenario.Controller, events *notify.Queue, cfg config.Config) *BrowseScreen {
	b := &BrowseScreen{
		all:        all,
		controller: controller,
		events:     events,
		categories: catalog.Categories(all),
		search:     components.NewSearchInput("search titles"),
	}

	for i, c := range b.categories {
		if string(c) == cfg.Filters.Category {
			b.catIdx = i
			break
		}
	}
	for i, d := range difficulties {
		if string(d) == cfg.Filters.Difficulty {
			b.diffIdx = i
			break
		}
	}

	return b
}

func (b *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (b *BrowseScreen) Title() string {
	return "Scenarios"
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	if b.search.Active {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "c", Description: "Category"},
		{Key: "d", Description: "Difficulty"},
		{Key: "/", Description: "Search"},
		{Key: "Esc", Description: "Back"},
	}
}

// visible applies the three filters in order: category, difficulty, then
// title substring.
func (b *BrowseScreen) visible() []catalog.Scenario {
	list := catalog.Visible(b.all, difficulties[b.diffIdx], b.categories[b.catIdx])

	query := strings.ToLower(strings.TrimSpace(b.search.Value()))
	if query == "" {
		return list
	}

	filtered := make([]catalog.Scenario, 0, len(list))
	for _, sc := range list {
		if strings.Contains(strings.ToLower(sc.Title), query) {
			filtered = append(filtered, sc)
		}
	}
	return filtered
}

func (b *BrowseScreen) clampSelection(n int) {
	if b.selected >= n {
		b.selected = n - 1
	}
	if b.selected < 0 {
		b.selected = 0
	}
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	if b.search.Active {
		switch kmsg.String() {
		case "enter":
			b.search.Blur()
			b.clampSelection(len(b.visible()))
			return b, nil
		case "esc":
			b.search.Clear()
			b.clampSelection(len(b.visible()))
			return b, nil
		}
		var cmd tea.Cmd
		b.search, cmd = b.search.Update(msg)
		b.clampSelection(len(b.visible()))
		return b, cmd
	}

	switch kmsg.String() {
	case "esc":
		return b, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if b.selected > 0 {
			b.selected--
		}
	case "down", "j":
		if b.selected < len(b.visible())-1 {
			b.selected++
		}
	case "c":
		b.catIdx = (b.catIdx + 1) % len(b.categories)
		b.clampSelection(len(b.visible()))
	case "d":
		b.diffIdx = (b.diffIdx + 1) % len(difficulties)
		b.clampSelection(len(b.visible()))
	case "/":
		return b, b.search.Focus()
	case "enter":
		visible := b.visible()
		if b.selected < len(visible) {
			sc := visible[b.selected]
			return b, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: run.New(b.controller, b.events, sc, visible),
				}
			}
		}
	}

	return b, nil
}

func (b *BrowseScreen) View(width, height int) string {
	visible := b.visible()
	store := b.controller.Store()

	var sb strings.Builder
	sb.WriteString("\n")

	filterLine := fmt.Sprintf("  Category: %s   Difficulty: %s",
		theme.Selected.Render(catalog.CategoryDisplayName(b.categories[b.catIdx])),
		theme.Selected.Render(catalog.DifficultyDisplayName(difficulties[b.diffIdx])))
	sb.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(filterLine))
	sb.WriteString("\n")

	if b.search.Active || b.search.Value() != "" {
		sb.WriteString("  " + b.search.View() + "\n")
	}
	sb.WriteString("\n")

	if len(visible) == 0 {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).Italic(true).
			Render("  No scenarios match the current filters."))
		return sb.String()
	}

	for i, sc := range visible {
		mark := "  "
		score := ""
		if rec, ok := store.Completed[sc.ID]; ok {
			mark = theme.Correct.Render("✓ ")
			score = lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("  %d%%", rec.Score))
		}

		meta := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("  [%s · %s]",
				catalog.CategoryDisplayName(sc.Category),
				catalog.DifficultyDisplayName(sc.Difficulty)))

		line := mark + sc.Title + meta + score
		if i == b.selected {
			sb.WriteString("  " + theme.Selected.Render("▸ ") + line + "\n")
		} else {
			sb.WriteString("    " + line + "\n")
		}
	}

	sb.WriteString("\n")
	pct := progress.CompletionPercentage(store, b.all)
	sb.WriteString("  " + components.NewProgressBar("Completed", float64(pct)/100, true, 40).View())

	return sb.String()
}
