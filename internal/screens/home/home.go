package home

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
	"github.com/tsamuels/livewire/internal/screens/browse"
	"github.com/tsamuels/livewire/internal/screens/quiz"
	"github.com/tsamuels/livewire/internal/screens/stats"
	"github.com/tsamuels/livewire/internal/ui/components"
	"github.com/tsamuels/livewire/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu       components.Menu
	controller *scenario.Controller
	catalog    []catalog.Scenario
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(all []catalog.Scenario, controller *scenario.Controller, events *notify.Queue, cfg config.Config) *HomeScreen {
	items := []components.MenuItem{
		{Label: "SAFETY SCENARIOS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: browse.New(all, controller, events, cfg)}
			}
		}},
		{Label: "QUIZ DRILL", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(cfg)}
			}
		}},
		{Label: "MY PROGRESS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(all, controller.Store())}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:       components.NewMenu(items),
		controller: controller,
		catalog:    all,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	store := h.controller.Store()
	pct := progress.CompletionPercentage(store, h.catalog)

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("LIVEWIRE"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Electrical safety training for apprentices"))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("%d%% of scenarios complete   ·   best streak %d days",
		pct, store.BestStreak)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(summary))
	b.WriteString("\n\n")

	menu := h.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	return b.String()
}
