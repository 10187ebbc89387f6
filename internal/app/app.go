package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tsamuels/livewire/internal/catalog"
	"github.com/tsamuels/livewire/internal/config"
	"github.com/tsamuels/livewire/internal/notify"
	"github.com/tsamuels/livewire/internal/router"
	"github.com/tsamuels/livewire/internal/scenario"
	"github.com/tsamuels/livewire/internal/screen"
	"github.com/tsamuels/livewire/internal/screens/home"
	"github.com/tsamuels/livewire/internal/ui/layout"
)

// Options carries the dependencies the app is built from.
type Options struct {
	Catalog    []catalog.Scenario
	Controller *scenario.Controller
	Events     *notify.Queue
	Config     config.Config
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router     *router.Router
	controller *scenario.Controller
	width      int
	height     int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Catalog, opts.Controller, opts.Events, opts.Config)
	return AppModel{
		router:     router.New(homeScreen),
		controller: opts.Controller,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Each screen owns its esc behavior (clearing a search, quitting
		// a session); only the hard quit is global.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	streak := 0
	if m.controller != nil {
		streak = m.controller.Store().CurrentStreak
	}
	header := layout.RenderHeader(title, streak, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
