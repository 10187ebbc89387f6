package browse

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/tsamuels/livewire/internal/catalog"
	"github.com/tsamuels/livewire/internal/config"
	"github.com/tsamuels/livewire/internal/notify"
	"github.com/tsamuels/livewire/internal/progress"
	"github.com/tsamuels/livewire/internal/router"
	"github.com/tsamuels/livewire/internal/scenario"
	"github.com/tsamuels/livewire/internal/storage"
)

func testCatalog() []catalog.Scenario {
	step := catalog.Step{
		ID:       "s1",
		Question: "First move?",
		Options: []catalog.Option{
			{ID: "A", Text: "Lock it out", Correct: true},
			{ID: "B", Text: "Trust the breaker"},
		},
	}
	return []catalog.Scenario{
		{ID: "loto-1", Title: "Panel Lockout", Category: catalog.CategoryLockoutTagout, Difficulty: catalog.DifficultyApprentice, Steps: []catalog.Step{step}},
		{ID: "ppe-1", Title: "Glove Selection", Category: catalog.CategoryPPE, Difficulty: catalog.DifficultyApprentice, Steps: []catalog.Step{step}},
		{ID: "loto-2", Title: "Breaker Lockout", Category: catalog.CategoryLockoutTagout, Difficulty: catalog.DifficultyMaster, Steps: []catalog.Step{step}},
	}
}

func newTestBrowse(cfg config.Config) *BrowseScreen {
	events := &notify.Queue{}
	ctrl := scenario.New(progress.NewStore(), &storage.MemorySlot{}, events)
	return New(testCatalog(), ctrl, events, cfg)
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestAllScenariosVisibleByDefault(t *testing.T) {
	b := newTestBrowse(config.Default())

	if got := len(b.visible()); got != 3 {
		t.Fatalf("visible = %d, want 3", got)
	}
}

func TestCategoryCycleFilters(t *testing.T) {
	b := newTestBrowse(config.Default())

	// categories are All + sorted distinct: All, lockout-tagout, ppe
	b.Update(keyPress('c'))
	visible := b.visible()
	if len(visible) != 2 {
		t.Fatalf("visible = %d, want 2 lockout-tagout scenarios", len(visible))
	}
	for _, sc := range visible {
		if sc.Category != catalog.CategoryLockoutTagout {
			t.Errorf("scenario %s leaked through the category filter", sc.ID)
		}
	}

	// full cycle wraps back to All
	b.Update(keyPress('c'))
	b.Update(keyPress('c'))
	if got := len(b.visible()); got != 3 {
		t.Fatalf("visible = %d after full cycle, want 3", got)
	}
}

func TestDifficultyCycleFilters(t *testing.T) {
	b := newTestBrowse(config.Default())

	b.Update(keyPress('d')) // apprentice
	if got := len(b.visible()); got != 2 {
		t.Fatalf("visible = %d, want 2 apprentice scenarios", got)
	}
}

func TestConfigSeedsFilters(t *testing.T) {
	cfg := config.Default()
	cfg.Filters.Difficulty = string(catalog.DifficultyMaster)

	b := newTestBrowse(cfg)
	visible := b.visible()
	if len(visible) != 1 || visible[0].ID != "loto-2" {
		t.Fatalf("visible = %v, want only loto-2", visible)
	}
}

func TestSearchFiltersByTitle(t *testing.T) {
	b := newTestBrowse(config.Default())

	b.Update(keyPress('/'))
	if !b.search.Active {
		t.Fatal("search should activate on /")
	}
	for _, r := range "glove" {
		b.Update(keyPress(r))
	}

	visible := b.visible()
	if len(visible) != 1 || visible[0].ID != "ppe-1" {
		t.Fatalf("visible = %v, want only ppe-1", visible)
	}

	b.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if b.search.Value() != "" {
		t.Error("escape should clear the search")
	}
	if got := len(b.visible()); got != 3 {
		t.Fatalf("visible = %d after clear, want 3", got)
	}
}

func TestEnterPushesRunScreen(t *testing.T) {
	b := newTestBrowse(config.Default())

	_, cmd := b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
}

func TestFilterChangeClampsSelection(t *testing.T) {
	b := newTestBrowse(config.Default())

	b.Update(keyPress('j'))
	b.Update(keyPress('j'))
	if b.selected != 2 {
		t.Fatalf("selected = %d, want 2", b.selected)
	}

	b.Update(keyPress('d')) // apprentice, 2 visible
	if b.selected > 1 {
		t.Fatalf("selected = %d outside the filtered list", b.selected)
	}
}
