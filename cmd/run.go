package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsamuels/livewire/internal/app"
	"github.com/tsamuels/livewire/internal/catalog"
	"github.com/tsamuels/livewire/internal/config"
	"github.com/tsamuels/livewire/internal/notify"
	"github.com/tsamuels/livewire/internal/progress"
	"github.com/tsamuels/livewire/internal/scenario"
	"github.com/tsamuels/livewire/internal/storage"
)

// runApp opens the store, loads the catalog and progress, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	cfg := loadConfig(cmd)

	scenarios, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load scenario catalog: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	slot := db.Slot(storage.ProgressKey)
	store := progress.Load(slot, time.Now())

	events := &notify.Queue{}
	controller := scenario.New(store, slot, events)

	return app.Run(app.Options{
		Catalog:    scenarios,
		Controller: controller,
		Events:     events,
		Config:     cfg,
	})
}

// loadConfig reads the YAML config, falling back to defaults. A broken
// config file is reported but never fatal.
func loadConfig(cmd *cobra.Command) config.Config {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Default()
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config %s: %v (using defaults)\n", path, err)
	}
	return cfg
}
