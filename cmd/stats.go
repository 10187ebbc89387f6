package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsamuels/livewire/internal/catalog"
	"github.com/tsamuels/livewire/internal/progress"
	"github.com/tsamuels/livewire/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print training progress without launching the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		store := progress.Load(db.Slot(storage.ProgressKey), time.Now())

		fmt.Printf("Scenarios completed: %d of %d (%d%%)\n",
			len(store.Completed), len(scenarios),
			progress.CompletionPercentage(store, scenarios))
		fmt.Printf("Current streak:      %d days\n", store.CurrentStreak)
		fmt.Printf("Best streak:         %d days\n", store.BestStreak)
		if store.LastCompletedDate != "" {
			fmt.Printf("Last completion:     %s\n", store.LastCompletedDate)
		}

		if len(store.Completed) == 0 {
			return nil
		}

		fmt.Println()
		ids := make([]string, 0, len(store.Completed))
		for id := range store.Completed {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			rec := store.Completed[id]
			title := id
			if sc := catalog.ByID(scenarios, id); sc != nil {
				title = sc.Title
			}
			fmt.Printf("  %-40s %3d%%  %d/%d  %s\n",
				title, rec.Score, rec.StepsCorrect, rec.TotalSteps,
				rec.CompletedAt.Format("2006-01-02"))
		}
		return nil
	},
}
