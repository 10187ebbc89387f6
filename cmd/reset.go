package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsamuels/livewire/internal/progress"
	"github.com/tsamuels/livewire/internal/storage"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all saved progress and streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)

		dbPath, err := resolveDBPath(cmd, cfg.DBPath)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}

		if !resetForce {
			fmt.Printf("This erases all progress in %s. Type 'yes' to confirm: ", dbPath)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if strings.TrimSpace(answer) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		db, err := storage.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer db.Close()

		slot := db.Slot(storage.ProgressKey)
		if err := progress.Reset(slot); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}

		fmt.Println("Progress reset.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "Skip confirmation prompt")
}
