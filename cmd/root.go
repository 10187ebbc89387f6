package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tsamuels/livewire/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "livewire",
	Short: "Electrical safety trainer for apprentices",
	Long:  "Livewire — terminal safety-scenario trainer for apprentice electricians: branching job-site scenarios, code-knowledge drills, and a daily practice streak.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LIVEWIRE_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: XDG config dir)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the LIVEWIRE_DB env var, then the config file, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfgDBPath string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, storage.EnsureDir(p)
	}
	if p := os.Getenv("LIVEWIRE_DB"); p != "" {
		return p, storage.EnsureDir(p)
	}
	if cfgDBPath != "" {
		return cfgDBPath, storage.EnsureDir(cfgDBPath)
	}
	return storage.DefaultDBPath()
}
