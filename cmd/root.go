package cmd

import (
	"github.com/spf13/cobra"

	"github.com/anshul/memodeck/internal/config"
	"github.com/anshul/memodeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "memodeck",
	Short: "AI-assisted flashcard study service",
	Long:  "Memodeck serves an HTTP API for flashcard decks, study sessions, and an AI tutor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides config and MEMODECK_DB)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then the loaded config, then the MEMODECK_DB / XDG default.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg != nil {
		return cfg.DBPath()
	}
	return store.DefaultDBPath()
}
