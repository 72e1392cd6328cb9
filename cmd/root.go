package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dakia/mathquiz/internal/config"
	"github.com/dakia/mathquiz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathquiz",
	Short: "Math quiz for grades 6-9",
	Long:  "Mathquiz creates short-answer math quizzes with AI, from a photo of a worksheet, or from questions you type, and scores them on a 10-point scale.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default $XDG_CONFIG_HOME/mathquiz/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", `Path to SQLite database file, or "none" to disable history (overrides MATHQUIZ_DB)`)

	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file and environment, then applies flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	file, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(config.Options{File: file})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if f := cmd.Flags().Lookup("db"); f != nil && f.Changed {
		cfg.DBPath = f.Value.String()
		if cfg.DBPath == "" {
			cfg.DBPath = config.Disabled
		}
	}
	return cfg, nil
}

// resolveDBPath returns the configured database path, falling back to the
// default XDG location.
func resolveDBPath(cfg *config.Config) (string, error) {
	if !cfg.HistoryEnabled() {
		return "", fmt.Errorf("history is disabled")
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore loads config and opens the database for the inspection commands.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
