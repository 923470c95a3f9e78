// Package cmd implements the renoboard CLI commands.
package cmd

import (
	"os"

	"renoboard/internal/config"
	"renoboard/internal/pipeline"
	"renoboard/internal/store"
	"renoboard/internal/tui/theme"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagTheme   string
)

var rootCmd = &cobra.Command{
	Use:   "renoboard",
	Short: "Home renovation dashboard",
	Long:  "Track a renovation project: budget, work items, materials, financing, subsidies and the site journal.",
	RunE:  runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override the project data directory")
	rootCmd.PersistentFlags().StringVarP(&flagTheme, "theme", "t", "", "Color theme (flexoki-dark, catppuccin-mocha, tokyo-night, terminal)")
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	if flagTheme != "" {
		cfg.Appearance.Theme = flagTheme
	}
	theme.SetActive(cfg.Appearance.Theme)
	return cfg, nil
}

// openPipeline is the shared startup path: config, store, record.
// The caller owns closing the returned store.
func openPipeline() (*pipeline.Pipeline, *store.Store, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, cfg, err
	}

	st, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return nil, nil, cfg, err
	}

	pl, err := pipeline.New(st)
	if err != nil {
		st.Close()
		return nil, nil, cfg, err
	}
	return pl, st, cfg, nil
}
