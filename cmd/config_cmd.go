package cmd

import (
	"fmt"

	"renoboard/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", config.DataDir(cfg))
	fmt.Printf("    Database:       %s\n", config.DBPath(cfg))
	if cfg.General.ExportDir != "" {
		fmt.Printf("    Export dir:     %s\n", cfg.General.ExportDir)
	} else {
		fmt.Println("    Export dir:     current directory")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Budget]")
	if cfg.Budget.WarnUtilizationPct != nil {
		fmt.Printf("    Warn at: %.0f%% of a work item budget\n", *cfg.Budget.WarnUtilizationPct)
	} else {
		fmt.Println("    Warn at: not set")
	}

	return nil
}
