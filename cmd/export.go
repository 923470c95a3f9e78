package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the project to a JSON backup",
	Long:  "Serializes the full project record as indented JSON. Without an argument the backup lands in the export directory under a dated filename.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	pl, st, cfg, err := openPipeline()
	if err != nil {
		return err
	}
	defer st.Close()

	data, name, err := pl.Export(time.Now())
	if err != nil {
		return err
	}

	path := name
	if len(args) == 1 {
		path = args[0]
	} else if cfg.General.ExportDir != "" {
		if err := os.MkdirAll(cfg.General.ExportDir, 0o750); err != nil {
			return fmt.Errorf("creating export dir: %w", err)
		}
		path = filepath.Join(cfg.General.ExportDir, name)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}

	fmt.Printf("  Exported to %s\n", path)
	return nil
}
