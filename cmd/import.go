package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge a JSON backup into the project",
	Long:  "Top-level sections present in the backup replace the current ones; sections the backup omits are kept as they are.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, args []string) error {
	pl, st, _, err := openPipeline()
	if err != nil {
		return err
	}
	defer st.Close()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading backup: %w", err)
	}

	res, err := pl.Import(data)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if res.SaveErr != nil {
		return fmt.Errorf("import applied but not saved: %w", res.SaveErr)
	}

	fmt.Printf("  Imported %s\n", args[0])
	return nil
}
