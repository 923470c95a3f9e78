package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe the project and reload the example data",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Skip the confirmation")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	if !flagResetYes {
		fmt.Println("  This deletes the saved project; the change log is kept.")
		fmt.Println("  Run again with --yes to confirm, or export a backup first.")
		return nil
	}

	pl, st, _, err := openPipeline()
	if err != nil {
		return err
	}
	defer st.Close()

	if _, err := pl.Reset(); err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	fmt.Println("  Project reset to defaults.")
	return nil
}
