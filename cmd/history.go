package cmd

import (
	"fmt"

	"renoboard/internal/cli"
	"renoboard/internal/view"

	"github.com/spf13/cobra"
)

var (
	flagHistoryClear bool
	flagHistoryYes   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the change log, newest first",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the change log")
	historyCmd.Flags().BoolVarP(&flagHistoryYes, "yes", "y", false, "Skip the confirmation")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	pl, st, _, err := openPipeline()
	if err != nil {
		return err
	}
	defer st.Close()

	if flagHistoryClear {
		if !flagHistoryYes {
			fmt.Println("  This deletes the change log; the project itself is kept.")
			fmt.Println("  Run again with --yes to confirm.")
			return nil
		}
		if err := pl.Store.ClearHistory(); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		fmt.Println("  Change log cleared.")
		return nil
	}

	entries, err := pl.Store.History()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("\n  No changes recorded yet.")
		return nil
	}

	h := view.RenderHistory(entries)
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"When", "What"},
		Rows:    h.Rows,
	}))
	return nil
}
