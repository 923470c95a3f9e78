package cmd

import (
	"fmt"

	"renoboard/internal/cli"
	"renoboard/internal/derive"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print a project summary to the terminal",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	pl, st, cfg, err := openPipeline()
	if err != nil {
		return err
	}
	defer st.Close()

	res := pl.Refresh()
	s := res.Sections

	fmt.Println()
	fmt.Println(cli.RenderTitle(s.Project.Facts[0].Value))
	fmt.Println()

	rows := make([][]string, 0, len(s.Dashboard.Cards)+1)
	for _, c := range s.Dashboard.Cards {
		v := c.Value
		if c.Note != "" {
			v += "  (" + c.Note + ")"
		}
		rows = append(rows, []string{c.Label, v})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Budget by category",
		Headers: []string{"Category", "Budget", "Spent", "Remaining"},
		Rows:    s.Dashboard.CategoryRows,
	}))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Subsidies",
		Headers: []string{"Name", "Issuer", "Requested", "Received", "Status"},
		Rows:    s.Subsidies.Rows,
	}))
	fmt.Printf("  Requested %s   Received %s   Pending %s\n",
		s.Subsidies.Requested, s.Subsidies.Received, s.Subsidies.Pending)

	if s.Dashboard.NextMilestone != "" {
		fmt.Printf("\n  Next milestone: %s\n", s.Dashboard.NextMilestone)
	}

	if avg, ok := derive.AverageProgress(pl.Record.WorkItems); ok {
		fmt.Printf("\n  Overall progress %s\n", cli.RenderProgressBar(int(avg), 100, 30))
	}

	if len(s.Budget.Cumulative) > 0 {
		fmt.Printf("\n  Spend to date  %s\n", cli.RenderSparkline(s.Budget.Cumulative))
	}

	if warn := cfg.Budget.WarnUtilizationPct; warn != nil && *warn > 0 {
		for _, w := range pl.Record.WorkItems {
			if u := derive.UtilizationPct(w); u >= *warn {
				fmt.Printf("\n  ⚠ %s at %s of budget (%s of %s)\n",
					w.Name, cli.FormatPercent0(u), cli.FormatEuro(w.Spent), cli.FormatEuro(w.Budget))
			}
		}
	}
	fmt.Println()

	return nil
}
