package cmd

import (
	"fmt"

	"github.com/theirongolddev/coopcost/internal/chart"
	"github.com/theirongolddev/coopcost/internal/cli"
	"github.com/theirongolddev/coopcost/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Whole-house monthly cost by category",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	src := loadSource()
	vars := src.Variables()

	held, err := heldValues(vars)
	if err != nil {
		return err
	}
	vals, err := vars.Resolve(held)
	if err != nil {
		return err
	}
	costs, err := pipeline.Summarize(src.Monthly, vars, vals)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("MONTHLY COST"))
	for _, line := range chart.Subtitle(appCfg.Chart.Subtitle, vars, vals) {
		fmt.Println(cli.RenderMuted("  " + line))
	}
	fmt.Println()

	total := costs.Total()
	rows := make([][]string, 0, len(costs)+2)
	for _, c := range costs {
		share := 0.0
		if total > 0 {
			share = c.Value / total
		}
		rows = append(rows, []string{c.Category, cli.FormatCost(c.Value), cli.FormatPercent(share)})
	}
	rows = append(rows, []string{"---"}, []string{"Total", cli.FormatCost(total), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Monthly", "Share"},
		Rows:    rows,
	}))

	maxCost, labelW := 0.0, 0
	for _, c := range costs {
		maxCost = max(maxCost, c.Value)
		labelW = max(labelW, len(c.Category))
	}
	fmt.Println()
	for _, c := range costs {
		fmt.Println(cli.RenderHorizontalBar(fmt.Sprintf("%-*s", labelW, c.Category), c.Value, maxCost, 30))
	}
	fmt.Println()
	return nil
}
