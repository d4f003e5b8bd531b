package cmd

import (
	"fmt"

	"github.com/theirongolddev/coopcost/internal/cli"
	"github.com/theirongolddev/coopcost/internal/pipeline"

	"github.com/spf13/cobra"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep <variable>",
	Short: "Total monthly cost across one variable's range",
	Args:  cobra.ExactArgs(1),
	RunE:  runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(_ *cobra.Command, args []string) error {
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
	seq, err := pipeline.Sweep(src.Monthly, vars, args[0], vals)
	if err != nil {
		return err
	}
	v, _ := vars.Lookup(args[0])

	var totals []float64
	var rows [][]string
	for p, err := range seq {
		if err != nil {
			return err
		}
		mark := ""
		if p.Value.Equal(vals[v.Name]) {
			mark = "◀"
		}
		totals = append(totals, p.Total)
		rows = append(rows, []string{cli.FormatSetting(v, p.Value), cli.FormatCost(p.Total), mark})
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("SWEEP  %s", v.Display())))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{v.Display(), "Monthly Total", ""},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Printf("  %s\n\n", cli.RenderSparkline(totals))
	return nil
}
