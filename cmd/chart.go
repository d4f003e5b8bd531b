package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/theirongolddev/coopcost/internal/chart"
	"github.com/theirongolddev/coopcost/internal/store"

	"github.com/spf13/cobra"
)

var flagChartOutput string

var chartCmd = &cobra.Command{
	Use:       "chart [simple|complex|summary|all]",
	Short:     "Write Vega-Lite chart documents",
	Long:      "Write chart documents to the output directory. simple is the per-resident bar chart, complex adds a line chart per variable, all writes both.",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"simple", "complex", "summary", "all"},
	RunE:      runChart,
}

func init() {
	chartCmd.Flags().StringVar(&flagChartOutput, "output", "", "Output file for a single chart, - for stdout")
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, args []string) error {
	kinds := []chart.Kind{chart.KindSimple, chart.KindComplex}
	if len(args) == 1 && args[0] != "all" {
		k, err := chart.ParseKind(args[0])
		if err != nil {
			return err
		}
		kinds = []chart.Kind{k}
	}
	if flagChartOutput != "" && len(kinds) > 1 {
		return errors.New("--output needs a single chart kind")
	}

	src := loadSource()
	held, err := heldValues(src.Variables())
	if err != nil {
		return err
	}

	for _, kind := range kinds {
		spec, stats, err := chart.Build(kind, src, chartOptions(), held)
		if err != nil {
			return err
		}

		if flagChartOutput == "-" {
			if err := chart.Write(os.Stdout, spec); err != nil {
				return err
			}
			continue
		}

		path := flagChartOutput
		if path == "" {
			path = filepath.Join(outDir(), kind.DefaultFileName())
		}
		if err := chart.WriteFile(path, spec); err != nil {
			return err
		}
		progressf("  Wrote %s (%d records)\n", path, stats.Records)

		recordRun(store.Run{
			Kind:      string(kind),
			Path:      path,
			Values:    stats.Values,
			Scenarios: stats.Scenarios,
			Records:   stats.Records,
		})
	}
	return nil
}
