// Package cmd implements the coopcost CLI commands.
package cmd

import (
	"fmt"
	"sort"

	"github.com/theirongolddev/coopcost/internal/cli"
	"github.com/theirongolddev/coopcost/internal/config"
	"github.com/theirongolddev/coopcost/internal/store"

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
	cfg := appCfg

	fmt.Printf("  Config file: %s\n", configPath())
	if fileExists(configPath()) {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Output directory: %s\n", outDir())
	fmt.Printf("    History:          %v (%s)\n", cfg.General.History && !flagNoHistory, store.DefaultPath())
	fmt.Println()

	fmt.Println("  [Chart]")
	if cfg.Chart.Title != "" {
		fmt.Printf("    Title:    %s\n", cfg.Chart.Title)
	}
	fmt.Printf("    Subtitle: %s\n", cfg.Chart.Subtitle)
	fmt.Printf("    Width:    %d\n", cfg.Chart.Width)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address: %s\n", config.GetServerAddr(cfg))
	fmt.Println()

	rates := loadSource().Rates
	fmt.Println("  [Rates]")
	fmt.Printf("    Property tax:      %s/yr\n", cli.FormatPercent(rates.PropertyTax))
	fmt.Printf("    Insurance:         %s/yr\n", cli.FormatPercent(rates.Insurance))
	fmt.Printf("    Maintenance:       %s/yr\n", cli.FormatPercent(rates.Maintenance))
	fmt.Printf("    Utilities:         %s + %s per bedroom\n", cli.FormatCost(rates.UtilitiesBase), cli.FormatCost(rates.UtilitiesPerBedroom))
	fmt.Printf("    Closing costs:     %s\n", cli.FormatPercent(rates.ClosingCosts))
	fmt.Printf("    Loan term:         %d years\n", rates.LoanYears)
	fmt.Printf("    Co-op fee:         %s per member\n", cli.FormatCost(rates.CoopFeePerMember))
	fmt.Printf("    Ground lease:      %s/yr of land value\n", cli.FormatPercent(rates.GroundLease))
	fmt.Println()

	if len(cfg.Values) > 0 {
		fmt.Println("  [Values]")
		names := make([]string, 0, len(cfg.Values))
		for name := range cfg.Values {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("    %s = %v\n", name, cfg.Values[name])
		}
		fmt.Println()
	}

	fmt.Println("  Run `coopcost setup` to reconfigure.")
	return nil
}
