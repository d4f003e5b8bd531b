package cmd

import (
	"fmt"

	"github.com/theirongolddev/coopcost/internal/cli"
	"github.com/theirongolddev/coopcost/internal/model"
	"github.com/theirongolddev/coopcost/internal/pipeline"

	"github.com/spf13/cobra"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Per-resident cost, residents and investment by scenario",
	RunE:  runScenarios,
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}

func runScenarios(_ *cobra.Command, _ []string) error {
	src := loadSource()
	vars := src.Variables()

	held, err := heldValues(vars)
	if err != nil {
		return err
	}
	recs, err := pipeline.AggregateWith(src.Scenarios, vars, held)
	if err != nil {
		return err
	}

	residents := make(model.Amounts, 0, len(recs.ScenarioOrder))
	upfront := make(model.Amounts, 0, len(recs.ScenarioOrder))
	for _, name := range recs.ScenarioOrder {
		residents = append(residents, model.Amount{Category: name})
		upfront = append(upfront, model.Amount{Category: name})
	}
	for _, r := range recs.Residents {
		v, _ := residents.Get(r.Scenario)
		residents.Set(r.Scenario, v+r.Count)
	}
	for _, r := range recs.Upfront {
		v, _ := upfront.Get(r.Scenario)
		upfront.Set(r.Scenario, v+r.Cost)
	}
	totals := recs.ScenarioTotals()

	fmt.Println()
	fmt.Println(cli.RenderTitle("SCENARIOS"))
	fmt.Println()

	rows := make([][]string, 0, len(recs.ScenarioOrder))
	for _, name := range recs.ScenarioOrder {
		monthly, _ := totals.Get(name)
		people, _ := residents.Get(name)
		invest, _ := upfront.Get(name)
		rows = append(rows, []string{
			name,
			cli.FormatValue(model.FormatCount, model.Num(people)),
			cli.FormatCost(monthly),
			cli.FormatCost(invest),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Scenario", "Residents", "Monthly/Resident", "Investment"},
		Rows:    rows,
	}))

	// Category breakdown, one column per scenario.
	var categories []string
	seen := map[string]bool{}
	perResident := map[string]model.Amounts{}
	for _, r := range recs.MonthlyPerResident {
		if !seen[r.Category] {
			seen[r.Category] = true
			categories = append(categories, r.Category)
		}
		a := perResident[r.Scenario]
		a.Set(r.Category, r.Cost)
		perResident[r.Scenario] = a
	}

	headers := append([]string{"Per Resident"}, recs.ScenarioOrder...)
	breakdown := make([][]string, 0, len(categories))
	for _, c := range categories {
		row := []string{c}
		for _, name := range recs.ScenarioOrder {
			if v, ok := perResident[name].Get(c); ok {
				row = append(row, cli.FormatCost(v))
			} else {
				row = append(row, "-")
			}
		}
		breakdown = append(breakdown, row)
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{Headers: headers, Rows: breakdown}))
	fmt.Println()
	return nil
}
