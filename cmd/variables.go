package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/coopcost/internal/cli"
	"github.com/theirongolddev/coopcost/internal/model"

	"github.com/spf13/cobra"
)

var variablesCmd = &cobra.Command{
	Use:   "variables",
	Short: "List the adjustable variables and their settings",
	RunE:  runVariables,
}

func init() {
	rootCmd.AddCommand(variablesCmd)
}

func runVariables(_ *cobra.Command, _ []string) error {
	vars := loadSource().Variables()
	held, err := heldValues(vars)
	if err != nil {
		return err
	}
	vals, err := vars.Resolve(held)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(vars))
	for _, v := range vars {
		rows = append(rows, []string{
			v.Name,
			v.Display(),
			describeDomain(v),
			cli.FormatSetting(v, v.Default),
			cli.FormatSetting(v, vals[v.Name]),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Variables",
		Headers: []string{"Name", "Display", "Domain", "Default", "Current"},
		Rows:    rows,
	}))
	fmt.Println()
	fmt.Println(cli.RenderMuted("  Change one with --set name=value"))
	fmt.Println()
	return nil
}

func describeDomain(v model.Variable) string {
	switch d := v.Domain.(type) {
	case model.Range:
		return fmt.Sprintf("%s..%s step %s",
			cli.FormatValue(v.Format, model.Num(d.Start)),
			cli.FormatValue(v.Format, model.Num(d.Stop)),
			cli.FormatValue(v.Format, model.Num(d.Step)))
	case model.Choices:
		return strings.Join(d.Labels(), " | ")
	}
	return ""
}
