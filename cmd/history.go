package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/theirongolddev/coopcost/internal/cli"
	"github.com/theirongolddev/coopcost/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagHistoryLimit  int
	flagHistoryDelete string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Recently generated chart documents",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of runs to show (0 for all)")
	historyCmd.Flags().StringVar(&flagHistoryDelete, "delete", "", "Forget the run with this ID")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	h, err := store.Open(store.DefaultPath())
	if err != nil {
		return err
	}
	defer h.Close()

	if flagHistoryDelete != "" {
		if err := h.DeleteRun(flagHistoryDelete); err != nil {
			return fmt.Errorf("deleting run: %w", err)
		}
		progressf("  Deleted run %s\n", flagHistoryDelete)
		return nil
	}

	runs, err := h.RecentRuns(flagHistoryLimit)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("\n  No charts recorded yet. Run `coopcost chart` to make one.")
		return nil
	}
	count, err := h.RunCount()
	if err != nil {
		return err
	}

	vars := loadSource().Variables()
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		names := make([]string, 0, len(r.Values))
		for name := range r.Values {
			names = append(names, name)
		}
		sort.Strings(names)

		settings := make([]string, 0, len(names))
		for _, name := range names {
			val := r.Values[name]
			if v, ok := vars.Lookup(name); ok {
				settings = append(settings, fmt.Sprintf("%s=%s", name, cli.FormatSetting(v, val)))
			} else {
				settings = append(settings, fmt.Sprintf("%s=%s", name, val))
			}
		}

		rows = append(rows, []string{
			r.ID,
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			r.Kind,
			r.Path,
			cli.FormatNumber(int64(r.Records)),
			strings.Join(settings, " "),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   fmt.Sprintf("History (%d of %d)", len(runs), count),
		Headers: []string{"ID", "When", "Kind", "Path", "Records", "Values"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
