package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/theirongolddev/coopcost/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Adjust variables interactively and watch costs update",
	RunE:  runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(_ *cobra.Command, _ []string) error {
	src := loadSource()
	held, err := heldValues(src.Variables())
	if err != nil {
		return err
	}
	e, err := tui.New(src, held)
	if err != nil {
		return err
	}

	lipgloss.SetColorProfile(termenv.TrueColor)

	final, err := tea.NewProgram(e, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	// Echo the final settings so they can be reused on the command line.
	if ex, ok := final.(tui.Explorer); ok && !flagQuiet {
		vals := ex.Values()
		names := make([]string, 0, len(vals))
		for name := range vals {
			names = append(names, name)
		}
		sort.Strings(names)

		sets := make([]string, len(names))
		for i, name := range names {
			sets[i] = fmt.Sprintf("--set %s=%s", name, vals[name])
		}
		fmt.Println(strings.Join(sets, " "))
	}
	return nil
}
