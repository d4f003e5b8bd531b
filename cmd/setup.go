package cmd

import (
	"fmt"

	"github.com/theirongolddev/coopcost/internal/config"
	"github.com/theirongolddev/coopcost/internal/tui"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg := appCfg
	vars := loadSource().Variables()

	held, err := heldValues(vars)
	if err != nil {
		return err
	}
	vals, err := vars.Resolve(held)
	if err != nil {
		return err
	}

	sv := tui.NewSetupValues(cfg, vars, vals)
	if err := tui.NewSetupForm(&sv, vars).Run(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}
	if err := sv.Apply(&cfg, vars); err != nil {
		return err
	}

	path := configPath()
	if err := config.SaveTo(path, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", path)
	fmt.Println("  Run `coopcost setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
