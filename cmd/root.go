package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/theirongolddev/coopcost/internal/chart"
	"github.com/theirongolddev/coopcost/internal/config"
	"github.com/theirongolddev/coopcost/internal/coop"
	"github.com/theirongolddev/coopcost/internal/model"
	"github.com/theirongolddev/coopcost/internal/store"
	"github.com/theirongolddev/coopcost/internal/tui/theme"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagSet       []string
	flagOutDir    string
	flagQuiet     bool
	flagVerbose   bool
	flagNoHistory bool
)

var (
	appCfg = config.DefaultConfig()
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:               "coopcost",
	Short:             "Housing affordability charts for co-ops and land trusts",
	Long:              "Compare what a house costs per resident as a household, a co-op and a co-op on land trust ground, and generate interactive Vega-Lite charts.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/coopcost/config.toml)")
	rootCmd.PersistentFlags().StringArrayVarP(&flagSet, "set", "s", nil, "Set a variable, name=value (repeatable)")
	rootCmd.PersistentFlags().StringVarP(&flagOutDir, "out-dir", "o", "", "Chart output directory")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Don't record generated charts")
}

// setup loads .env, configuration and logging before every command.
func setup(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	logger = newLogger(os.Stderr, flagVerbose)
	slog.SetDefault(logger)

	cfg, err := config.LoadFrom(configPath())
	if err != nil {
		return err
	}
	appCfg = cfg
	theme.SetActive(cfg.Appearance.Theme)

	logger.Debug("config loaded", "path", configPath(), "exists", fileExists(configPath()))
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.ConfigPath()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func outDir() string {
	if flagOutDir != "" {
		return flagOutDir
	}
	return config.GetOutDir(appCfg)
}

// loadSource returns the cost model with configured rates.
func loadSource() *coop.Model {
	return coop.New(appCfg.Rates)
}

// heldValues merges the [values] config section with --set flags, flags
// last. The result is not yet resolved against defaults.
func heldValues(vars model.VariableSet) (model.Values, error) {
	held, err := appCfg.ValueOverrides(vars)
	if err != nil {
		return nil, err
	}
	sets, err := parseSets(vars, flagSet)
	if err != nil {
		return nil, err
	}
	for k, v := range sets {
		held[k] = v
	}
	logger.Debug("held values", "values", held)
	return held, nil
}

func parseSets(vars model.VariableSet, sets []string) (model.Values, error) {
	out := make(model.Values, len(sets))
	for _, s := range sets {
		name, raw, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("--set %q: want name=value", s)
		}
		v, err := vars.Parse(strings.TrimSpace(name), raw)
		if err != nil {
			return nil, fmt.Errorf("--set %q: %w", s, err)
		}
		out[strings.TrimSpace(name)] = v
	}
	return out, nil
}

func chartOptions() chart.Options {
	return chart.Options{
		Title:    appCfg.Chart.Title,
		Subtitle: appCfg.Chart.Subtitle,
		Width:    appCfg.Chart.Width,
	}
}

// recordRun logs a generated chart to the history database. Failures are
// logged, never returned.
func recordRun(run store.Run) {
	if flagNoHistory || !appCfg.General.History {
		return
	}
	h, err := store.Open(store.DefaultPath())
	if err != nil {
		logger.Warn("history unavailable", "err", err)
		return
	}
	defer h.Close()

	if _, err := h.RecordRun(run); err != nil {
		logger.Warn("recording run", "err", err)
		return
	}
	logger.Debug("recorded run", "kind", run.Kind, "path", run.Path)
}

func progressf(format string, args ...any) {
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
