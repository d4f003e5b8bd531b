package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/coopcost/internal/cli"
	"github.com/theirongolddev/coopcost/internal/config"
	"github.com/theirongolddev/coopcost/internal/model"
	"github.com/theirongolddev/coopcost/internal/tui/theme"
)

// SetupValues holds the setup wizard's form state.
type SetupValues struct {
	OutDir   string
	History  bool
	Theme    string
	Subtitle string
	Settings []string // one per variable, in declaration order
}

// NewSetupValues prefills the wizard from cfg and the current settings.
func NewSetupValues(cfg config.Config, vars model.VariableSet, vals model.Values) SetupValues {
	sv := SetupValues{
		OutDir:   cfg.General.OutDir,
		History:  cfg.General.History,
		Theme:    cfg.Appearance.Theme,
		Subtitle: cfg.Chart.Subtitle,
		Settings: make([]string, len(vars)),
	}
	for i, v := range vars {
		val, ok := vals[v.Name]
		if !ok {
			val = v.Default
		}
		if c, ok := v.Domain.(model.Choices); ok {
			sv.Settings[i] = c.Label(val)
		} else {
			sv.Settings[i] = val.String()
		}
	}
	return sv
}

// Apply writes the wizard answers into cfg.
func (sv SetupValues) Apply(cfg *config.Config, vars model.VariableSet) error {
	cfg.General.OutDir = sv.OutDir
	cfg.General.History = sv.History
	cfg.Appearance.Theme = sv.Theme
	cfg.Chart.Subtitle = sv.Subtitle

	if cfg.Values == nil {
		cfg.Values = make(map[string]any, len(vars))
	}
	for i, v := range vars {
		if i >= len(sv.Settings) {
			break
		}
		val, err := parseSetting(v, sv.Settings[i])
		if err != nil {
			return err
		}
		if val.IsText() {
			cfg.Values[v.Name] = val.String()
		} else {
			cfg.Values[v.Name] = val.Float()
		}
	}
	return nil
}

func parseSetting(v model.Variable, raw string) (model.Value, error) {
	val, err := v.Domain.Parse(raw)
	if err != nil {
		return model.Value{}, fmt.Errorf("%s: %w", v.Display(), err)
	}
	if !v.Domain.Contains(val) {
		return model.Value{}, fmt.Errorf("%s: %w: %s", v.Display(), model.ErrValueOutOfDomain, raw)
	}
	return val, nil
}

// NewSetupForm builds the first-run wizard bound to sv.
func NewSetupForm(sv *SetupValues, vars model.VariableSet) *huh.Form {
	themes := make([]string, len(theme.All))
	for i, t := range theme.All {
		themes[i] = t.Name
	}

	general := huh.NewGroup(
		huh.NewInput().
			Title("Chart output directory").
			Value(&sv.OutDir),
		huh.NewConfirm().
			Title("Keep a history of generated charts?").
			Value(&sv.History),
		huh.NewSelect[string]().
			Title("Color theme").
			Options(huh.NewOptions(themes...)...).
			Value(&sv.Theme),
		huh.NewText().
			Title("Chart subtitle").
			Description("{variable} placeholders show the current setting").
			Value(&sv.Subtitle),
	).Title("General")

	fields := make([]huh.Field, 0, len(vars))
	for i, v := range vars {
		desc := fmt.Sprintf("default %s", cli.FormatSetting(v, v.Default))
		if c, ok := v.Domain.(model.Choices); ok {
			fields = append(fields, huh.NewSelect[string]().
				Title(v.Display()).
				Description(desc).
				Options(huh.NewOptions(c.Labels()...)...).
				Value(&sv.Settings[i]))
			continue
		}
		fields = append(fields, huh.NewInput().
			Title(v.Display()).
			Description(desc).
			Validate(func(s string) error {
				_, err := parseSetting(v, s)
				return err
			}).
			Value(&sv.Settings[i]))
	}

	return huh.NewForm(general, huh.NewGroup(fields...).Title("Default values"))
}
