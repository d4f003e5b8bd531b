package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/theirongolddev/coopcost/internal/coop"
	"github.com/theirongolddev/coopcost/internal/model"
)

// Config holds all coopcost configuration.
type Config struct {
	General    GeneralConfig      `toml:"general"`
	Chart      ChartConfig        `toml:"chart"`
	Appearance AppearanceConfig   `toml:"appearance"`
	Server     ServerConfig       `toml:"server"`
	Rates      coop.RateOverrides `toml:"rates"`
	Values     map[string]any     `toml:"values,omitempty"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	OutDir  string `toml:"out_dir"`
	History bool   `toml:"history"`
}

// ChartConfig holds chart document display settings.
type ChartConfig struct {
	Title    string `toml:"title,omitempty"`
	Subtitle string `toml:"subtitle"`
	Width    int    `toml:"width"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ServerConfig holds HTTP service settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// DefaultSubtitle describes the held house in chart subtitles.
const DefaultSubtitle = "A {bedrooms} bedroom house for {sale_price} at {interest_rate} with {down_payment} down"

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			OutDir:  ".",
			History: true,
		},
		Chart: ChartConfig{
			Subtitle: DefaultSubtitle,
			Width:    800,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:8765",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "coopcost")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "coopcost")
}

// ConfigPath returns the full path to the config file. COOPCOST_CONFIG
// overrides the XDG location.
func ConfigPath() string {
	if p := os.Getenv("COOPCOST_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadFrom reads the config file at path, returning defaults if it doesn't
// exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// GetOutDir returns the chart output directory from env var or config, in
// that order.
func GetOutDir(cfg Config) string {
	if dir := os.Getenv("COOPCOST_OUT_DIR"); dir != "" {
		return dir
	}
	if cfg.General.OutDir == "" {
		return "."
	}
	return cfg.General.OutDir
}

// GetServerAddr returns the HTTP listen address from env var or config, in
// that order.
func GetServerAddr(cfg Config) string {
	if addr := os.Getenv("COOPCOST_ADDR"); addr != "" {
		return addr
	}
	return cfg.Server.Addr
}

// ValueOverrides converts the [values] section into settings for vars.
// Strings go through the variable's domain parser so choice labels such as
// "20%" are accepted.
func (c Config) ValueOverrides(vars model.VariableSet) (model.Values, error) {
	out := make(model.Values, len(c.Values))
	for name, raw := range c.Values {
		switch v := raw.(type) {
		case int64:
			out[name] = model.Num(float64(v))
		case float64:
			out[name] = model.Num(v)
		case string:
			parsed, err := vars.Parse(name, v)
			if err != nil {
				return nil, fmt.Errorf("config value %s: %w", name, err)
			}
			out[name] = parsed
		default:
			return nil, fmt.Errorf("config value %s: unsupported type %T", name, raw)
		}
	}
	return out, nil
}
