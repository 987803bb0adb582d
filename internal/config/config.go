// Package config loads shelfhelp settings from an explicit config file.
// Nothing is read from the environment and nothing is written back.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/tayloree/shelfhelp/internal/catalog"
	"github.com/tayloree/shelfhelp/internal/logging"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all configuration for the CLI.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Export    ExportConfig    `mapstructure:"export"`
	Assistant AssistantConfig `mapstructure:"assistant"`

	compoundsSet bool
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CatalogConfig overrides the built-in product table.
type CatalogConfig struct {
	Products  []catalog.Entry `mapstructure:"products"`
	Compounds []string        `mapstructure:"compounds"`
}

// ExportConfig holds export settings.
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// AssistantConfig tunes reply generation.
type AssistantConfig struct {
	HintLimit int `mapstructure:"hint_limit"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:       LogConfig{Level: "warn", Format: "console"},
		Export:    ExportConfig{Dir: "."},
		Assistant: AssistantConfig{HintLimit: 3},
	}
}

// Load reads path (yaml, json or toml, chosen by extension) on top of the
// defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.compoundsSet = v.IsSet("catalog.compounds")
	if cfg.compoundsSet && cfg.Catalog.Compounds == nil {
		cfg.Catalog.Compounds = []string{}
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("export.dir", d.Export.Dir)
	v.SetDefault("assistant.hint_limit", d.Assistant.HintLimit)
}

func validate(cfg *Config) error {
	if !logging.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, cfg.Log.Level)
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Log.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log format must be 'console' or 'json', got %q", ErrInvalid, cfg.Log.Format)
	}
	if cfg.Assistant.HintLimit < 0 {
		return fmt.Errorf("%w: assistant.hint_limit must not be negative", ErrInvalid)
	}
	if _, err := cfg.BuildCatalog(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// BuildCatalog returns the built-in catalog unless products or compounds
// were overridden. A custom product list without compounds uses its own
// multi-word names as compounds.
func (c *Config) BuildCatalog() (*catalog.Catalog, error) {
	switch {
	case len(c.Catalog.Products) == 0 && !c.compoundsSet:
		return catalog.Default(), nil
	case len(c.Catalog.Products) == 0:
		return catalog.New(catalog.DefaultEntries(), c.Catalog.Compounds)
	case c.compoundsSet:
		return catalog.New(c.Catalog.Products, c.Catalog.Compounds)
	default:
		return catalog.New(c.Catalog.Products, nil)
	}
}
