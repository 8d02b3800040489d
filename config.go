package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config controls what the CLI loads and how it prints.
type Config struct {
	// CatalogPath is the catalog file (.json, .yaml/.yml or .csv).
	CatalogPath string `mapstructure:"catalog"`
	// Format is "text" or "json".
	Format string `mapstructure:"format"`
	// Limit caps the rows printed per list. 0 prints everything.
	Limit int `mapstructure:"limit"`
	// Category restricts the recipe list to one category label.
	Category string `mapstructure:"category"`
	// Verbose switches to a development logger at debug level.
	Verbose bool `mapstructure:"verbose"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		Format: "text",
		Limit:  0,
	}
}

// LoadConfig layers, lowest first: DefaultConfig, the optional config file at
// path, then PANTRY_* environment variables.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("catalog", def.CatalogPath)
	v.SetDefault("format", def.Format)
	v.SetDefault("limit", def.Limit)
	v.SetDefault("category", def.Category)
	v.SetDefault("verbose", def.Verbose)

	v.SetEnvPrefix("pantry")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Format != "text" && cfg.Format != "json" {
		return Config{}, fmt.Errorf("config: unknown format %q", cfg.Format)
	}
	if cfg.Limit < 0 {
		return Config{}, fmt.Errorf("config: negative limit %d", cfg.Limit)
	}
	return cfg, nil
}
