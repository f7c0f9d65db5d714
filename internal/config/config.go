// Package config provides configuration loading for the application.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/joselucas77/poupix/internal/common"
)

// Config holds the settings the dashboard starts with. Page size and
// gesture thresholds are fixed behavior, not configuration.
type Config struct {
	Theme     string
	LogLevel  string
	LogFormat string
	LogFile   string
	Salary    float64
	Empty     bool
}

// Dir returns the directory searched for config.yaml.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, "poupix")
}

// SetDefaults registers the default values on the global viper instance.
func SetDefaults() {
	viper.SetDefault("theme", "default")
	viper.SetDefault("salary.initial", 1518.98)
	viper.SetDefault("logging.level", "warn")
	viper.SetDefault("logging.format", "console")
	viper.SetDefault("logging.file", "")
}

// FromViper reads the effective configuration after flags, environment,
// and the config file have been merged.
func FromViper() (Config, error) {
	cfg := Config{
		Theme:     viper.GetString("theme"),
		LogLevel:  viper.GetString("logging.level"),
		LogFormat: viper.GetString("logging.format"),
		LogFile:   viper.GetString("logging.file"),
		Salary:    viper.GetFloat64("salary.initial"),
		Empty:     viper.GetBool("empty"),
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("%w: log level %q", common.ErrInvalidConfig, cfg.LogLevel)
	}

	switch cfg.LogFormat {
	case "console", "json":
	default:
		return Config{}, fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, cfg.LogFormat)
	}

	if cfg.Salary <= 0 {
		return Config{}, fmt.Errorf("%w: salary.initial must be positive", common.ErrInvalidConfig)
	}

	return cfg, nil
}
