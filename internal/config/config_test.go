package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joselucas77/poupix/internal/common"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
}

func TestFromViperDefaults(t *testing.T) {
	resetViper(t)

	cfg, err := FromViper()
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Theme)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.InDelta(t, 1518.98, cfg.Salary, 0.001)
	assert.False(t, cfg.Empty)
}

func TestFromViperOverrides(t *testing.T) {
	resetViper(t)
	viper.Set("theme", "catppuccin-mocha")
	viper.Set("salary.initial", 2600.0)
	viper.Set("empty", true)
	viper.Set("logging.level", "debug")
	viper.Set("logging.format", "json")

	cfg, err := FromViper()
	require.NoError(t, err)
	assert.Equal(t, "catppuccin-mocha", cfg.Theme)
	assert.InDelta(t, 2600.0, cfg.Salary, 0.001)
	assert.True(t, cfg.Empty)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestFromViperRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{name: "bad log level", key: "logging.level", value: "verbose"},
		{name: "bad log format", key: "logging.format", value: "xml"},
		{name: "non-positive salary", key: "salary.initial", value: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetViper(t)
			viper.Set(tt.key, tt.value)

			_, err := FromViper()
			assert.ErrorIs(t, err, common.ErrInvalidConfig)
		})
	}
}

func TestDir(t *testing.T) {
	assert.Contains(t, Dir(), "poupix")
}
