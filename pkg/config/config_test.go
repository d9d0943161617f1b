package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/rpn35/pkg/config"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Costs)
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	data := []byte("color: never\nlog_level: debug\ncosts:\n  LBL: 5\n  x2: 10\n")
	cfg, err := config.FromYAML(data)
	require.NoError(t, err)

	assert.Equal(t, config.ColorNever, cfg.Color)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, map[string]int{"LBL": 5, "x2": 10}, cfg.Costs)
}

func TestFromYAMLPartialKeepsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte("log_level: warn\n"))
	require.NoError(t, err)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestFromYAMLInvalid(t *testing.T) {
	t.Parallel()

	_, err := config.FromYAML([]byte("color: [not, a, string]\n"))
	assert.Error(t, err)

	_, err = config.FromYAML([]byte("color: sometimes\n"))
	assert.Error(t, err)

	_, err = config.FromYAML([]byte("costs:\n  x2: -1\n"))
	assert.Error(t, err)
}
