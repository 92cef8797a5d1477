package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	// No configs/config.yaml exists relative to the test working directory;
	// the runner must come up on defaults alone.
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.Logger.Pretty)
	assert.Equal(t, time.Duration(0), cfg.Dispatch.Timeout)
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("NOTIFY_RUNNER_LOGGER_LEVEL", "debug")
	t.Setenv("NOTIFY_RUNNER_DISPATCH_TIMEOUT", "30s")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 30*time.Second, cfg.Dispatch.Timeout)
}
