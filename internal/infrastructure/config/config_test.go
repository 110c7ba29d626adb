package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "pos", cfg.App.Name)
	assert.Empty(t, cfg.Storage.DataDir)
	assert.Equal(t, 5*time.Second, cfg.Storage.BusyTimeout)
	assert.Equal(t, 1, cfg.Storage.MaxOpenConns)
	assert.True(t, cfg.Storage.AllowNegativeStock)
	assert.Equal(t, 200*time.Millisecond, cfg.Storage.SlowQueryThreshold)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stdout", cfg.Log.Output)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("POS_STORAGE_DATA_DIR", "/var/lib/pos")
	t.Setenv("POS_STORAGE_ALLOW_NEGATIVE_STOCK", "false")
	t.Setenv("POS_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/pos", cfg.Storage.DataDir)
	assert.False(t, cfg.Storage.AllowNegativeStock)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("empty app name", func(t *testing.T) {
		t.Setenv("POS_APP_NAME", "   ")
		_, err := Load()
		assert.ErrorContains(t, err, "app.name")
	})

	t.Run("non-positive busy timeout", func(t *testing.T) {
		t.Setenv("POS_STORAGE_BUSY_TIMEOUT", "0s")
		_, err := Load()
		assert.ErrorContains(t, err, "busy_timeout")
	})

	t.Run("zero connections", func(t *testing.T) {
		t.Setenv("POS_STORAGE_MAX_OPEN_CONNS", "0")
		_, err := Load()
		assert.ErrorContains(t, err, "max_open_conns")
	})
}
