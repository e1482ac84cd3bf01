package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "./does-not-exist.yaml")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.ServerPort)
	assert.Equal(t, "127.0.0.1", cfg.ServerHost)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5, cfg.DatabaseConnectRetryCount)
	assert.False(t, cfg.DatabaseDebug)
}

func TestNewEnvOverride(t *testing.T) {
	t.Setenv("CONFIG_FILE", "./does-not-exist.yaml")
	t.Setenv("LIBRARY_SERVER_PORT", "8080")
	t.Setenv("LIBRARY_DATABASE_URL", "postgres://localhost/other")
	t.Setenv("LIBRARY_REQUEST_TIMEOUT", "3s")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "postgres://localhost/other", cfg.DatabaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
}
