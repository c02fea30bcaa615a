package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, 50, cfg.ProgressEvery)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "postgres://localhost:5432/rvezy?sslmode=disable")
	t.Setenv("PROGRESS_LOG_EVERY", "10")
	t.Setenv("PRETTY_LOGS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, 10, cfg.ProgressEvery)
	assert.False(t, cfg.PrettyLogs)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsZeroCadence(t *testing.T) {
	t.Setenv("PROGRESS_LOG_EVERY", "0")

	_, err := Load()
	assert.Error(t, err)
}
