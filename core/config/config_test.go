package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "reconciliation", cfg.Storage.Bucket)
	assert.Equal(t, "exports/sales.json", cfg.Storage.SalesObject)
	assert.Equal(t, 5.0, cfg.Reconcile.HighSeverityThreshold)
	assert.Equal(t, "_", cfg.Reconcile.KeySeparator)
	assert.Equal(t, 0, cfg.Reconcile.CacheTTLSeconds)
	assert.Equal(t, "database", cfg.Reconcile.Source)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("RECONCILE_HIGH_SEVERITY_THRESHOLD", "10")
	t.Setenv("RECONCILE_SOURCE", "storage")
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 10.0, cfg.Reconcile.HighSeverityThreshold)
	assert.Equal(t, "storage", cfg.Reconcile.Source)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	// Registers cleanup so the value loaded from .env does not leak
	t.Setenv("RECONCILE_KEY_SEPARATOR", "")

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("RECONCILE_KEY_SEPARATOR=-\n"), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "-", cfg.Reconcile.KeySeparator)
}

func TestLoadConfig_InvalidSource(t *testing.T) {
	t.Setenv("RECONCILE_SOURCE", "ftp")

	cfg, err := LoadConfig(t.TempDir())
	assert.ErrorContains(t, err, "unknown reconcile source")
	assert.Nil(t, cfg)
}
