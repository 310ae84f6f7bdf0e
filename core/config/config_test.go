package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 8, cfg.Server.BodyLimitMB)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "catalogs", cfg.Storage.Bucket)
	assert.False(t, cfg.Storage.UseSSL)
	assert.Equal(t, "catalogs", cfg.Reconcile.SnapshotPrefix)
	assert.Equal(t, 5*time.Minute, cfg.Reconcile.CacheTTL())
	assert.Equal(t, 10, cfg.Reconcile.KeepSnapshots)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SERVER_PORT=9090\nDATABASE_DRIVER=sqlite\n"), 0o600))

	t.Setenv("RECONCILE_CACHE_TTL_SECONDS", "0")
	t.Setenv("STORAGE_USE_SSL", "true")
	// godotenv.Overload writes into the process environment
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DATABASE_DRIVER", "")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Storage.UseSSL)
	assert.Equal(t, time.Duration(0), cfg.Reconcile.CacheTTL())
}
