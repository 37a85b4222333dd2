package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 300*time.Millisecond, cfg.Mock.Latency)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "trip-threads-trips", cfg.Store.Key)
	assert.Equal(t, "user-1", cfg.App.CurrentUserID)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MOCK_LATENCY", "50ms")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 50*time.Millisecond, cfg.Mock.Latency)
	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoadYAMLWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "http:\n  port: \"9090\"\nstore:\n  key: custom-key\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("STORE_KEY", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "from-env", cfg.Store.Key)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "sqlite")
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadPostgresNeedsURL(t *testing.T) {
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("POSTGRES_URL", "")
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
