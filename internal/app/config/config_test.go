package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.toml"), []byte(body), 0o644))
	t.Chdir(dir)
	t.Setenv("CONFIG_NAME", "")
}

func TestNewConfigDefaults(t *testing.T) {
	writeConfig(t, "ServicePort = 9090\n")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.ServiceHost)
	assert.Equal(t, 9090, cfg.ServicePort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, StorePostgres, cfg.StoreBackend)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "space-fleet-img", cfg.MinioBucket)
	assert.False(t, cfg.AuthEnabled)
}

func TestNewConfigFileAndEnv(t *testing.T) {
	writeConfig(t, `
StoreBackend = "postgres"
CacheTTL = "30s"
AuthEnabled = true
JwtKey = "from-file"
`)
	t.Setenv("STORE_BACKEND", StoreMemory)
	t.Setenv("JWT_KEY", "from-env")
	t.Setenv("REDIS_ENDPOINT", "redis:6379")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.StoreBackend)
	assert.Equal(t, "from-env", cfg.JwtKey)
	assert.Equal(t, "redis:6379", cfg.RedisEndpoint)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.AuthEnabled)
}

func TestNewConfigMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := NewConfig()
	assert.Error(t, err)
}
