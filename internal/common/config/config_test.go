package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "logger:\n  level: debug\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "file", cfg.Storage.Type)
	assert.Equal(t, "data/rentport.json", cfg.Storage.File.Path)
	assert.Equal(t, 30, cfg.Notify.LeaseExpiryDays)
	assert.Equal(t, 3, cfg.Notify.RentDueDays)
	assert.Equal(t, "rentport", cfg.Metrics.Namespace)
	assert.Equal(t, "rentport", cfg.Trace.ServiceName)
	assert.Equal(t, 1.0, cfg.Trace.SampleRatio)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadConfig_EnvPlaceholders(t *testing.T) {
	t.Setenv("TEST_STORAGE_TYPE", "redis")
	os.Unsetenv("TEST_REDIS_ADDR")

	path := writeConfig(t, `
server:
  port: ${TEST_PORT:9090}
storage:
  type: ${TEST_STORAGE_TYPE:file}
  redis:
    addr: ${TEST_REDIS_ADDR:localhost:6379}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port, "unset variable falls back to its default")
	assert.Equal(t, "redis", cfg.Storage.Type, "set variable wins over the default")
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Addr)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestResolveEnv_NoDefault(t *testing.T) {
	os.Unsetenv("TEST_UNSET_VAR")
	out := resolveEnv([]byte("value: ${TEST_UNSET_VAR}"))
	assert.Equal(t, "value: ", string(out))
}
