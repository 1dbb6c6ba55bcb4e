package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults", func(t *testing.T) {
		// Given: a config file that only sets the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf, err := Load(path)

		// Then: everything else has its default
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.Equal(t, 3, conf.Match.DefaultTargetScore)
		assert.Equal(t, 10, conf.Match.MaxTargetScore)
		assert.Equal(t, 24*time.Hour, conf.Session.TTL)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "storage: memory\n")
		t.Setenv("RPS_STORAGE", "redis")
		t.Setenv("RPS_DEFAULT_TARGET_SCORE", "5")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, 5, conf.Match.DefaultTargetScore)
	})

	t.Run("Rejects unknown storage", func(t *testing.T) {
		path := writeConfig(t, "storage: sqlite\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown storage")
	})

	t.Run("Session ttl has its own section", func(t *testing.T) {
		path := writeConfig(t, "storage: memory\nsession:\n  ttl: 90m\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 90*time.Minute, conf.Session.TTL)
	})

	t.Run("Rejects default above the max", func(t *testing.T) {
		path := writeConfig(t, "match:\n  default-target-score: 12\n  max-target-score: 10\n")

		_, err := Load(path)

		require.Error(t, err)
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
