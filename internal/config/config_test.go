package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads config file", func(t *testing.T) {
		// Given: a config file with a few keys set
		path := filepath.Join(t.TempDir(), "config.yml")
		content := `
log-level: debug
theme: light
publish-timeout: 500ms
redis:
  enabled: true
  host: redis.local
  port: "6380"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: file values win and the rest are defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "light", conf.Theme)
		assert.Equal(t, 500*time.Millisecond, conf.PublishTimeout)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "redis.local:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "triqui:results", conf.Redis.Channel)
		assert.Equal(t, "triqui.log", conf.LogFile)
		assert.False(t, conf.Telemetry.Enabled)
	})

	t.Run("Falls back to env when file is missing", func(t *testing.T) {
		// Given: no config file and a theme from the environment
		t.Setenv("TRIQUI_THEME", "light")
		path := filepath.Join(t.TempDir(), "missing.yml")

		// When: loading it
		conf, err := Load(path)

		// Then: env and defaults are used
		require.NoError(t, err)
		assert.Equal(t, "light", conf.Theme)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 2*time.Second, conf.PublishTimeout)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Broken file is an error", func(t *testing.T) {
		// Given: a file that is not valid yaml
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [debug"), 0o600))

		// When: loading it
		_, err := Load(path)

		// Then: an error is returned
		require.Error(t, err)
	})
}

func TestMustLoad_Panics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("log-level: [debug"), 0o600))

	assert.Panics(t, func() { MustLoad(path) })
}

func TestRedis_GetRedisAddr(t *testing.T) {
	assert.Equal(t, "cache:6379", (&Redis{Host: "cache", Port: "6379"}).GetRedisAddr())
	assert.Empty(t, (&Redis{Port: "6379"}).GetRedisAddr())
	assert.Empty(t, (&Redis{Host: "cache"}).GetRedisAddr())
}
