package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader("/path/to/config.json")
	assert.NotNil(t, loader)
	assert.Equal(t, "/path/to/config.json", loader.GetConfigPath())
}

func TestLoaderLoad(t *testing.T) {
	t.Run("defaults when no config file exists", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())

		cfg, err := NewLoader("").Load()

		require.NoError(t, err)
		assert.Empty(t, cfg.Export.Exe)
		assert.Equal(t, 100*time.Microsecond, cfg.Export.ErrorWait)
		assert.Equal(t, 64*1024, cfg.Export.ReadBufferSize)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("explicit config file must exist", func(t *testing.T) {
		_, err := NewLoader(filepath.Join(t.TempDir(), "missing.json")).Load()
		assert.Error(t, err)
	})

	t.Run("load config from file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.json")
		testConfig := `{
			"export": {
				"exe": "/usr/local/bin/record-build",
				"error_wait": "2ms",
				"escape": true
			},
			"logging": {
				"level": "debug",
				"file": "/tmp/buildexport.log"
			}
		}`
		require.NoError(t, os.WriteFile(configPath, []byte(testConfig), 0644))

		cfg, err := NewLoader(configPath).Load()

		require.NoError(t, err)
		assert.Equal(t, "/usr/local/bin/record-build", cfg.Export.Exe)
		assert.Equal(t, 2*time.Millisecond, cfg.Export.ErrorWait)
		assert.True(t, cfg.Export.Escape)
		assert.Equal(t, 64*1024, cfg.Export.ReadBufferSize)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "/tmp/buildexport.log", cfg.Logging.File)
	})

	t.Run("yaml config by extension", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configPath, []byte("export:\n  exe: /opt/hook\n"), 0644))

		cfg, err := NewLoader(configPath).Load()

		require.NoError(t, err)
		assert.Equal(t, "/opt/hook", cfg.Export.Exe)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(configPath, []byte(`{"export": {"exe": "/from/file"}}`), 0644))

		t.Setenv("BUILDEXPORT_EXPORT_EXE", "/from/env")
		t.Setenv("BUILDEXPORT_EXPORT_ERROR_WAIT", "5ms")

		cfg, err := NewLoader(configPath).Load()

		require.NoError(t, err)
		assert.Equal(t, "/from/env", cfg.Export.Exe)
		assert.Equal(t, 5*time.Millisecond, cfg.Export.ErrorWait)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(configPath, []byte(`{"logging": {"level": "loud"}}`), 0644))

		_, err := NewLoader(configPath).Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("malformed file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(configPath, []byte(`{"export": `), 0644))

		_, err := NewLoader(configPath).Load()
		assert.Error(t, err)
	})
}
