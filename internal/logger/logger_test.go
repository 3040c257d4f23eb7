package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("create logger with console output", func(t *testing.T) {
		logger, err := New(Config{
			Level:   "info",
			Console: true,
		})
		require.NoError(t, err)
		require.NotNil(t, logger)
		assert.NoError(t, logger.Close())
	})

	t.Run("create logger with file output", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "nested", "export.log")

		logger, err := New(Config{
			Level: "debug",
			File:  logFile,
		})
		require.NoError(t, err)

		zl := logger.Zerolog()
		zl.Warn().Str("hook", "/bin/true").Msg("test message")
		require.NoError(t, logger.Close())

		content, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"message":"test message"`)
		assert.Contains(t, string(content), `"hook":"/bin/true"`)
		assert.Contains(t, string(content), `"pid":`)
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		logger, err := New(Config{Level: "verbose"})
		require.NoError(t, err)
		defer logger.Close()

		assert.Equal(t, zerolog.InfoLevel, logger.Zerolog().GetLevel())
	})

	t.Run("unwritable log directory", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, nil, 0644))

		_, err := New(Config{File: filepath.Join(blocker, "export.log")})
		assert.Error(t, err)
	})
}
