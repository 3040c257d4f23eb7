//go:build linux || darwin || freebsd

package hooks

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDiagnostic(t *testing.T) {
	t.Run("first line only", func(t *testing.T) {
		r, w, err := os.Pipe()
		require.NoError(t, err)
		defer r.Close()

		_, err = w.Write([]byte("permission denied\nmore detail\n"))
		require.NoError(t, err)
		w.Close()

		line, captured, err := readDiagnostic(r, time.Second, 1024)
		require.NoError(t, err)
		assert.True(t, captured)
		assert.Equal(t, "permission denied", line)
	})

	t.Run("read is bounded by buffer size", func(t *testing.T) {
		r, w, err := os.Pipe()
		require.NoError(t, err)
		defer r.Close()
		defer w.Close()

		_, err = w.Write([]byte("0123456789"))
		require.NoError(t, err)

		line, captured, err := readDiagnostic(r, time.Second, 4)
		require.NoError(t, err)
		assert.True(t, captured)
		assert.Equal(t, "0123", line)
	})

	t.Run("times out without data", func(t *testing.T) {
		r, w, err := os.Pipe()
		require.NoError(t, err)
		defer r.Close()
		defer w.Close()

		start := time.Now()
		line, captured, err := readDiagnostic(r, 20*time.Millisecond, 1024)
		require.NoError(t, err)
		assert.False(t, captured)
		assert.Empty(t, line)
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("closed writer without data", func(t *testing.T) {
		r, w, err := os.Pipe()
		require.NoError(t, err)
		defer r.Close()
		w.Close()

		_, captured, err := readDiagnostic(r, time.Second, 1024)
		require.NoError(t, err)
		assert.False(t, captured)
	})

	t.Run("wait failure is wrapped", func(t *testing.T) {
		failDiagnosticWait(t)

		r, w, err := os.Pipe()
		require.NoError(t, err)
		defer r.Close()
		defer w.Close()

		_, captured, err := readDiagnostic(r, time.Second, 1024)
		assert.ErrorIs(t, err, ErrErrorWait)
		assert.ErrorContains(t, err, "interrupted by test")
		assert.False(t, captured)
	})
}
