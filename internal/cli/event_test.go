package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDependencyList(t *testing.T) {
	deps, err := readDependencyList(strings.NewReader("a.h\n\n  b.h  \r\nsub dir/c.h\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.h", "b.h", "sub dir/c.h"}, deps)
}

func TestEventFlagsDependencies(t *testing.T) {
	t.Run("flags only", func(t *testing.T) {
		f := &eventFlags{deps: []string{"x.h", "y,z.h"}}
		deps, err := f.dependencies(nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"x.h", "y,z.h"}, deps)
	})

	t.Run("flags then file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deps.txt")
		require.NoError(t, os.WriteFile(path, []byte("b.h\nc.h\n"), 0644))

		f := &eventFlags{deps: []string{"a.h"}, depsFile: path}
		deps, err := f.dependencies(nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"a.h", "b.h", "c.h"}, deps)
	})

	t.Run("stdin", func(t *testing.T) {
		f := &eventFlags{depsFile: "-"}
		deps, err := f.dependencies(strings.NewReader("one.h\ntwo.h\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"one.h", "two.h"}, deps)
	})

	t.Run("missing file", func(t *testing.T) {
		f := &eventFlags{depsFile: filepath.Join(t.TempDir(), "missing")}
		_, err := f.dependencies(nil)
		assert.ErrorContains(t, err, "failed to open deps file")
	})
}
