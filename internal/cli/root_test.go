package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := NewRootCmd()
	cmd.SetArgs(args)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Run("version flag", func(t *testing.T) {
		out, _, err := executeCommand(t, "", "--version")
		require.NoError(t, err)

		assert.Contains(t, out, "buildexport version")
		assert.Contains(t, out, version)
	})

	t.Run("help flag", func(t *testing.T) {
		out, _, err := executeCommand(t, "", "--help")
		require.NoError(t, err)

		assert.Contains(t, out, "hook")
		assert.Contains(t, out, "notify")
		assert.Contains(t, out, "report")
		assert.Contains(t, out, "check")
	})

	t.Run("global flags", func(t *testing.T) {
		cmd := NewRootCmd()

		configFlag := cmd.PersistentFlags().Lookup("config")
		require.NotNil(t, configFlag)
		assert.Equal(t, "", configFlag.DefValue)

		require.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))
		require.NotNil(t, cmd.PersistentFlags().Lookup("hook"))
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, _, err := executeCommand(t, "", "check", "--log-level", "loud")
		assert.ErrorContains(t, err, "invalid --log-level")
	})
}
