package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with the given stdin and arguments,
// capturing stdout and stderr separately.
func executeCommand(t testing.TB, stdin io.Reader, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := InitializeCommands()
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	if args == nil {
		// cobra treats nil args as "use os.Args[1:]", which would leak the
		// test binary's -test.* flags into the command.
		args = []string{}
	}
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// createFile writes content into dir under name and returns the full path.
func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// requireExitStatus asserts that err carries the given status bitmask.
func requireExitStatus(t *testing.T, err error, want Status) {
	t.Helper()
	require.Error(t, err)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, want, exitErr.Status)
}
