package executor

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireBinary(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available", name)
	}
}

func TestRunPipesStdin(t *testing.T) {
	requireBinary(t, "cat")

	out, err := New().Run(context.Background(), Command{Name: "cat", Stdin: []byte("audio bytes")})
	require.NoError(t, err)
	assert.Equal(t, "audio bytes", string(out))
}

func TestRunUsesDir(t *testing.T) {
	requireBinary(t, "pwd")
	dir := t.TempDir()

	out, err := New().Run(context.Background(), Command{Name: "pwd", Dir: dir})
	require.NoError(t, err)
	assert.Contains(t, string(out), dir)
}

func TestRunReportsStderr(t *testing.T) {
	requireBinary(t, "sh")

	_, err := New().Run(context.Background(), Command{Name: "sh", Args: []string{"-c", "echo boom >&2; exit 3"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Contains(t, err.Error(), "command 'sh' failed")
}

func TestRunMissingBinary(t *testing.T) {
	_, err := New().Run(context.Background(), Command{Name: "definitely-not-a-real-binary-xyz"})
	assert.Error(t, err)
}
