package toolexec

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Success(t *testing.T) {
	result, err := Run(context.Background(), 5*time.Second, "", "sh", "-c", "echo hello")
	require.NoError(t, err)

	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "hello\n", result.Stdout)
	assert.False(t, result.TimedOut)
	assert.Greater(t, result.Duration, time.Duration(0))
}

func TestRun_NonZeroExit(t *testing.T) {
	result, err := Run(context.Background(), 5*time.Second, "", "sh", "-c", "echo oops >&2; exit 3")
	require.Error(t, err)

	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "oops\n", result.Stderr)
	assert.False(t, result.TimedOut)
	assert.Contains(t, err.Error(), "exit code 3")
}

func TestRun_Timeout(t *testing.T) {
	result, err := Run(context.Background(), 100*time.Millisecond, "", "sleep", "5")
	require.Error(t, err)

	assert.True(t, result.TimedOut)
	assert.Contains(t, err.Error(), "deadline")
}

func TestRun_ToolNotFound(t *testing.T) {
	result, err := Run(context.Background(), time.Second, "", "no-such-binary-on-any-system")
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "no-such-binary-on-any-system", notFound.Tool)
	assert.Equal(t, -1, result.ExitCode)
}

func TestRun_WorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	result, err := Run(context.Background(), 5*time.Second, dir, "pwd")
	require.NoError(t, err)
	assert.Contains(t, result.Stdout, dir)
}
