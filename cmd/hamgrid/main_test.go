package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// run executes the root command with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(""))
	cfg := filepath.Join(t.TempDir(), "none.yaml")
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestInvalidSizePrintsMessage(t *testing.T) {
	for _, args := range [][]string{{"3"}, {"--", "-2"}, {"0"}, {"--size", "7"}} {
		out, err := run(t, args...)
		require.NoError(t, err, "args=%v", args)
		require.Equal(t, "n must be an even integer >= 2\n", out, "args=%v", args)
	}
}

func TestNonIntegerSize(t *testing.T) {
	_, err := run(t, "eight")
	require.ErrorContains(t, err, "not an integer")
}

func TestTooLargeSize(t *testing.T) {
	out, err := run(t, "--mode", "none", "4096")
	require.Error(t, err)
	require.Empty(t, out)
}

func TestTextMode(t *testing.T) {
	out, err := run(t, "--mode", "text", "--no-color", "4")
	require.NoError(t, err)
	want := strings.Join([]string{
		"16 nodes; 16 moves",
		"↓ ← ↓ ←",
		"↓ ↑ ← ↑",
		"↓ → ↓ ↑",
		"→ ↑ → ↑",
		"",
	}, "\n")
	require.Equal(t, want, out)
}

func TestTextModeFramed(t *testing.T) {
	out, err := run(t, "--mode", "text", "6")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "36 nodes; 36 moves\n"))
	require.Contains(t, out, "n=6")
}

func TestStreamMode(t *testing.T) {
	out, err := run(t, "--mode", "stream", "--delay", "0s", "2")
	require.NoError(t, err)
	require.Equal(t, "4 nodes; 4 moves\nclear\n0 1 S\n0 0 E\n1 0 N\n1 1 W\n", out)
}

func TestSizeFlagAndNoneMode(t *testing.T) {
	out, err := run(t, "--size", "10", "--mode", "none")
	require.NoError(t, err)
	require.Equal(t, "100 nodes; 100 moves\n", out)
}

func TestAnimateModeFinishes(t *testing.T) {
	out, err := run(t, "--mode", "animate", "--delay", "1ms", "--no-color", "2")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "4 nodes; 4 moves\n"))
}

func TestInvalidMode(t *testing.T) {
	_, err := run(t, "--mode", "gif", "4")
	require.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", "--from", "1", "--to", "40")
	require.NoError(t, err)
	require.Equal(t, "ok: 20 sizes from 2 to 40\n", out)

	_, err = run(t, "validate", "--from", "10", "--to", "4")
	require.ErrorContains(t, err, "empty range")
}
