package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KasperOmsK/fnkit/internal/formatutil"
	"github.com/KasperOmsK/fnkit/internal/lesson"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--no-color"))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(lesson.All()))
	require.True(t, strings.HasPrefix(lines[0], "arity"))
	require.Contains(t, lines[0], "Arity")
}

func TestRun_SelectedLessons(t *testing.T) {
	out, stderr, err := execute(t, "run", "currying", "composition")
	require.NoError(t, err)

	require.Contains(t, out, "curriedSum(40)(2) #=> 42")
	require.Contains(t, out, `floorAndToString(121.212121) #=> "121"`)
	require.NotContains(t, out, "== Arity")
	require.Contains(t, stderr, "walkthrough.finished")
}

func TestRun_AllLessons(t *testing.T) {
	out, _, err := execute(t, "run")
	require.NoError(t, err)

	for _, l := range lesson.All() {
		require.Contains(t, out, "== "+l.Title)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fnkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lessons: [lazy]\nrandom-pulls: 4\nlog-level: debug\n"), 0o600))

	out, stderr, err := execute(t, "run", "--config", path)
	require.NoError(t, err)

	require.Equal(t, 4, strings.Count(out, "next() #=> "))
	require.Contains(t, stderr, "config.loaded")
	require.Contains(t, stderr, "lesson.start")
}

func TestRun_UnknownLesson(t *testing.T) {
	_, _, err := execute(t, "run", "monads")
	require.ErrorIs(t, err, lesson.ErrUnknownLesson)
}

func TestRun_InvalidConfig(t *testing.T) {
	_, _, err := execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestRun_NoColorIsRestoredAfterRun(t *testing.T) {
	defer formatutil.SetColor(formatutil.SetColor(true))

	out, _, err := execute(t, "run", "arity")
	require.NoError(t, err)

	require.NotContains(t, out, "\033[")
	require.True(t, formatutil.ColorEnabled())
}
