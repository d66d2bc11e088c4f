package logger_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.seluk.ch/corekit/internal/adapters/logger"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "Info", want: slog.LevelInfo},
		{in: "WARN", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "garbage", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}

func TestLogger_Output(t *testing.T) {
	var buf strings.Builder

	l := logger.New(slog.LevelInfo)
	l.SetOutput(&buf)

	l.Info("starting up")
	l.Warn("low disk space")
	l.Error(errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "starting up")
	assert.Contains(t, out, "low disk space")
	assert.Contains(t, out, "boom")
}

func TestLogger_LevelFiltersDebug(t *testing.T) {
	var buf strings.Builder

	l := logger.New(slog.LevelInfo)
	l.SetOutput(&buf)

	l.Debug("hidden")
	assert.NotContains(t, buf.String(), "hidden")

	l.SetLevel(slog.LevelDebug)
	l.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestLogger_LogToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var buf strings.Builder

	l := logger.New(slog.LevelInfo)
	l.SetOutput(&buf)

	path, err := l.LogToFile(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	l.Info("written to both")

	// Output goes to the file and to the previous writer.
	data, err := os.ReadFile(path) //nolint:gosec // Test-owned path
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to both")
	assert.Contains(t, buf.String(), "written to both")
}

func TestPruneLogDir(t *testing.T) {
	dir := t.TempDir()

	names := []string{
		"2026-01-01_10-00-00.log",
		"2026-01-02_10-00-00.log",
		"2026-01-03_10-00-00.log",
		"2026-01-04_10-00-00.log",
	}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("log"), 0o600))
	}
	// Unrelated files are left alone.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("keep"), 0o600))

	require.NoError(t, logger.PruneLogDir(dir, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var remaining []string
	for _, entry := range entries {
		remaining = append(remaining, entry.Name())
	}
	assert.ElementsMatch(t, []string{names[2], names[3], "notes.txt"}, remaining)
}

func TestPruneLogDir_NegativeKeepsAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2026-01-01_10-00-00.log"), []byte("log"), 0o600))

	require.NoError(t, logger.PruneLogDir(dir, -1))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestPruneLogDir_MissingDir(t *testing.T) {
	assert.NoError(t, logger.PruneLogDir(filepath.Join(t.TempDir(), "absent"), 2))
}
