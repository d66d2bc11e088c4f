package archive_test

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.seluk.ch/corekit/internal/adapters/archive"
	"go.seluk.ch/corekit/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func writeArchive(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)

	w := zip.NewWriter(f)
	for name, content := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
}

func TestZip_RoundTrip(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "alpha")
	writeFile(t, filepath.Join(root, "sub", "b.txt"), "bravo")

	z := archive.NewZip()
	ctx := t.Context()
	archivePath := filepath.Join(t.TempDir(), "out.zip")

	var updates []domain.ProgressUpdate
	record := func(u domain.ProgressUpdate) { updates = append(updates, u) }

	require.NoError(t, z.Create(ctx, archivePath, root, record))

	// Final update reports all files done.
	require.NotEmpty(t, updates)
	final := updates[len(updates)-1]
	require.NotNil(t, final.Value)
	require.NotNil(t, final.Maximum)
	assert.Equal(t, 2, *final.Value)
	assert.Equal(t, 2, *final.Maximum)

	dst := t.TempDir()
	require.NoError(t, z.Extract(ctx, archivePath, dst, nil))

	a, err := os.ReadFile(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(a))

	b, err := os.ReadFile(filepath.Join(dst, "sub", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "bravo", string(b))
}

func TestZip_ExtractReportsPerEntryProgress(t *testing.T) {
	archivePath := filepath.Join(t.TempDir(), "in.zip")
	writeArchive(t, archivePath, map[string]string{
		"one.txt": "1",
		"two.txt": "2",
	})

	z := archive.NewZip()

	var updates []domain.ProgressUpdate
	err := z.Extract(t.Context(), archivePath, t.TempDir(), func(u domain.ProgressUpdate) {
		updates = append(updates, u)
	})
	require.NoError(t, err)

	// One update per entry plus the final one.
	require.Len(t, updates, 3)
	for _, u := range updates {
		require.NotNil(t, u.Maximum)
		assert.Equal(t, 2, *u.Maximum)
	}
}

func TestZip_ExtractRejectsTraversal(t *testing.T) {
	archivePath := filepath.Join(t.TempDir(), "evil.zip")
	writeArchive(t, archivePath, map[string]string{
		"../escape.txt": "evil",
	})

	z := archive.NewZip()
	dst := t.TempDir()

	err := z.Extract(t.Context(), archivePath, dst, nil)
	assert.Error(t, err)

	_, statErr := os.Stat(filepath.Join(filepath.Dir(dst), "escape.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestZip_ExtractObservesCancellation(t *testing.T) {
	archivePath := filepath.Join(t.TempDir(), "in.zip")
	writeArchive(t, archivePath, map[string]string{"a.txt": "a"})

	z := archive.NewZip()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := z.Extract(ctx, archivePath, t.TempDir(), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestZip_ExtractMissingArchive(t *testing.T) {
	z := archive.NewZip()

	err := z.Extract(t.Context(), filepath.Join(t.TempDir(), "nope.zip"), t.TempDir(), nil)
	assert.Error(t, err)
}
