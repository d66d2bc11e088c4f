package fs_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.seluk.ch/corekit/internal/adapters/cache"
	"go.seluk.ch/corekit/internal/adapters/fs"
	"go.seluk.ch/corekit/internal/engine/executor"
)

func newScanner(t *testing.T, maxAge time.Duration) *fs.Scanner {
	t.Helper()
	c, err := cache.New(filepath.Join(t.TempDir(), "cache"), "1.0.0", nil)
	require.NoError(t, err)
	return fs.NewScanner(fs.NewWalker(), fs.NewHasher(), c, nil, maxAge)
}

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.txt"), "bravo")
	writeFile(t, filepath.Join(root, "a.txt"), "alpha")
	writeFile(t, filepath.Join(root, "sub", "c.txt"), "charlie")

	scanner := newScanner(t, time.Hour)
	ctx := t.Context()

	files, err := scanner.Scan(ctx, root, executor.New(ctx, 4, nil))
	require.NoError(t, err)

	require.Len(t, files, 3)
	assert.Equal(t, "a.txt", files[0].Path)
	assert.Equal(t, "b.txt", files[1].Path)
	assert.Equal(t, filepath.Join("sub", "c.txt"), files[2].Path)

	assert.Equal(t, int64(5), files[0].Size)
	assert.NotZero(t, files[0].Hash)
	assert.False(t, files[0].ModTime.IsZero())
}

func TestScanner_SecondScanServedFromCache(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "alpha")

	scanner := newScanner(t, time.Hour)
	ctx := t.Context()

	first, err := scanner.Scan(ctx, root, executor.New(ctx, 2, nil))
	require.NoError(t, err)
	require.Len(t, first, 1)

	// The cached result is returned without submitting any work.
	pool := executor.New(ctx, 2, nil)
	second, err := scanner.Scan(ctx, root, pool)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, total := pool.Stats()
	assert.Zero(t, total)
}

func TestScanner_MissingRoot(t *testing.T) {
	scanner := newScanner(t, time.Hour)
	ctx := t.Context()

	_, err := scanner.Scan(ctx, filepath.Join(t.TempDir(), "nope"), executor.New(ctx, 1, nil))
	assert.Error(t, err)
}

func TestScanner_RootIsFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.txt")
	writeFile(t, path, "alpha")

	scanner := newScanner(t, time.Hour)
	ctx := t.Context()

	_, err := scanner.Scan(ctx, path, executor.New(ctx, 1, nil))
	assert.Error(t, err)
}

func TestScanner_NilCacheScansEveryTime(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "alpha")

	scanner := fs.NewScanner(fs.NewWalker(), fs.NewHasher(), nil, nil, time.Hour)
	ctx := t.Context()

	_, err := scanner.Scan(ctx, root, executor.New(ctx, 1, nil))
	require.NoError(t, err)

	pool := executor.New(ctx, 1, nil)
	_, err = scanner.Scan(ctx, root, pool)
	require.NoError(t, err)

	_, total := pool.Stats()
	assert.Equal(t, 1, total)
}
