package cache_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.seluk.ch/corekit/internal/adapters/cache"
	"go.seluk.ch/corekit/internal/core/domain"
)

type payload struct {
	Name  string
	Count int
	Tags  []string
}

func newCache(t *testing.T, version string) *cache.Cache {
	t.Helper()
	c, err := cache.New(filepath.Join(t.TempDir(), "cache"), version, nil)
	require.NoError(t, err)
	return c
}

func TestCache_RoundTrip(t *testing.T) {
	c := newCache(t, "1.0.0")

	want := payload{Name: "plugins", Count: 3, Tags: []string{"a", "b"}}
	require.NoError(t, c.Put("web/plugins.cache", want))

	got, err := cache.Get[payload](c, "web/plugins.cache")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCache_MissWithoutDefault(t *testing.T) {
	c := newCache(t, "1.0.0")

	_, err := cache.Get[int](c, "missing.cache")
	assert.True(t, errors.Is(err, domain.ErrCacheMiss))
}

func TestCache_GetOrDefault(t *testing.T) {
	c := newCache(t, "1.0.0")

	got, err := cache.GetOr(c, "missing.cache", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	require.NoError(t, c.Put("present.cache", 7))
	got, err = cache.GetOr(c, "present.cache", 42)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestCache_MemoizedRead(t *testing.T) {
	c := newCache(t, "1.0.0")

	require.NoError(t, c.Put("memo.cache", "hello"))

	got, err := cache.Get[string](c, "memo.cache")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	// Remove the file behind the cache's back: the memo layer must still
	// serve the value without touching the filesystem.
	require.NoError(t, os.Remove(filepath.Join(c.Root(), "memo.cache")))

	got, err = cache.Get[string](c, "memo.cache")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestCache_MaxAgeExpiry(t *testing.T) {
	c := newCache(t, "1.0.0")

	require.NoError(t, c.Put("aging.cache", 1))

	// Backdate the entry beyond the max age.
	path := filepath.Join(c.Root(), "aging.cache")
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))

	_, err := cache.Get[int](c, "aging.cache", cache.WithMaxAge(time.Hour))
	assert.True(t, errors.Is(err, domain.ErrCacheMiss))

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "expired entry should be deleted")
}

func TestCache_MaxAgeFresh(t *testing.T) {
	c := newCache(t, "1.0.0")

	require.NoError(t, c.Put("fresh.cache", "still here"))

	got, err := cache.Get[string](c, "fresh.cache", cache.WithMaxAge(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, "still here", got)
}

func TestCache_Clear(t *testing.T) {
	c := newCache(t, "1.0.0")

	require.NoError(t, c.Put("sub/dir/entry.cache", 99))
	require.NoError(t, c.Clear())

	_, err := os.Stat(c.Root())
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = cache.Get[int](c, "sub/dir/entry.cache")
	assert.True(t, errors.Is(err, domain.ErrCacheMiss))

	// Idempotent.
	assert.NoError(t, c.Clear())
}

func TestCache_VersionUpgradePurges(t *testing.T) {
	root := filepath.Join(t.TempDir(), "cache")

	c1, err := cache.New(root, "1.0.0", nil)
	require.NoError(t, err)
	require.NoError(t, c1.Put("entry.cache", "old"))

	c2, err := cache.New(root, "1.1.0", nil)
	require.NoError(t, err)

	_, err = cache.Get[string](c2, "entry.cache")
	assert.True(t, errors.Is(err, domain.ErrCacheMiss))

	marker, err := os.ReadFile(filepath.Join(root, "version"))
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", string(marker))
}

func TestCache_SameVersionPreserves(t *testing.T) {
	root := filepath.Join(t.TempDir(), "cache")

	c1, err := cache.New(root, "1.0.0", nil)
	require.NoError(t, err)
	require.NoError(t, c1.Put("entry.cache", "kept"))

	c2, err := cache.New(root, "1.0.0", nil)
	require.NoError(t, err)

	got, err := cache.Get[string](c2, "entry.cache")
	require.NoError(t, err)
	assert.Equal(t, "kept", got)
}

func TestCache_DevVersionPreserves(t *testing.T) {
	root := filepath.Join(t.TempDir(), "cache")

	c1, err := cache.New(root, "1.0.0", nil)
	require.NoError(t, err)
	require.NoError(t, c1.Put("entry.cache", "kept"))

	c2, err := cache.New(root, "dev", nil)
	require.NoError(t, err)

	got, err := cache.Get[string](c2, "entry.cache")
	require.NoError(t, err)
	assert.Equal(t, "kept", got)
}

func TestCache_MissingMarkerPurges(t *testing.T) {
	root := filepath.Join(t.TempDir(), "cache")
	require.NoError(t, os.MkdirAll(root, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.cache"), []byte("stale"), 0o600))

	c, err := cache.New(root, "1.0.0", nil)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "stray.cache"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, err = os.Stat(filepath.Join(c.Root(), "version"))
	assert.NoError(t, err)
}

func TestCache_CorruptEntryPropagates(t *testing.T) {
	c := newCache(t, "1.0.0")

	path := filepath.Join(c.Root(), "corrupt.cache")
	require.NoError(t, os.WriteFile(path, []byte("not gob data"), 0o600))

	_, err := cache.Get[payload](c, "corrupt.cache")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrCacheMiss), "decode failure must not look like a miss")
}

func TestCache_KeyEscapeRejected(t *testing.T) {
	c := newCache(t, "1.0.0")

	assert.Error(t, c.Put("../outside.cache", 1))

	_, err := cache.Get[int](c, "../outside.cache")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrCacheMiss))
}

func TestCache_NilCache(t *testing.T) {
	var c *cache.Cache

	assert.NoError(t, c.Put("entry.cache", 1))
	assert.NoError(t, c.Delete("entry.cache"))
	assert.NoError(t, c.Clear())

	_, err := cache.Get[int](c, "entry.cache")
	assert.True(t, errors.Is(err, domain.ErrCacheMiss))

	got, err := cache.GetOr(c, "entry.cache", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestSetDefault_SecondRegistrationFails(t *testing.T) {
	t.Cleanup(cache.ResetDefault)

	c := newCache(t, "1.0.0")
	require.NoError(t, cache.SetDefault(c))

	other := newCache(t, "1.0.0")
	err := cache.SetDefault(other)
	assert.True(t, errors.Is(err, domain.ErrCacheAlreadyInitialized))

	assert.Same(t, c, cache.Default())
}
