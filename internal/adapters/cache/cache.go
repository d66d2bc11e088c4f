// Package cache implements the persistent, versioned file cache.
//
// Values are gob-encoded to files at caller-chosen relative paths below a
// cache root. A version marker file ties the cache content to the
// application version that produced it: caches written by an older version
// are purged wholesale before use. Reads are memoized in-process so
// repeated lookups of the same key do not re-read or re-decode the file.
package cache

import (
	"bytes"
	"encoding/gob"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.seluk.ch/corekit/internal/core/domain"
	"go.seluk.ch/corekit/internal/core/ports"
	"go.trai.ch/zerr"
)

// versionFileName is the marker file recording the application version that
// wrote the cache.
const versionFileName = "version"

// Cache is a durable key-value store rooted at a single directory.
//
// A nil *Cache is valid: Put and Delete are no-ops and Get always misses.
// This supports cache-optional code paths without sprinkling nil checks at
// every call site.
type Cache struct {
	root string
	log  ports.Logger

	mu   sync.Mutex
	memo *memo
}

// New creates a Cache rooted at root and enforces the version invariant:
// a cache written by an older application version, or a non-empty cache
// directory without a version marker, is purged before use. Dev builds
// never purge on version grounds.
func New(root, appVersion string, log ports.Logger) (*Cache, error) {
	c := &Cache{
		root: filepath.Clean(root),
		log:  log,
	}

	m, err := newMemo()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create memo layer")
	}
	c.memo = m

	if err := c.enforceVersion(appVersion); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(c.root, 0o750); err != nil {
		return nil, zerr.Wrap(err, "failed to create cache root")
	}
	if err := os.WriteFile(c.versionFile(), []byte(appVersion), 0o644); err != nil { //nolint:gosec // Marker below trusted root
		return nil, zerr.Wrap(err, "failed to write cache version marker")
	}

	return c, nil
}

func (c *Cache) versionFile() string {
	return filepath.Join(c.root, versionFileName)
}

func (c *Cache) enforceVersion(appVersion string) error {
	marker, err := os.ReadFile(c.versionFile())
	switch {
	case err == nil:
		if domain.IsDevVersion(appVersion) {
			return nil
		}
		cacheVersion := strings.TrimSpace(string(marker))
		newer, cmpErr := domain.VersionNewer(appVersion, cacheVersion)
		if cmpErr != nil || newer {
			if clearErr := c.Clear(); clearErr != nil {
				return clearErr
			}
			c.info("cleared caches due to outdated cache version")
		}
		return nil

	case errors.Is(err, fs.ErrNotExist):
		entries, readErr := os.ReadDir(c.root)
		if readErr == nil && len(entries) > 0 {
			if clearErr := c.Clear(); clearErr != nil {
				return clearErr
			}
			c.info("cleared caches due to missing cache version marker")
		}
		return nil

	default:
		return zerr.Wrap(err, "failed to read cache version marker")
	}
}

// Root returns the cache root directory.
func (c *Cache) Root() string {
	if c == nil {
		return ""
	}
	return c.root
}

// Clear deletes the entire cache root recursively and drops the in-process
// memo layer. It is idempotent and safe to call on an already-missing root.
func (c *Cache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.RemoveAll(c.root); err != nil {
		return zerr.Wrap(err, "failed to clear cache")
	}
	c.memo.clear()
	return nil
}

// errMiss builds the not-found error for key. The sentinel is kept in the
// chain via Wrap so callers can match it with errors.Is.
func errMiss(key string) error {
	return zerr.With(zerr.Wrap(domain.ErrCacheMiss, "no cache entry"), "key", key)
}

// entryPath resolves a relative cache key below the root, rejecting keys
// that would escape it.
func (c *Cache) entryPath(key string) (string, error) {
	cleaned := filepath.Clean(key)
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", zerr.With(zerr.New("cache key escapes cache root"), "key", key)
	}
	return filepath.Join(c.root, cleaned), nil
}

// Put gob-encodes value and writes it to the entry at key, creating parent
// directories as needed. A concurrent Put to the same key is
// last-writer-wins. Put on a nil Cache does nothing.
func (c *Cache) Put(key string, value any) error {
	if c == nil {
		return nil
	}

	path, err := c.entryPath(key)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to encode cache entry"), "key", key)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create cache entry directory")
	}
	//nolint:gosec // Path is resolved below the trusted cache root
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write cache entry"), "key", key)
	}

	c.memo.set(path, value)
	return nil
}

// Delete removes the entry at key. Missing entries are not an error.
func (c *Cache) Delete(key string) error {
	if c == nil {
		return nil
	}

	path, err := c.entryPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to delete cache entry"), "key", key)
	}
	c.memo.del(path)
	return nil
}

// Get looks up the entry at key and decodes it. A missing entry fails with
// domain.ErrCacheMiss; use GetOr to opt out of the failure. A decode
// failure is propagated unchanged, never masked as a miss.
func Get[T any](c *Cache, key string, opts ...Option) (T, error) {
	var zero T
	if c == nil {
		return zero, errMiss(key)
	}

	o := applyOptions(opts)

	path, err := c.entryPath(key)
	if err != nil {
		return zero, err
	}

	if err := c.expire(path, o.maxAge); err != nil {
		return zero, err
	}

	if v, ok := c.memo.get(path); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
		// Type changed between Put and Get, fall through to the file.
		c.memo.del(path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path is resolved below the trusted cache root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zero, errMiss(key)
		}
		return zero, zerr.With(zerr.Wrap(err, "failed to read cache entry"), "key", key)
	}

	var value T
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&value); err != nil {
		return zero, zerr.With(zerr.Wrap(err, "failed to decode cache entry"), "key", key)
	}

	c.memo.set(path, value)
	return value, nil
}

// GetOr behaves like Get but returns def instead of failing on a miss.
// Decode failures still propagate.
func GetOr[T any](c *Cache, key string, def T, opts ...Option) (T, error) {
	v, err := Get[T](c, key, opts...)
	if errors.Is(err, domain.ErrCacheMiss) {
		return def, nil
	}
	return v, err
}

// expire deletes the entry at path when it is older than maxAge, forcing
// the subsequent lookup to miss.
func (c *Cache) expire(path string, maxAge time.Duration) error {
	if maxAge <= 0 {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil // Missing entries are handled by the caller.
	}
	if time.Since(info.ModTime()) <= maxAge {
		return nil
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, "failed to delete expired cache entry")
	}
	c.memo.del(path)
	c.debug("deleted expired cache entry: " + path)
	return nil
}

// Option configures a cache lookup.
type Option func(*options)

type options struct {
	maxAge  time.Duration
	subdir  string
	keyFunc func(arg any) string
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxAge treats entries older than d as expired: they are deleted at
// read time, forcing a miss.
func WithMaxAge(d time.Duration) Option {
	return func(o *options) {
		o.maxAge = d
	}
}

func (c *Cache) info(msg string) {
	if c.log != nil {
		c.log.Info(msg)
	}
}

func (c *Cache) debug(msg string) {
	if c.log != nil {
		c.log.Debug(msg)
	}
}
