package cache

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.seluk.ch/corekit/internal/core/domain"
	"go.trai.ch/zerr"
)

// memoSubdir is the default subdirectory for memoized function results.
const memoSubdir = "function_cache"

// entryExt is the file extension for memoized results.
const entryExt = ".cache"

// Memoized wraps fn so that its result is stored in the cache and the
// function body runs at most once per distinct argument. The cache key is
// derived from name and a fingerprint of the gob-encoded argument unless
// WithKeyFunc overrides it. Misses invoke fn and store the result; hits
// return the stored result without invoking fn. Errors from fn are never
// cached. With a nil cache the wrapper degrades to calling fn directly.
func Memoized[A, R any](c *Cache, name string, fn func(context.Context, A) (R, error), opts ...Option) func(context.Context, A) (R, error) {
	o := applyOptions(opts)

	subdir := o.subdir
	if subdir == "" {
		subdir = memoSubdir
	}

	return func(ctx context.Context, arg A) (R, error) {
		var zero R

		var id string
		if o.keyFunc != nil {
			id = o.keyFunc(arg)
		} else {
			fingerprint, err := argFingerprint(name, arg)
			if err != nil {
				return zero, err
			}
			id = fingerprint
		}
		key := filepath.Join(subdir, id+entryExt)

		cached, err := Get[R](c, key, WithMaxAge(o.maxAge))
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			// Decode failures propagate, they are not treated as misses.
			return zero, err
		}

		result, err := fn(ctx, arg)
		if err != nil {
			return zero, err
		}

		if err := c.Put(key, result); err != nil {
			return zero, err
		}
		return result, nil
	}
}

// WithSubdir stores memoized results below the given cache subdirectory
// instead of the default one.
func WithSubdir(dir string) Option {
	return func(o *options) {
		o.subdir = dir
	}
}

// WithKeyFunc derives the cache entry name from the call argument instead
// of the default argument fingerprint. The function must return a stable,
// filesystem-safe identifier.
func WithKeyFunc(fn func(arg any) string) Option {
	return func(o *options) {
		o.keyFunc = fn
	}
}

// argFingerprint derives a stable identifier from the function name and the
// gob encoding of its argument.
func argFingerprint(name string, arg any) (string, error) {
	h := xxhash.New()
	_, _ = h.WriteString(name)
	_, _ = h.Write([]byte{0})

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(arg); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to fingerprint argument"), "function", name)
	}
	_, _ = h.Write(buf.Bytes())

	return fmt.Sprintf("%s_%016x", name, h.Sum64()), nil
}
