package cache

import (
	"sync"

	"go.seluk.ch/corekit/internal/core/domain"
)

// The default cache handle exists for cache-optional code paths that cannot
// take an injected *Cache. Explicit injection is still the primary wiring;
// at most one default can be registered per process.
var (
	defaultMu    sync.Mutex
	defaultCache *Cache
)

// SetDefault registers c as the process-wide default cache. It fails with
// domain.ErrCacheAlreadyInitialized when a default is already registered.
func SetDefault(c *Cache) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultCache != nil {
		return domain.ErrCacheAlreadyInitialized
	}
	defaultCache = c
	return nil
}

// Default returns the registered default cache, or nil when none is
// registered. The returned value is safe to use either way: a nil *Cache
// is a no-op for writes and a guaranteed miss for reads.
func Default() *Cache {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return defaultCache
}

// ResetDefault unregisters the default cache. Intended for tests.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCache = nil
}
