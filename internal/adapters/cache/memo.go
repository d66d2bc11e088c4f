package cache

import (
	"github.com/dgraph-io/ristretto"
)

// memoMaxEntries bounds the in-process read memoization. Each decoded entry
// costs 1, so this is a plain entry count.
const memoMaxEntries = 4096

// memo is the bounded in-memory layer on top of the durable store, keyed by
// resolved entry path. It only avoids re-reading and re-decoding files; the
// files stay the source of truth.
type memo struct {
	cache *ristretto.Cache
}

func newMemo() (*memo, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: memoMaxEntries * 10,
		MaxCost:     memoMaxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &memo{cache: c}, nil
}

func (m *memo) get(path string) (any, bool) {
	return m.cache.Get(path)
}

func (m *memo) set(path string, value any) {
	m.cache.Set(path, value, 1)
	// Ristretto applies sets asynchronously. Waiting here keeps the
	// read-once guarantee deterministic, which the cheap cost model allows.
	m.cache.Wait()
}

func (m *memo) del(path string) {
	m.cache.Del(path)
}

func (m *memo) clear() {
	m.cache.Clear()
}
