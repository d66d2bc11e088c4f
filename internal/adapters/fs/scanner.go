package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"go.seluk.ch/corekit/internal/adapters/cache"
	"go.seluk.ch/corekit/internal/core/domain"
	"go.seluk.ch/corekit/internal/core/ports"
	"go.seluk.ch/corekit/internal/engine/executor"
	"go.trai.ch/zerr"
)

// scanCacheDir is the cache subdirectory holding scan results.
const scanCacheDir = "scan_cache"

// Scanner collects file records for a directory tree, hashing content
// concurrently on a worker pool. Results are cached per directory so a
// rescan within the max age is served from disk.
type Scanner struct {
	walker *Walker
	hasher ports.FileHasher
	cache  *cache.Cache
	log    ports.Logger
	maxAge time.Duration
}

// NewScanner creates a Scanner. A nil cache disables result caching.
func NewScanner(walker *Walker, hasher ports.FileHasher, c *cache.Cache, log ports.Logger, maxAge time.Duration) *Scanner {
	return &Scanner{
		walker: walker,
		hasher: hasher,
		cache:  c,
		log:    log,
		maxAge: maxAge,
	}
}

// Scan returns a record for every file under root, with paths relative to
// root and sorted. Hashing runs on pool; Scan consumes the pool, the
// caller must not reuse it. A cached result younger than the max age is
// returned without touching the pool.
func (s *Scanner) Scan(ctx context.Context, root string, pool *executor.Pool) ([]domain.File, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve scan root"), "root", root)
	}
	if info, err := os.Stat(abs); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat scan root"), "root", root)
	} else if !info.IsDir() {
		return nil, zerr.With(zerr.New("scan root is not a directory"), "root", root)
	}

	key := filepath.Join(scanCacheDir, s.hasher.Fingerprint(abs)+".cache")
	if files, err := cache.Get[[]domain.File](s.cache, key, cache.WithMaxAge(s.maxAge)); err == nil {
		s.debug("scan served from cache: " + abs)
		return files, nil
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		return nil, err
	}

	pool.SetMainStatus("scanning " + abs)

	var mu sync.Mutex
	var files []domain.File
	for path := range s.walker.WalkFiles(abs, nil) {
		pool.Submit(func(ctx context.Context, update executor.UpdateFunc) error {
			update(domain.ProgressStatus(filepath.Base(path)))

			file, err := s.scanFile(abs, path)
			if err != nil {
				return err
			}

			mu.Lock()
			files = append(files, file)
			mu.Unlock()
			return nil
		})
	}

	if err := pool.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	if err := s.cache.Put(key, files); err != nil {
		// The scan itself succeeded, caching is best effort.
		if s.log != nil {
			s.log.Error(zerr.Wrap(err, "failed to cache scan result"))
		}
	}
	return files, nil
}

func (s *Scanner) scanFile(root, path string) (domain.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.File{}, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}

	hash, err := s.hasher.HashFile(path)
	if err != nil {
		return domain.File{}, err
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return domain.File{}, zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
	}

	return domain.File{
		Path:    rel,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Hash:    hash,
	}, nil
}

func (s *Scanner) debug(msg string) {
	if s.log != nil {
		s.log.Debug(msg)
	}
}
