// Package app implements the application layer for corekit.
package app

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.seluk.ch/corekit/internal/adapters/archive"
	"go.seluk.ch/corekit/internal/adapters/cache"
	"go.seluk.ch/corekit/internal/adapters/config"
	adapterfs "go.seluk.ch/corekit/internal/adapters/fs"
	"go.seluk.ch/corekit/internal/adapters/updater"
	"go.seluk.ch/corekit/internal/build"
	"go.seluk.ch/corekit/internal/core/domain"
	"go.seluk.ch/corekit/internal/core/ports"
	"go.seluk.ch/corekit/internal/engine/executor"
	"go.trai.ch/zerr"
)

// App wires the adapters into the operations backing the CLI.
type App struct {
	cfg     *config.AppConfig
	log     ports.Logger
	cache   *cache.Cache
	updater *updater.Updater
	scanner *adapterfs.Scanner
	zip     *archive.Zip
	pools   *executor.Factory
}

// New creates a new App instance.
func New(cfg *config.AppConfig, log ports.Logger, c *cache.Cache, upd *updater.Updater, scanner *adapterfs.Scanner, zip *archive.Zip, pools *executor.Factory) *App {
	return &App{
		cfg:     cfg,
		log:     log,
		cache:   c,
		updater: upd,
		scanner: scanner,
		zip:     zip,
		pools:   pools,
	}
}

// Startup logs the running version and kicks off the background update
// check when enabled. It never blocks on the network.
func (a *App) Startup(ctx context.Context) {
	a.log.Info("starting corekit " + build.Version)

	if a.cfg.Update.Enabled {
		go a.updater.Run(ctx)
	}
}

// ScanDir collects file records for every file under dir, hashing
// concurrently on a fresh worker pool.
func (a *App) ScanDir(ctx context.Context, dir string) ([]domain.File, error) {
	return a.scanner.Scan(ctx, dir, a.pools.NewPool(ctx))
}

// ClearCache deletes all cached data.
func (a *App) ClearCache() error {
	if err := a.cache.Clear(); err != nil {
		return err
	}
	a.log.Info("cleared caches")
	return nil
}

// CacheInfo describes the on-disk state of the cache.
type CacheInfo struct {
	Root    string
	Entries int
	Size    int64
}

// CacheInfo reports the cache root, entry count and total size. A missing
// root reports zero entries.
func (a *App) CacheInfo() (CacheInfo, error) {
	info := CacheInfo{Root: a.cache.Root()}

	if _, err := os.Stat(info.Root); errors.Is(err, fs.ErrNotExist) {
		return info, nil
	}

	err := filepath.WalkDir(info.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		info.Entries++
		info.Size += fi.Size()
		return nil
	})
	if err != nil {
		return CacheInfo{}, zerr.Wrap(err, "failed to inspect cache")
	}
	return info, nil
}

// CheckUpdate fetches the update manifest and returns the advertised
// release if it is newer than the running version, or nil when up to date.
func (a *App) CheckUpdate(ctx context.Context) (*domain.Release, error) {
	return a.updater.Check(ctx)
}

// Pack writes all files under dir into a zip archive at dst, reporting
// per-file progress through the pool's sink.
func (a *App) Pack(ctx context.Context, dir, dst string) error {
	return a.runOnPool(ctx, "packing "+dir, func(ctx context.Context, update executor.UpdateFunc) error {
		return a.zip.Create(ctx, dst, dir, update)
	})
}

// Unpack extracts the zip archive at src into dir, reporting per-entry
// progress through the pool's sink.
func (a *App) Unpack(ctx context.Context, src, dir string) error {
	return a.runOnPool(ctx, "unpacking "+src, func(ctx context.Context, update executor.UpdateFunc) error {
		return a.zip.Extract(ctx, src, dir, update)
	})
}

func (a *App) runOnPool(ctx context.Context, status string, task executor.Task) error {
	pool := a.pools.NewPool(ctx)
	pool.SetMainStatus(status)
	pool.Submit(task)
	return pool.Wait()
}
