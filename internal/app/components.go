package app

import (
	"go.seluk.ch/corekit/internal/adapters/cache"
	"go.seluk.ch/corekit/internal/adapters/config"
	"go.seluk.ch/corekit/internal/core/ports"
)

// Components contains the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Config *config.AppConfig
	Cache  *cache.Cache

	// Web fetches raw web content through the persistent cache. Hosts use
	// it for content worth reusing across runs, never for update manifests.
	Web ports.ReleaseSource
}
