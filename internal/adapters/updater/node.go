package updater

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.seluk.ch/corekit/internal/adapters/cache"
	"go.seluk.ch/corekit/internal/adapters/config" //nolint:depguard // Wired in node
	"go.seluk.ch/corekit/internal/adapters/logger" //nolint:depguard // Wired in node
	"go.seluk.ch/corekit/internal/build"
	"go.seluk.ch/corekit/internal/core/ports"
)

const (
	NodeID          graft.ID = "adapter.updater"
	WebSourceNodeID graft.ID = "adapter.updater.web_source"
)

func init() {
	graft.Register(graft.Node[*Updater]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Updater, error) {
			cfg, err := graft.Dep[*config.AppConfig](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(
				cfg.Update.Owner,
				cfg.Update.Repo,
				cfg.Update.Branch,
				build.Version,
				NewHTTPSource(),
				log,
			), nil
		},
	})

	graft.Register(graft.Node[*CachedSource]{
		ID:        WebSourceNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, cache.NodeID},
		Run: func(ctx context.Context) (*CachedSource, error) {
			cfg, err := graft.Dep[*config.AppConfig](ctx)
			if err != nil {
				return nil, err
			}

			c, err := graft.Dep[*cache.Cache](ctx)
			if err != nil {
				return nil, err
			}

			return NewCachedSource(NewHTTPSource(), c, time.Duration(cfg.Cache.WebMaxAge)), nil
		},
	})
}
