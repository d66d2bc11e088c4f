package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.seluk.ch/corekit/internal/adapters/config" //nolint:depguard // Wired in node
	"go.seluk.ch/corekit/internal/adapters/logger" //nolint:depguard // Wired in node
	"go.seluk.ch/corekit/internal/build"
	"go.seluk.ch/corekit/internal/core/ports"
)

const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Cache, error) {
			cfg, err := graft.Dep[*config.AppConfig](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(cfg.Cache.Dir, build.Version, log)
		},
	})
}
