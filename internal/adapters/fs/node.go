package fs

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.seluk.ch/corekit/internal/adapters/cache"
	"go.seluk.ch/corekit/internal/adapters/config"
	"go.seluk.ch/corekit/internal/adapters/logger"
	"go.seluk.ch/corekit/internal/core/ports"
)

const (
	WalkerNodeID  graft.ID = "adapter.fs.walker"
	HasherNodeID  graft.ID = "adapter.fs.hasher"
	ScannerNodeID graft.ID = "adapter.fs.scanner"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.FileHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileHasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[*Scanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, HasherNodeID, cache.NodeID, config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Scanner, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.FileHasher](ctx)
			if err != nil {
				return nil, err
			}
			c, err := graft.Dep[*cache.Cache](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*config.AppConfig](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(walker, hasher, c, log, time.Duration(cfg.Cache.ScanMaxAge)), nil
		},
	})
}
