package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.seluk.ch/corekit/internal/adapters/config" //nolint:depguard // Wired in node
	"go.seluk.ch/corekit/internal/core/ports"
)

const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			cfg, err := graft.Dep[*config.AppConfig](ctx)
			if err != nil {
				return nil, err
			}

			log := New(ParseLevel(cfg.Log.Level))
			if cfg.Log.Dir != "" {
				// File logging is best effort, failures must not block
				// startup.
				path, err := log.LogToFile(cfg.Log.Dir)
				if err != nil {
					log.Warn("file logging disabled: " + err.Error())
					return log, nil
				}
				log.Debug("logging to " + path)

				if err := PruneLogDir(cfg.Log.Dir, cfg.Log.KeepFiles); err != nil {
					log.Warn("failed to prune log directory: " + err.Error())
				}
			}
			return log, nil
		},
	})
}
