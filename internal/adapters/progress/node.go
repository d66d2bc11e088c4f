package progress

import (
	"context"

	"github.com/grindlemire/graft"
	"go.seluk.ch/corekit/internal/adapters/logger" //nolint:depguard // Wired in node
	"go.seluk.ch/corekit/internal/core/ports"
)

const NodeID graft.ID = "adapter.progress_sink"

func init() {
	graft.Register(graft.Node[ports.ProgressSink]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ProgressSink, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLogSink(log), nil
		},
	})
}
