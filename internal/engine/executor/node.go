package executor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.seluk.ch/corekit/internal/adapters/config"   //nolint:depguard // Wired in node
	"go.seluk.ch/corekit/internal/adapters/progress" //nolint:depguard // Wired in node
	"go.seluk.ch/corekit/internal/core/ports"
)

const NodeID graft.ID = "engine.executor_factory"

// Factory creates pools with the configured worker count and sink.
type Factory struct {
	workers int
	sink    ports.ProgressSink
}

// NewFactory creates a Factory.
func NewFactory(workers int, sink ports.ProgressSink) *Factory {
	return &Factory{workers: workers, sink: sink}
}

// NewPool creates a pool bound to ctx.
func (f *Factory) NewPool(ctx context.Context) *Pool {
	return New(ctx, f.workers, f.sink)
}

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, progress.NodeID},
		Run: func(ctx context.Context) (*Factory, error) {
			cfg, err := graft.Dep[*config.AppConfig](ctx)
			if err != nil {
				return nil, err
			}

			sink, err := graft.Dep[ports.ProgressSink](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(cfg.Workers, sink), nil
		},
	})
}
