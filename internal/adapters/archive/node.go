package archive

import (
	"context"

	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.archive"

func init() {
	graft.Register(graft.Node[*Zip]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Zip, error) {
			return NewZip(), nil
		},
	})
}
