package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.config"

// EnvConfigPath overrides the configuration file location when set.
const EnvConfigPath = "COREKIT_CONFIG"

func init() {
	graft.Register(graft.Node[*AppConfig]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*AppConfig, error) {
			path := os.Getenv(EnvConfigPath)
			if path == "" {
				path = DefaultFilename
			}
			return Load(path)
		},
	})
}
