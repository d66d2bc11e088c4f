// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.seluk.ch/corekit/internal/adapters/archive"
	_ "go.seluk.ch/corekit/internal/adapters/cache"
	_ "go.seluk.ch/corekit/internal/adapters/config"
	_ "go.seluk.ch/corekit/internal/adapters/fs"
	_ "go.seluk.ch/corekit/internal/adapters/logger"
	_ "go.seluk.ch/corekit/internal/adapters/progress"
	_ "go.seluk.ch/corekit/internal/adapters/updater"
	// Register app and engine nodes.
	_ "go.seluk.ch/corekit/internal/app"
	_ "go.seluk.ch/corekit/internal/engine/executor"
)
