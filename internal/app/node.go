package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.seluk.ch/corekit/internal/adapters/archive" //nolint:depguard // Wired in app layer
	"go.seluk.ch/corekit/internal/adapters/cache"   //nolint:depguard // Wired in app layer
	"go.seluk.ch/corekit/internal/adapters/config"  //nolint:depguard // Wired in app layer
	adapterfs "go.seluk.ch/corekit/internal/adapters/fs" //nolint:depguard // Wired in app layer
	"go.seluk.ch/corekit/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.seluk.ch/corekit/internal/adapters/updater" //nolint:depguard // Wired in app layer
	"go.seluk.ch/corekit/internal/core/ports"
	"go.seluk.ch/corekit/internal/engine/executor"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			cache.NodeID,
			updater.NodeID,
			adapterfs.ScannerNodeID,
			archive.NodeID,
			executor.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			cache.NodeID,
			updater.WebSourceNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*config.AppConfig](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	c, err := graft.Dep[*cache.Cache](ctx)
	if err != nil {
		return nil, err
	}

	upd, err := graft.Dep[*updater.Updater](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[*adapterfs.Scanner](ctx)
	if err != nil {
		return nil, err
	}

	zip, err := graft.Dep[*archive.Zip](ctx)
	if err != nil {
		return nil, err
	}

	pools, err := graft.Dep[*executor.Factory](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, log, c, upd, scanner, zip, pools), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*config.AppConfig](ctx)
	if err != nil {
		return nil, err
	}

	c, err := graft.Dep[*cache.Cache](ctx)
	if err != nil {
		return nil, err
	}

	web, err := graft.Dep[*updater.CachedSource](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
		Config: cfg,
		Cache:  c,
		Web:    web,
	}, nil
}
