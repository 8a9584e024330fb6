package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/deparse/internal/adapters/cache"              //nolint:depguard // Wired in app layer
	"go.trai.ch/deparse/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/deparse/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/deparse/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/deparse/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/deparse/internal/adapters/manifest"           //nolint:depguard // Wired in app layer
	"go.trai.ch/deparse/internal/adapters/output"             //nolint:depguard // Wired in app layer
	"go.trai.ch/deparse/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/deparse/internal/adapters/yarnlock"           //nolint:depguard // Wired in app layer
	"go.trai.ch/deparse/internal/core/ports"
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
			manifest.NodeID,
			yarnlock.NodeID,
			fs.HasherNodeID,
			cas.NodeID,
			cache.NodeID,
			output.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	manifests, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}
	lockfiles, err := graft.Dep[ports.LockfileParser](ctx)
	if err != nil {
		return nil, err
	}
	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.ExportInfoStore](ctx)
	if err != nil {
		return nil, err
	}
	stateCache, err := graft.Dep[ports.StateCache](ctx)
	if err != nil {
		return nil, err
	}
	writer, err := graft.Dep[ports.ResultWriter](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, manifests, lockfiles, hasher, store, stateCache, writer, telemetry, log), nil
}
