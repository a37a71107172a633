package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cachet/internal/adapters/config"
	"go.trai.ch/cachet/internal/adapters/logger"
	"go.trai.ch/cachet/internal/adapters/props"
	"go.trai.ch/cachet/internal/adapters/sources"
	"go.trai.ch/cachet/internal/adapters/state"
	"go.trai.ch/cachet/internal/adapters/telemetry"
	"go.trai.ch/cachet/internal/adapters/watcher"
	"go.trai.ch/cachet/internal/core/ports"
	"go.trai.ch/cachet/internal/engine/evaluator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the Components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the
// CLI layer.
type Components struct {
	App     *App
	Logger  ports.Logger
	Watcher *watcher.Watcher
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			evaluator.NodeID,
			state.NodeID,
			sources.NodeID,
			props.NodeID,
			telemetry.NodeID,
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
			watcher.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	eval, err := graft.Dep[*evaluator.Evaluator](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.SnapshotStore](ctx)
	if err != nil {
		return nil, err
	}

	src, err := graft.Dep[ports.Sources](ctx)
	if err != nil {
		return nil, err
	}

	propStore, err := graft.Dep[ports.PropertyStore](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, eval, store, src, propStore, tracer, log), nil
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

	w, err := graft.Dep[*watcher.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:     application,
		Logger:  log,
		Watcher: w,
	}, nil
}
