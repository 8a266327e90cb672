package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/illBeRoy/advent-2022/internal/adapters/cache"  //nolint:depguard // Wired in app layer
	"github.com/illBeRoy/advent-2022/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/illBeRoy/advent-2022/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"github.com/illBeRoy/advent-2022/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"github.com/illBeRoy/advent-2022/internal/core/ports"
	"github.com/illBeRoy/advent-2022/internal/days"
	"github.com/illBeRoy/advent-2022/internal/engine/runner"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			days.NodeID,
			fs.InputNodeID,
			fs.HasherNodeID,
			cache.NodeID,
			logger.NodeID,
			runner.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*days.Registry](ctx)
	if err != nil {
		return nil, err
	}

	inputs, err := graft.Dep[ports.InputSource](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.AnswerStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	run, err := graft.Dep[*runner.Runner](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, registry, inputs, hasher, store, log, run), nil
}
