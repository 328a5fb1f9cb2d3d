package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/console"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/git"       //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/core/ports"
)

const (
	// RunnerNodeID is the unique identifier for the orchestrator Graft node.
	RunnerNodeID graft.ID = "app.runner"
	// FetcherNodeID is the unique identifier for the dependency fetcher Graft node.
	FetcherNodeID graft.ID = "app.fetcher"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			shell.LocatorNodeID,
			fs.NodeID,
			console.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runRunnerNode,
	})

	graft.Register(graft.Node[*Fetcher]{
		ID:        FetcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.LocatorNodeID,
			config.NodeID,
			fs.NodeID,
			git.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runFetcherNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			RunnerNodeID,
			FetcherNodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: runComponentsNode,
	})
}

func runRunnerNode(ctx context.Context) (*Runner, error) {
	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[ports.ToolLocator](ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := graft.Dep[ports.Workspace](ctx)
	if err != nil {
		return nil, err
	}

	cons, err := graft.Dep[ports.Console](ctx)
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

	return NewRunner(executor, locator, workspace, cons, tracer, log), nil
}

func runFetcherNode(ctx context.Context) (*Fetcher, error) {
	locator, err := graft.Dep[ports.ToolLocator](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := graft.Dep[ports.Workspace](ctx)
	if err != nil {
		return nil, err
	}

	cloner, err := graft.Dep[ports.Cloner](ctx)
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

	return NewFetcher(locator, loader, workspace, cloner, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	runner, err := graft.Dep[*Runner](ctx)
	if err != nil {
		return nil, err
	}

	fetcher, err := graft.Dep[*Fetcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		Runner:  runner,
		Fetcher: fetcher,
		Logger:  log,
		Tracer:  tracer,
	}, nil
}
