package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cairn/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/cairn/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/cairn/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/cairn/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/cairn/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/cairn/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/cairn/internal/adapters/toolchain"          //nolint:depguard // Wired in app layer
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/cairn/internal/engine/runner"
	"go.trai.ch/cairn/internal/engine/scancache"
	"go.trai.ch/cairn/internal/engine/scheduler"
	"go.trai.ch/cairn/internal/tui"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
	// ToolchainComponentsNodeID is the unique identifier for the toolchain setup components Graft node.
	ToolchainComponentsNodeID graft.ID = "app.toolchain_components"
)

// Components is everything the cairn command needs.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
	Launcher  *shell.ToolLauncher
	Settings  *config.Settings
}

// ToolchainComponents is everything the toolchain setup command needs.
type ToolchainComponents struct {
	Prober *toolchain.Prober
	Store  ports.ProfileStore
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.SettingsNodeID,
			scheduler.NodeID,
			runner.NodeID,
			scancache.NodeID,
			cas.ScanStoreNodeID,
			fs.WalkerNodeID,
			logger.NodeID,
			tui.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
			shell.LauncherNodeID,
			config.SettingsNodeID,
		},
		Run: runComponentsNode,
	})

	graft.Register(graft.Node[*ToolchainComponents]{
		ID:        ToolchainComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			toolchain.NodeID,
			toolchain.StoreNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*ToolchainComponents, error) {
			prober, err := graft.Dep[*toolchain.Prober](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ProfileStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &ToolchainComponents{Prober: prober, Store: store, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*config.Settings](ctx)
	if err != nil {
		return nil, err
	}

	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}

	run, err := graft.Dep[*runner.Runner](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[*scancache.Cache](ctx)
	if err != nil {
		return nil, err
	}

	scanStore, err := graft.Dep[ports.ScanCacheStore](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[*fs.Walker](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	display, err := graft.Dep[*tui.Display](ctx)
	if err != nil {
		return nil, err
	}

	paths := Paths{BuildDir: settings.BuildDir, BuildInfoFile: settings.BuildInfoPath()}
	return New(loader, sched, run, cache, scanStore, walker, log, paths).WithDisplay(display), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	launcher, err := graft.Dep[*shell.ToolLauncher](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*config.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
		Launcher:  launcher,
		Settings:  settings,
	}, nil
}
