package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/cairn/internal/adapters/fs"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// SettingsNodeID is the unique identifier for the settings Graft node.
	SettingsNodeID graft.ID = "adapter.config.settings"
	// NodeID is the unique identifier for the project loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
)

func init() {
	graft.Register(graft.Node[*Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Settings, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to determine working directory")
			}
			return LoadSettings(cwd, os.LookupEnv)
		},
	})

	graft.Register(graft.Node[ports.ProjectLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{SettingsNodeID, fs.ResolverNodeID},
		Run: func(ctx context.Context) (ports.ProjectLoader, error) {
			settings, err := graft.Dep[*Settings](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.InputResolver](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(resolver, settings.BuildDir), nil
		},
	})
}
