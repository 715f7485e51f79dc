package toolchain

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cairn/internal/adapters/config" //nolint:depguard // profile location comes from settings
	"go.trai.ch/cairn/internal/adapters/logger"
	"go.trai.ch/cairn/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the toolchain prober Graft node.
	NodeID graft.ID = "adapter.toolchain.prober"
	// StoreNodeID is the unique identifier for the profile store Graft node.
	StoreNodeID graft.ID = "adapter.toolchain.store"
)

func init() {
	graft.Register(graft.Node[*Prober]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Prober, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProber(DumpMachineQuery{}, PathFinder{}, log), nil
		},
	})

	graft.Register(graft.Node[ports.ProfileStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.ProfileStore, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewFileStore(settings.ProfilesFile), nil
		},
	})
}
