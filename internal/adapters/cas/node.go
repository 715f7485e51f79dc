package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cairn/internal/adapters/config" //nolint:depguard // state paths come from settings
	"go.trai.ch/cairn/internal/adapters/fs"     //nolint:depguard // scan store hashes files
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/cairn/internal/engine/scancache" //nolint:depguard // scan store shares the scan fingerprints
)

const (
	// NodeID is the unique identifier for the build info store Graft node.
	NodeID graft.ID = "adapter.build_info_store"
	// ScanStoreNodeID is the unique identifier for the scan cache store Graft node.
	ScanStoreNodeID graft.ID = "adapter.scan_cache_store"
)

func init() {
	graft.Register(graft.Node[ports.BuildInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.BuildInfoStore, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.BuildInfoPath())
		},
	})

	graft.Register(graft.Node[ports.ScanCacheStore]{
		ID:        ScanStoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, fs.HasherNodeID, scancache.FingerprintsNodeID},
		Run: func(ctx context.Context) (ports.ScanCacheStore, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			fingerprints, err := graft.Dep[*scancache.Fingerprints](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanStore(settings.ScanCachePath(), hasher, fingerprints), nil
		},
	})
}
