package scanner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cairn/internal/adapters/fs"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/cairn/internal/engine/scancache" //nolint:depguard // scanner memoizes into the shared cache
)

// NodeID is the unique identifier for the include scanner Graft node.
const NodeID graft.ID = "adapter.scanner"

func init() {
	graft.Register(graft.Node[ports.DependencyScanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{scancache.NodeID, scancache.FingerprintsNodeID, fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.DependencyScanner, error) {
			cache, err := graft.Dep[*scancache.Cache](ctx)
			if err != nil {
				return nil, err
			}
			fingerprints, err := graft.Dep[*scancache.Fingerprints](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return New(cache, fingerprints, hasher), nil
		},
	})
}
