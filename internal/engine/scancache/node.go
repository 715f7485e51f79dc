package scancache

import (
	"context"

	"github.com/grindlemire/graft"
)

const (
	// NodeID is the unique identifier for the scan result cache Graft node.
	NodeID graft.ID = "engine.scancache"
	// FingerprintsNodeID is the unique identifier for the scan fingerprint registry Graft node.
	FingerprintsNodeID graft.ID = "engine.scancache.fingerprints"
)

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Cache, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[*Fingerprints]{
		ID:        FingerprintsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Fingerprints, error) {
			return NewFingerprints(), nil
		},
	})
}
