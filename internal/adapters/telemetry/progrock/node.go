package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cairn/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the telemetry adapter node.
	NodeID graft.ID = "adapter.telemetry"
	// StreamNodeID is the unique identifier for the status update stream node.
	StreamNodeID graft.ID = "adapter.telemetry.stream"
)

func init() {
	graft.Register(graft.Node[*Stream]{
		ID:        StreamNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Stream, error) {
			return NewStream(), nil
		},
	})

	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StreamNodeID},
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			stream, err := graft.Dep[*Stream](ctx)
			if err != nil {
				return nil, err
			}
			return NewRecorder(stream), nil
		},
	})
}
