package tui

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	telemetry "go.trai.ch/cairn/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in presentation layer
	"golang.org/x/term"
)

// NodeID is the unique identifier for the progress display Graft node.
const NodeID graft.ID = "tui.display"

func init() {
	graft.Register(graft.Node[*Display]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{telemetry.StreamNodeID},
		Run: func(ctx context.Context) (*Display, error) {
			stream, err := graft.Dep[*telemetry.Stream](ctx)
			if err != nil {
				return nil, err
			}
			return NewDisplay(stream, os.Stderr, term.IsTerminal(int(os.Stderr.Fd()))), nil
		},
	})
}
