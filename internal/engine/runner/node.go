package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cairn/internal/adapters/environment" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cairn/internal/adapters/shell"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cairn/internal/core/ports"
)

// NodeID is the unique identifier for the target runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{environment.NodeID, shell.ProcessRunnerNodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			envFactory, err := graft.Dep[ports.RunEnvironmentFactory](ctx)
			if err != nil {
				return nil, err
			}
			processes, err := graft.Dep[*shell.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			return New(envFactory, processes), nil
		},
	})
}
