package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cairn/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cairn/internal/adapters/environment"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cairn/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cairn/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cairn/internal/adapters/scanner"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cairn/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cairn/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/cairn/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			scanner.NodeID,
			fs.HasherNodeID,
			cas.NodeID,
			fs.VerifierNodeID,
			shell.NodeID,
			environment.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			depScanner, err := graft.Dep[ports.DependencyScanner](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.BuildInfoStore](ctx)
			if err != nil {
				return nil, err
			}

			verifier, err := graft.Dep[ports.Verifier](ctx)
			if err != nil {
				return nil, err
			}

			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			envFactory, err := graft.Dep[ports.RunEnvironmentFactory](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(
				depScanner,
				hasher,
				store,
				verifier,
				executor,
				envFactory,
				telemetry,
				log,
			), nil
		},
	})
}
