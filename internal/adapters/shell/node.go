package shell

import (
	"context"
	"os"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/cairn/internal/adapters/logger"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// NodeID is the unique identifier for the product command executor Graft node.
	NodeID graft.ID = "adapter.executor"
	// ProcessRunnerNodeID is the unique identifier for the process runner Graft node.
	ProcessRunnerNodeID graft.ID = "adapter.process_runner"
	// LauncherNodeID is the unique identifier for the sub-tool launcher Graft node.
	LauncherNodeID graft.ID = "adapter.tool_launcher"
)

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log), nil
		},
	})

	graft.Register(graft.Node[*ProcessRunner]{
		ID:        ProcessRunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*ProcessRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProcessRunner(log), nil
		},
	})

	graft.Register(graft.Node[*ToolLauncher]{
		ID:        LauncherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ProcessRunnerNodeID},
		Run: func(ctx context.Context) (*ToolLauncher, error) {
			runner, err := graft.Dep[*ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}
			self, err := os.Executable()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to locate the running executable")
			}
			return NewToolLauncher(filepath.Dir(self), runner), nil
		},
	})
}
