package shell

import (
	"os"
	"strings"

	"go.trai.ch/cairn/internal/adapters/environment"
	"go.trai.ch/cairn/internal/core/domain"
)

// ToolLauncher runs cooperating cairn-<name> executables.
type ToolLauncher struct {
	selfDir string
	runner  *ProcessRunner
}

// NewToolLauncher creates a ToolLauncher that searches selfDir before PATH.
func NewToolLauncher(selfDir string, runner *ProcessRunner) *ToolLauncher {
	return &ToolLauncher{selfDir: selfDir, runner: runner}
}

// TryRun executes the sub-tool named by args[0] with the remaining arguments.
// ok is false when no such sub-tool exists or it cannot be started; the caller
// then handles args itself.
func (l *ToolLauncher) TryRun(args []string) (code int, ok bool) {
	if len(args) == 0 || args[0] == "" || strings.ContainsAny(args[0], `/\`) {
		return 0, false
	}

	env := environment.Merge(os.Environ(), []string{environment.PathKey + "=" + l.selfDir})
	executable, err := lookPath(domain.SubToolPrefix+args[0], env)
	if err != nil {
		return 0, false
	}

	code, err = l.runner.Run(executable, args[1:], domain.RunEnvironment{Env: env})
	if err != nil {
		return 0, false
	}
	return code, true
}
