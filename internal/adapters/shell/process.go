package shell

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"runtime"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

var _ ports.ProcessRunner = (*ProcessRunner)(nil)

// Shell environment.
const (
	// ShellMarkerKey is set in every shell opened by cairn.
	ShellMarkerKey = "CAIRN_SHELL"
	// ShellPrompt is the prompt of POSIX shells opened by cairn.
	ShellPrompt = "(cairn) \\w \\$ "
	// DefaultShell is used when SHELL is unset.
	DefaultShell = "/bin/sh"
)

// ProcessRunner implements ports.ProcessRunner with blocking child processes
// attached to the given standard streams.
type ProcessRunner struct {
	logger ports.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewProcessRunner creates a ProcessRunner attached to the process's standard streams.
func NewProcessRunner(logger ports.Logger) *ProcessRunner {
	return NewProcessRunnerWithIO(logger, os.Stdin, os.Stdout, os.Stderr)
}

// NewProcessRunnerWithIO creates a ProcessRunner attached to the given streams.
func NewProcessRunnerWithIO(logger ports.Logger, stdin io.Reader, stdout, stderr io.Writer) *ProcessRunner {
	return &ProcessRunner{logger: logger, stdin: stdin, stdout: stdout, stderr: stderr}
}

// Run starts executable with args and waits for it.
// A non-zero exit is reported through the exit code, not as an error.
func (r *ProcessRunner) Run(executable string, args []string, env domain.RunEnvironment) (int, error) {
	cmd := exec.Command(executable, args...) //nolint:gosec,noctx // runs until the child exits
	return r.wait(cmd, env)
}

// Shell opens an interactive shell in env and waits for it.
func (r *ProcessRunner) Shell(env domain.RunEnvironment) (int, error) {
	if f, ok := r.stdin.(*os.File); ok && !term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		r.logger.Warn("Standard input is not a terminal, the shell will not be interactive.")
	}

	shellEnv := domain.RunEnvironment{
		WorkingDir: env.WorkingDir,
		Env:        append(append([]string(nil), env.Env...), ShellMarkerKey+"=1"),
	}

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		comspec, ok := env.Lookup("COMSPEC")
		if !ok || comspec == "" {
			comspec = "cmd.exe"
		}
		cmd = exec.Command(comspec) //nolint:gosec,noctx // runs until the shell exits
	} else {
		sh, ok := env.Lookup("SHELL")
		if !ok || sh == "" {
			sh = DefaultShell
		}
		shellEnv.Env = append(shellEnv.Env, "PS1="+ShellPrompt)
		cmd = exec.Command(sh) //nolint:gosec,noctx // runs until the shell exits
	}
	return r.wait(cmd, shellEnv)
}

func (r *ProcessRunner) wait(cmd *exec.Cmd, env domain.RunEnvironment) (int, error) {
	cmd.Dir = env.WorkingDir
	cmd.Env = env.Env
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, zerr.With(zerr.Wrap(err, "failed to start process"), "executable", cmd.Path)
	}
	return 0, nil
}
