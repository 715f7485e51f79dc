// Package shell runs product commands, interactive processes and sub-tools.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/cairn/internal/adapters/environment"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the product's command in its source directory.
// env is layered over the process environment; its PATH is prepended to the inherited one.
// Output goes to the vertex carried by ctx, or line by line to the logger.
func (e *Executor) Execute(ctx context.Context, product *domain.ResolvedProduct, env []string) error {
	if len(product.Command) == 0 {
		return nil
	}

	name := product.Command[0]
	args := product.Command[1:]
	cmdEnv := environment.Merge(os.Environ(), env)

	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // user provided command
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	cmd.Dir = product.SourceDir
	cmd.Env = cmdEnv

	stdout, stderr := e.outputs(ctx)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	err := cmd.Run()
	flush(stdout, stderr)

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
		return zerr.With(err, "command", strings.Join(product.Command, " "))
	}

	return nil
}

func (e *Executor) outputs(ctx context.Context) (stdout, stderr io.Writer) {
	if v, ok := ports.VertexFromContext(ctx); ok {
		return v.Stdout(), v.Stderr()
	}
	return &logWriter{emit: e.logger.Info}, &logWriter{emit: e.logger.Warn}
}

func flush(writers ...io.Writer) {
	for _, w := range writers {
		if lw, ok := w.(*logWriter); ok {
			lw.Flush()
		}
	}
}

// logWriter emits complete lines. A trailing partial line is kept until Flush.
type logWriter struct {
	emit func(msg string)
	mu   sync.Mutex
	buf  bytes.Buffer
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Put the partial line back.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(strings.TrimRight(line, "\r\n"))
	}
	return len(p), nil
}

// Flush emits any buffered partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	path, ok := domain.RunEnvironment{Env: env}.Lookup(environment.PathKey)
	if !ok || path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
