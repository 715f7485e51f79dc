// Package toolchain detects compilers and records them as build profiles.
package toolchain

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.CompilerQuery    = (*DumpMachineQuery)(nil)
	_ ports.ExecutableFinder = (*PathFinder)(nil)
)

// DumpMachineQuery implements ports.CompilerQuery by running the compiler.
type DumpMachineQuery struct{}

// MachineName runs `compilerPath -dumpmachine` and waits for it without a timeout.
func (DumpMachineQuery) MachineName(compilerPath string) (string, error) {
	var out bytes.Buffer
	cmd := exec.Command(compilerPath, "-dumpmachine") //nolint:gosec,noctx // compiler path comes from the user
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Start(); err != nil {
		return "", zerr.With(fmt.Errorf("%w: %w", domain.ErrCompilerFailed, zerr.Wrap(err, "failed to start compiler")), "compiler", compilerPath)
	}
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			err = zerr.With(zerr.Wrap(err, strings.TrimSpace(out.String())), "exit_code", exitErr.ExitCode())
		}
		return "", zerr.With(fmt.Errorf("%w: %w", domain.ErrCompilerFailed, err), "compiler", compilerPath)
	}
	return strings.TrimSpace(out.String()), nil
}

// PathFinder implements ports.ExecutableFinder on the process PATH.
type PathFinder struct{}

// FindExecutable returns the path of name in PATH, or an empty string.
func (PathFinder) FindExecutable(name string) string {
	path, err := exec.LookPath(name)
	if err != nil {
		return ""
	}
	return path
}

// Exists reports whether path names an existing file.
func (PathFinder) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
