// Package environment builds the process environments products are built and run in.
package environment

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RunEnvironmentFactory = (*Factory)(nil)

// PathKey is the variable executables are looked up in.
const PathKey = "PATH"

// Factory implements ports.RunEnvironmentFactory on top of a base environment.
type Factory struct {
	base []string
}

// NewFactory creates a Factory based on the current process environment.
func NewFactory() *Factory {
	return NewFactoryWithBase(os.Environ())
}

// NewFactoryWithBase creates a Factory based on the given "KEY=VALUE" entries.
func NewFactoryWithBase(base []string) *Factory {
	return &Factory{base: slices.Clone(base)}
}

// RunEnvironment merges the base environment with the product's overrides.
// Path prepends and the executable's directory go in front of PATH, and the
// working directory defaults to the executable's directory.
func (f *Factory) RunEnvironment(product *domain.ResolvedProduct) (domain.RunEnvironment, error) {
	env := toMap(f.base)
	for k, v := range product.Environment {
		env[k] = v
	}

	prepend := slices.Clone(product.PathPrepend)
	workingDir := product.WorkingDir
	if product.IsRunnable() {
		exeDir := filepath.Dir(product.ExecutablePath)
		prepend = append([]string{exeDir}, prepend...)
		if workingDir == "" {
			workingDir = exeDir
		}
	}
	if len(prepend) > 0 {
		env[PathKey] = prependPath(strings.Join(prepend, string(os.PathListSeparator)), env[PathKey])
	}

	if workingDir != "" {
		info, err := os.Stat(workingDir)
		if err != nil {
			return domain.RunEnvironment{}, zerr.With(zerr.Wrap(err, "working directory unavailable"), "dir", workingDir)
		}
		if !info.IsDir() {
			return domain.RunEnvironment{}, zerr.With(zerr.New("working directory is not a directory"), "dir", workingDir)
		}
	}

	return domain.RunEnvironment{WorkingDir: workingDir, Env: toList(env)}, nil
}

// BuildEnvironment returns the product's own variables in sorted order.
// Path prepends are carried in PATH and are meant to be put in front of the
// inherited PATH by the executor.
func (f *Factory) BuildEnvironment(product *domain.ResolvedProduct) []string {
	env := make(map[string]string, len(product.Environment)+1)
	for k, v := range product.Environment {
		env[k] = v
	}
	if len(product.PathPrepend) > 0 {
		env[PathKey] = prependPath(strings.Join(product.PathPrepend, string(os.PathListSeparator)), env[PathKey])
	}
	return toList(env)
}

// Merge layers overlay on top of base. PATH entries of overlay are prepended to the base PATH.
func Merge(base, overlay []string) []string {
	env := toMap(base)
	for _, entry := range overlay {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == PathKey {
			env[k] = prependPath(v, env[k])
			continue
		}
		env[k] = v
	}
	return toList(env)
}

func prependPath(front, path string) string {
	switch {
	case front == "":
		return path
	case path == "":
		return front
	default:
		return front + string(os.PathListSeparator) + path
	}
}

func toMap(entries []string) map[string]string {
	env := make(map[string]string, len(entries))
	for _, entry := range entries {
		if k, v, ok := strings.Cut(entry, "="); ok {
			env[k] = v
		}
	}
	return env
}

func toList(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}
