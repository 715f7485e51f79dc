// Package runner resolves the executable a run command targets and launches it.
package runner

import (
	"fmt"
	"strings"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
)

// Target is a resolved runnable product.
type Target struct {
	Product    *domain.ResolvedProduct
	Executable string
}

// Resolve picks the single runnable product of products whose executable path ends with name.
// An empty name accepts every runnable product.
func Resolve(products []*domain.ResolvedProduct, name string) (Target, error) {
	var candidates []Target
	for _, product := range products {
		if !product.IsRunnable() {
			continue
		}
		if name != "" && !strings.HasSuffix(product.ExecutablePath, name) {
			continue
		}
		candidates = append(candidates, Target{Product: product, Executable: product.ExecutablePath})
	}

	switch len(candidates) {
	case 0:
		if name == "" {
			return Target{}, zerr.Wrap(domain.ErrNoSuitableProduct, "cannot run")
		}
		return Target{}, zerr.With(zerr.Wrap(domain.ErrNoSuchTarget, "cannot run"), "target", name)
	case 1:
		return candidates[0], nil
	default:
		paths := make([]string, 0, len(candidates))
		for _, c := range candidates {
			paths = append(paths, c.Executable)
		}
		return Target{}, zerr.With(zerr.Wrap(domain.ErrAmbiguousTarget, "cannot run"), "candidates", paths)
	}
}

// Runner launches resolved targets and shells.
type Runner struct {
	envFactory ports.RunEnvironmentFactory
	processes  ports.ProcessRunner
}

// New creates a Runner.
func New(envFactory ports.RunEnvironmentFactory, processes ports.ProcessRunner) *Runner {
	return &Runner{envFactory: envFactory, processes: processes}
}

// RunTarget resolves the target among products and runs it with args.
// It blocks until the child exits and returns its exit code unchanged.
func (r *Runner) RunTarget(products []*domain.ResolvedProduct, name string, args []string) (int, error) {
	target, err := Resolve(products, name)
	if err != nil {
		return 0, err
	}

	env, err := r.envFactory.RunEnvironment(target.Product)
	if err != nil {
		return 0, zerr.With(wrapExecution(err), "product", target.Product.Name)
	}

	code, err := r.processes.Run(target.Executable, args, env)
	if err != nil {
		return code, zerr.With(wrapExecution(err), "executable", target.Executable)
	}
	return code, nil
}

// RunShell opens an interactive shell in the run environment of product.
func (r *Runner) RunShell(product *domain.ResolvedProduct) (int, error) {
	env, err := r.envFactory.RunEnvironment(product)
	if err != nil {
		return 0, zerr.With(wrapExecution(err), "product", product.Name)
	}

	code, err := r.processes.Shell(env)
	if err != nil {
		return code, wrapExecution(err)
	}
	return code, nil
}

func wrapExecution(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrExecutionFailed, err)
}
