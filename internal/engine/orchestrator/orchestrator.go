// Package orchestrator drives exactly one build pass to success or failure.
package orchestrator

import (
	"context"
	"fmt"
	"sync"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/cairn/internal/engine/eventloop"
	"go.trai.ch/zerr"
)

// Orchestrator runs one build pass for a fixed target.
type Orchestrator struct {
	target   domain.BuildTarget
	executor ports.BuildGraphExecutor
	opts     domain.BuildOptions

	mu    sync.Mutex
	state domain.BuildState
	err   error
}

// New creates an orchestrator for target. The target cannot be changed afterwards.
func New(
	target domain.BuildTarget,
	executor ports.BuildGraphExecutor,
	opts domain.BuildOptions,
) *Orchestrator {
	return &Orchestrator{
		target:   target,
		executor: executor,
		opts:     opts,
		state:    domain.BuildStateIdle,
	}
}

// State returns the current state of the pass.
func (o *Orchestrator) State() domain.BuildState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Run schedules the pass on a fresh event loop and blocks until it finished.
// The returned error wraps domain.ErrBuildFailed when the pass failed.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.mu.Lock()
	if o.state != domain.BuildStateIdle {
		o.mu.Unlock()
		return zerr.With(zerr.Wrap(domain.ErrBuildPassStarted, "cannot run build"), "state", string(o.state))
	}
	o.state = domain.BuildStateScheduled
	o.mu.Unlock()

	loop := eventloop.New()
	loop.Post(func() {
		o.setState(domain.BuildStateRunning)
		if err := o.build(ctx); err != nil {
			o.fail(err)
			loop.Exit(int(domain.ExitCodeBuildFailed))
			return
		}
		o.setState(domain.BuildStateSucceeded)
		loop.Exit(int(domain.ExitCodeOK))
	})

	if loop.Exec() != int(domain.ExitCodeOK) {
		o.mu.Lock()
		defer o.mu.Unlock()
		return o.err
	}
	return nil
}

func (o *Orchestrator) build(ctx context.Context) (err error) {
	defer zerr.Defer(func(panicErr error) {
		err = zerr.Wrap(panicErr, "build pass panicked")
	})

	switch target := o.target.(type) {
	case domain.WholeForest:
		return o.executor.BuildProjects(ctx, target.Projects, o.opts)
	case domain.ProductSubset:
		return o.executor.BuildProducts(ctx, target.Products, o.opts)
	default:
		return zerr.New(fmt.Sprintf("unknown build target %T", o.target))
	}
}

func (o *Orchestrator) fail(cause error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = domain.BuildStateFailed
	o.err = fmt.Errorf("%w: %w", domain.ErrBuildFailed, cause)
}

func (o *Orchestrator) setState(next domain.BuildState) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = next
}
