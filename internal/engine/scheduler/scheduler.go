// Package scheduler executes build passes over the product dependency graph.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"sync"
	"time"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.BuildGraphExecutor = (*Scheduler)(nil)

// Scheduler builds products in dependency order with bounded parallelism.
type Scheduler struct {
	scanner    ports.DependencyScanner
	hasher     ports.Hasher
	store      ports.BuildInfoStore
	verifier   ports.Verifier
	executor   ports.Executor
	envFactory ports.RunEnvironmentFactory
	telemetry  ports.Telemetry
	logger     ports.Logger

	mu     sync.RWMutex
	status map[string]domain.ProductStatus
}

// NewScheduler creates a new Scheduler.
func NewScheduler(
	scanner ports.DependencyScanner,
	hasher ports.Hasher,
	store ports.BuildInfoStore,
	verifier ports.Verifier,
	executor ports.Executor,
	envFactory ports.RunEnvironmentFactory,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Scheduler {
	return &Scheduler{
		scanner:    scanner,
		hasher:     hasher,
		store:      store,
		verifier:   verifier,
		executor:   executor,
		envFactory: envFactory,
		telemetry:  telemetry,
		logger:     logger,
		status:     make(map[string]domain.ProductStatus),
	}
}

// BuildProjects builds every product of projects.
func (s *Scheduler) BuildProjects(ctx context.Context, projects domain.Forest, opts domain.BuildOptions) error {
	g := domain.NewProductGraph()
	for _, p := range projects.Products() {
		if err := g.Add(p); err != nil {
			return err
		}
	}
	return s.run(ctx, g, opts)
}

// BuildProducts builds products and everything they depend on.
func (s *Scheduler) BuildProducts(
	ctx context.Context,
	products []*domain.ResolvedProduct,
	opts domain.BuildOptions,
) error {
	g := domain.NewProductGraph()
	for _, p := range products {
		g.AddWithDependencies(p)
	}
	return s.run(ctx, g, opts)
}

// Status returns the status of the product with the given key in the last pass.
func (s *Scheduler) Status(key string) domain.ProductStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status[key]
}

func (s *Scheduler) updateStatus(key string, status domain.ProductStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[key] = status
}

func (s *Scheduler) run(ctx context.Context, g *domain.ProductGraph, opts domain.BuildOptions) error {
	if err := g.Validate(); err != nil {
		return err
	}

	ctx, vertex := s.telemetry.Record(ctx, "build")
	state := s.newRunState(ctx, g, opts)
	for p := range g.Walk() {
		s.updateStatus(p.Key(), domain.ProductStatusPending)
	}

	for !state.isDone() {
		state.schedule()
		if state.isDone() {
			break
		}
		state.handleResult(<-state.resultsCh)
	}

	s.logger.Info(s.summary(g))
	vertex.Complete(state.errs)
	return state.errs
}

func (s *Scheduler) summary(g *domain.ProductGraph) string {
	counts := make(map[domain.ProductStatus]int)
	for p := range g.Walk() {
		counts[s.Status(p.Key())]++
	}
	return fmt.Sprintf("Build pass finished: %d built, %d up to date, %d skipped, %d failed, %d not started.",
		counts[domain.ProductStatusBuilt],
		counts[domain.ProductStatusUpToDate],
		counts[domain.ProductStatusSkipped],
		counts[domain.ProductStatusFailed],
		counts[domain.ProductStatusPending])
}

type result struct {
	key string
	err error
}

type runState struct {
	s         *Scheduler
	ctx       context.Context
	opts      domain.BuildOptions
	graph     *domain.ProductGraph
	products  map[string]*domain.ResolvedProduct
	inDegree  map[string]int
	ready     []string
	active    int
	jobs      int
	resultsCh chan result
	errs      error
}

func (s *Scheduler) newRunState(ctx context.Context, g *domain.ProductGraph, opts domain.BuildOptions) *runState {
	jobs := opts.MaxJobs
	if jobs < 1 {
		jobs = runtime.NumCPU()
	}

	state := &runState{
		s:         s,
		ctx:       ctx,
		opts:      opts,
		graph:     g,
		products:  make(map[string]*domain.ResolvedProduct, g.Len()),
		inDegree:  make(map[string]int, g.Len()),
		jobs:      jobs,
		resultsCh: make(chan result, jobs),
	}
	for p := range g.Walk() {
		state.products[p.Key()] = p
		state.inDegree[p.Key()] = len(p.Dependencies)
		if len(p.Dependencies) == 0 {
			state.ready = append(state.ready, p.Key())
		}
	}
	return state
}

func (state *runState) isDone() bool {
	return state.active == 0 && len(state.ready) == 0
}

func (state *runState) schedule() {
	for len(state.ready) > 0 && state.active < state.jobs {
		key := state.ready[0]
		state.ready = state.ready[1:]

		state.active++
		state.s.updateStatus(key, domain.ProductStatusRunning)

		go func(p *domain.ResolvedProduct) {
			state.resultsCh <- result{key: p.Key(), err: state.buildProduct(p)}
		}(state.products[key])
	}
}

func (state *runState) handleResult(res result) {
	state.active--
	if res.err != nil {
		wrapped := zerr.With(fmt.Errorf("%w: %w", domain.ErrProductBuildFailed, res.err), "product", res.key)
		state.errs = errors.Join(state.errs, wrapped)
		state.s.updateStatus(res.key, domain.ProductStatusFailed)
		return
	}
	for _, dependent := range state.graph.Dependents(res.key) {
		state.inDegree[dependent]--
		if state.inDegree[dependent] == 0 {
			state.ready = append(state.ready, dependent)
		}
	}
}

func (state *runState) buildProduct(p *domain.ResolvedProduct) (err error) {
	ctx, vertex := state.s.telemetry.Record(state.ctx, p.Key())
	defer func() {
		if state.s.Status(p.Key()) == domain.ProductStatusUpToDate {
			vertex.Cached()
		}
		vertex.Complete(err)
	}()

	inputs, err := state.collectInputs(ctx, p)
	if err != nil {
		return err
	}

	env := state.s.envFactory.BuildEnvironment(p)
	inputHash, err := state.s.hasher.ComputeInputHash(p, env, inputs)
	if err != nil {
		return err
	}

	if !state.opts.Force {
		upToDate, err := state.isUpToDate(p, inputHash)
		if err != nil {
			return err
		}
		if upToDate {
			state.s.updateStatus(p.Key(), domain.ProductStatusUpToDate)
			return nil
		}
	}

	if state.opts.DryRun {
		vertex.Log(domain.LogLevelInfo, fmt.Sprintf("would build %s", p.Key()))
		state.s.updateStatus(p.Key(), domain.ProductStatusSkipped)
		return nil
	}

	if err := state.s.executor.Execute(ctx, p, env); err != nil {
		return err
	}

	if err := state.storeBuildInfo(p, inputHash); err != nil {
		return err
	}
	state.s.updateStatus(p.Key(), domain.ProductStatusBuilt)
	return nil
}

// collectInputs scans the sources of p and follows local dependencies transitively.
// Sources and headers are scanned in parallel, at most MaxJobs at a time.
func (state *runState) collectInputs(ctx context.Context, p *domain.ResolvedProduct) ([]string, error) {
	seen := make(map[string]bool, len(p.Sources))
	frontier := make([]string, 0, len(p.Sources))
	for _, src := range p.Sources {
		if !seen[src] {
			seen[src] = true
			frontier = append(frontier, src)
		}
	}

	for len(frontier) > 0 {
		results := make([]domain.ScanResult, len(frontier))
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(state.jobs)
		for i, path := range frontier {
			g.Go(func() error {
				res, err := state.s.scanner.Scan(gctx, path, p.IncludePath)
				if err != nil {
					if !errors.Is(err, domain.ErrScanFailed) {
						err = zerr.With(fmt.Errorf("%w: %w", domain.ErrScanFailed, err), "path", path)
					}
					return err
				}
				results[i] = res
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		var next []string
		for _, res := range results {
			for _, dep := range res.LocalDependencies() {
				if path := filepath.FromSlash(dep.FilePath()); !seen[path] {
					seen[path] = true
					next = append(next, path)
				}
			}
		}
		frontier = next
	}

	inputs := make([]string, 0, len(seen))
	for path := range seen {
		inputs = append(inputs, path)
	}
	slices.Sort(inputs)
	return inputs, nil
}

func (state *runState) isUpToDate(p *domain.ResolvedProduct, inputHash string) (bool, error) {
	info, err := state.s.store.Get(p.Key())
	if err != nil {
		return false, err
	}
	if info == nil || info.InputHash != inputHash {
		return false, nil
	}
	if !p.IsRunnable() {
		return true, nil
	}
	return state.s.verifier.VerifyOutputs("", []string{p.ExecutablePath})
}

func (state *runState) storeBuildInfo(p *domain.ResolvedProduct, inputHash string) error {
	var outputHash string
	if p.IsRunnable() {
		h, err := state.s.hasher.ComputeFileHash(p.ExecutablePath)
		if err != nil {
			return zerr.Wrap(err, "failed to compute output hash")
		}
		outputHash = fmt.Sprintf("%016x", h)
	}

	info := domain.BuildInfo{
		ProductKey: p.Key(),
		InputHash:  inputHash,
		OutputHash: outputHash,
		Timestamp:  time.Now(),
	}
	if err := state.s.store.Put(info); err != nil {
		return zerr.Wrap(err, "failed to store build info")
	}
	return nil
}
