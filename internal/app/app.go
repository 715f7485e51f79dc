// Package app implements the command dispatcher of cairn.
package app

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/cairn/internal/engine/orchestrator"
	"go.trai.ch/cairn/internal/engine/selector"
	"go.trai.ch/zerr"
)

// Command is a built-in cairn command.
type Command string

// Built-in commands.
const (
	CommandClean      Command = "clean"
	CommandBuild      Command = "build"
	CommandRun        Command = "run"
	CommandShell      Command = "shell"
	CommandStatus     Command = "status"
	CommandProperties Command = "properties"
)

// Request is a parsed command line.
type Request struct {
	Command        Command
	ProjectFile    string
	Configurations []string
	// Products restricts the command to the named products.
	Products []string
	// Target names the executable to run, matched as a path suffix.
	Target  string
	Args    []string
	Options domain.BuildOptions
}

// TargetRunner launches built products.
type TargetRunner interface {
	RunTarget(products []*domain.ResolvedProduct, name string, args []string) (int, error)
	RunShell(product *domain.ResolvedProduct) (int, error)
}

// ScanCache is a scan result cache that can be snapshotted for persistence.
type ScanCache interface {
	ports.ScanResultCache
	Snapshot() map[string]domain.ScanResult
}

// FileWalker lists the files below a directory.
type FileWalker interface {
	WalkFiles(root string, ignores []string) iter.Seq[string]
}

// ProgressDisplay shows a build pass while it runs.
type ProgressDisplay interface {
	Start()
	// Stop returns once everything recorded during the pass has been shown.
	Stop()
}

// Paths are the locations the clean command removes.
type Paths struct {
	BuildDir      string
	BuildInfoFile string
}

// App dispatches commands to the build core.
type App struct {
	loader    ports.ProjectLoader
	graph     ports.BuildGraphExecutor
	runner    TargetRunner
	scanCache ScanCache
	scanStore ports.ScanCacheStore
	walker    FileWalker
	logger    ports.Logger
	paths     Paths
	out       io.Writer
	display   ProgressDisplay
}

// New creates a new App instance.
func New(
	loader ports.ProjectLoader,
	graph ports.BuildGraphExecutor,
	runner TargetRunner,
	scanCache ScanCache,
	scanStore ports.ScanCacheStore,
	walker FileWalker,
	logger ports.Logger,
	paths Paths,
) *App {
	return &App{
		loader:    loader,
		graph:     graph,
		runner:    runner,
		scanCache: scanCache,
		scanStore: scanStore,
		walker:    walker,
		logger:    logger,
		paths:     paths,
		out:       os.Stdout,
	}
}

// WithOutput sets where reports are written.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithDisplay sets the display shown during build passes.
func (a *App) WithDisplay(d ProgressDisplay) *App {
	a.display = d
	return a
}

// Dispatch runs req and returns the process exit code.
// For run and shell the code is the child's exit code; otherwise it is derived from the error.
func (a *App) Dispatch(ctx context.Context, req Request) (int, error) {
	var (
		code int
		err  error
	)
	switch req.Command {
	case CommandClean:
		err = a.clean()
	case CommandBuild:
		_, err = a.build(ctx, req)
	case CommandRun:
		code, err = a.run(ctx, req)
	case CommandShell:
		code, err = a.shell(ctx, req)
	case CommandStatus:
		err = a.status(ctx, req)
	case CommandProperties:
		err = a.properties(ctx, req)
	default:
		err = zerr.With(zerr.Wrap(domain.ErrCommandNotImplemented, "cannot dispatch"), "command", string(req.Command))
	}

	if err != nil {
		return int(domain.ExitCodeFor(err)), err
	}
	return code, nil
}

// clean removes the build output location and the build records that describe it.
func (a *App) clean() error {
	for _, path := range []string{a.paths.BuildDir, a.paths.BuildInfoFile} {
		if path == "" {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			return zerr.With(fmt.Errorf("%w: %w", domain.ErrCleanFailed, err), "path", path)
		}
	}
	a.logger.Info(fmt.Sprintf("Removed build directory '%s'.", a.paths.BuildDir))
	return nil
}

func (a *App) resolve(ctx context.Context, req Request) (domain.Forest, error) {
	forest, err := a.loader.Load(ctx, req.ProjectFile, req.Configurations)
	if err != nil {
		return nil, err
	}
	if len(forest) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoProjects, "nothing to do"), "path", req.ProjectFile)
	}
	return forest, nil
}

// build resolves, selects and runs one build pass. It returns the selected products.
func (a *App) build(ctx context.Context, req Request) ([]*domain.ResolvedProduct, error) {
	forest, err := a.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	selection := selector.Select(forest, req.Products, a.logger)
	var target domain.BuildTarget = domain.WholeForest{Projects: forest}
	if len(req.Products) > 0 {
		target = domain.ProductSubset{Products: selection.Products}
	}

	a.restoreScanCache()
	if a.display != nil {
		a.display.Start()
	}
	err = orchestrator.New(target, a.graph, req.Options).Run(ctx)
	if a.display != nil {
		a.display.Stop()
	}
	a.persistScanCache()
	if err != nil {
		return nil, err
	}
	return selection.Products, nil
}

// run builds and, only when the build succeeded, launches the target.
func (a *App) run(ctx context.Context, req Request) (int, error) {
	products, err := a.build(ctx, req)
	if err != nil {
		return 0, err
	}
	return a.runner.RunTarget(products, req.Target, req.Args)
}

// shell opens a shell in the environment of the first selected product.
func (a *App) shell(ctx context.Context, req Request) (int, error) {
	forest, err := a.resolve(ctx, req)
	if err != nil {
		return 0, err
	}

	var products []*domain.ResolvedProduct
	if len(req.Products) > 0 {
		products = selector.Select(forest, req.Products, a.logger).Products
	} else {
		products = forest[0].Products
	}
	if len(products) == 0 {
		return 0, zerr.With(zerr.Wrap(domain.ErrNoSuitableProduct, "cannot open shell"), "project", forest[0].ID())
	}
	return a.runner.RunShell(products[0])
}

func (a *App) restoreScanCache() {
	restored, err := a.scanStore.Load(a.scanCache)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("Ignoring persisted scan results: %v", err))
		return
	}
	if restored > 0 {
		a.logger.Info(fmt.Sprintf("Restored %d scan results.", restored))
	}
}

func (a *App) persistScanCache() {
	if err := a.scanStore.Save(a.scanCache.Snapshot()); err != nil {
		a.logger.Warn(fmt.Sprintf("Failed to persist scan results: %v", err))
	}
}
