package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidArguments is returned when the command line cannot be parsed.
	ErrInvalidArguments = zerr.New("invalid command line")

	// ErrCommandNotImplemented is returned for commands the dispatcher does not handle.
	ErrCommandNotImplemented = zerr.New("command not implemented")

	// ErrProjectResolution is returned when a project file cannot be loaded or resolved.
	ErrProjectResolution = zerr.New("failed to resolve project")

	// ErrProjectFileNotFound is returned when the project file does not exist.
	ErrProjectFileNotFound = zerr.New("project file not found")

	// ErrDuplicateProduct is returned when a project declares two products with the same name.
	ErrDuplicateProduct = zerr.New("duplicate product")

	// ErrMissingDependency is returned when a product depends on an unknown product.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when product dependencies form a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrBuildFailed is returned when a build pass fails.
	ErrBuildFailed = zerr.New("build failed")

	// ErrBuildPassStarted is returned when an orchestrator is asked to run a second pass.
	ErrBuildPassStarted = zerr.New("build pass already started")

	// ErrProductBuildFailed is returned when the command of a single product fails.
	ErrProductBuildFailed = zerr.New("product build failed")

	// ErrScanFailed is returned when a source file cannot be scanned.
	ErrScanFailed = zerr.New("failed to scan source file")

	// ErrExecutionFailed is returned when a target or shell cannot be launched.
	ErrExecutionFailed = zerr.New("execution failed")

	// ErrNoSuitableProduct is returned when no built product is runnable.
	ErrNoSuitableProduct = zerr.New("can't find a suitable product to run")

	// ErrNoSuchTarget is returned when no runnable product matches the requested target name.
	ErrNoSuchTarget = zerr.New("no such target")

	// ErrAmbiguousTarget is returned when more than one runnable product matches.
	ErrAmbiguousTarget = zerr.New("there is more than one executable target in the project, please specify which target you want to run")

	// ErrNoProjects is returned when a command needs a resolved project and there is none.
	ErrNoProjects = zerr.New("no resolved project")

	// ErrCleanFailed is returned when the build output location cannot be removed.
	ErrCleanFailed = zerr.New("failed to remove build directory")

	// ErrStoreReadFailed is returned when persisted state cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read store")

	// ErrStoreWriteFailed is returned when persisted state cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write store")

	// ErrCompilerNotFound is returned when a compiler cannot be located.
	ErrCompilerNotFound = zerr.New("compiler not found")

	// ErrCompilerFailed is returned when querying a compiler fails.
	ErrCompilerFailed = zerr.New("failed to run compiler")

	// ErrUnsupportedPlatform is returned when a compiler targets a machine the toolchain type does not support.
	ErrUnsupportedPlatform = zerr.New("platform is not supported")
)
