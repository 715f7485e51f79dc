package domain

// ProductStatus is the outcome of one product within a build pass.
type ProductStatus string

const (
	// ProductStatusPending means the product waits for its dependencies.
	ProductStatusPending ProductStatus = "pending"
	// ProductStatusRunning means the product is being scanned or built.
	ProductStatusRunning ProductStatus = "running"
	// ProductStatusBuilt means the product command ran successfully.
	ProductStatusBuilt ProductStatus = "built"
	// ProductStatusUpToDate means recorded build information matched and nothing ran.
	ProductStatusUpToDate ProductStatus = "up-to-date"
	// ProductStatusFailed means scanning, hashing or the command failed.
	ProductStatusFailed ProductStatus = "failed"
	// ProductStatusSkipped means the command was not run because of a dry run.
	ProductStatusSkipped ProductStatus = "skipped"
)

// IsTerminal reports whether the product is done.
func (s ProductStatus) IsTerminal() bool {
	switch s {
	case ProductStatusBuilt, ProductStatusUpToDate, ProductStatusFailed, ProductStatusSkipped:
		return true
	default:
		return false
	}
}

// LogLevel is the severity of a message recorded on a telemetry vertex.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
