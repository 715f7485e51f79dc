package domain

// BuildState is the lifecycle state of one build pass.
type BuildState string

const (
	// BuildStateIdle is the state before the pass is requested.
	BuildStateIdle BuildState = "idle"
	// BuildStateScheduled means the pass is queued on the event loop.
	BuildStateScheduled BuildState = "scheduled"
	// BuildStateRunning means the build graph is executing.
	BuildStateRunning BuildState = "running"
	// BuildStateSucceeded means the whole selection was built.
	BuildStateSucceeded BuildState = "succeeded"
	// BuildStateFailed means the pass raised an error.
	BuildStateFailed BuildState = "failed"
)

// IsTerminal reports whether no further transition can happen.
func (s BuildState) IsTerminal() bool {
	return s == BuildStateSucceeded || s == BuildStateFailed
}

// CanTransition reports whether moving from s to next is allowed.
func (s BuildState) CanTransition(next BuildState) bool {
	switch s {
	case BuildStateIdle:
		return next == BuildStateScheduled
	case BuildStateScheduled:
		return next == BuildStateRunning
	case BuildStateRunning:
		return next == BuildStateSucceeded || next == BuildStateFailed
	default:
		return false
	}
}
