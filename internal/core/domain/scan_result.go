package domain

import "slices"

// ScanResult is the outcome of scanning one source file for dependencies.
// The zero value is the invalid result used for files that were never scanned.
type ScanResult struct {
	Dependencies []DependencyEntry
	Valid        bool
}

// NewScanResult returns a valid result holding a private copy of deps.
func NewScanResult(deps []DependencyEntry) ScanResult {
	return ScanResult{
		Dependencies: slices.Clone(deps),
		Valid:        true,
	}
}

// Clone returns a deep copy of the result.
func (r ScanResult) Clone() ScanResult {
	return ScanResult{
		Dependencies: slices.Clone(r.Dependencies),
		Valid:        r.Valid,
	}
}

// Equal reports whether both results carry the same validity and the same ordered dependencies.
func (r ScanResult) Equal(other ScanResult) bool {
	return r.Valid == other.Valid && slices.Equal(r.Dependencies, other.Dependencies)
}

// LocalDependencies returns the dependencies that take part in rebuild propagation.
func (r ScanResult) LocalDependencies() []DependencyEntry {
	var local []DependencyEntry
	for _, dep := range r.Dependencies {
		if dep.IsLocal() {
			local = append(local, dep)
		}
	}
	return local
}
