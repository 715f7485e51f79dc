package fs

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements the InputResolver interface using filepath.Glob.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveInputs resolves the given input patterns to a list of absolute file paths.
// Patterns keep their declared order and the matches of one pattern are sorted.
// Literal paths are kept even when the file does not exist yet, so a missing
// source surfaces as a scan failure during the build.
func (r *Resolver) ResolveInputs(inputs []string, root string) ([]string, error) {
	seen := make(map[string]bool, len(inputs))
	result := make([]string, 0, len(inputs))
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			result = append(result, path)
		}
	}

	for _, input := range inputs {
		path := input
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, input)
		}

		if !isGlob(input) {
			add(filepath.Clean(path))
			continue
		}

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", path)
		}
		slices.Sort(matches)
		for _, match := range matches {
			add(match)
		}
	}

	return result, nil
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}
