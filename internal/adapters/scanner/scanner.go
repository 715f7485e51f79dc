// Package scanner discovers the header dependencies of C and C++ sources.
package scanner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependencyScanner = (*IncludeScanner)(nil)

var includePattern = regexp.MustCompile(`^\s*#\s*include\s*([<"])([^>"]+)[>"]`)

// FileHasher hashes file contents.
type FileHasher interface {
	ComputeFileHash(path string) (uint64, error)
}

// IncludeScanner scans sources for #include directives.
//
// The cache holds every include as written, with IsLocal marking the quoted form,
// so one entry serves any set of include paths. Scan resolves the cached includes
// on every call: a quoted include found next to the source or on an include path
// is local and carries the resolved path, everything else is returned as written.
type IncludeScanner struct {
	cache        ports.ScanResultCache
	fingerprints ports.ScanFingerprints
	hasher       FileHasher
}

// New creates an IncludeScanner memoizing into cache. fingerprints holds the
// content hash of each cached file at scan time.
func New(cache ports.ScanResultCache, fingerprints ports.ScanFingerprints, hasher FileHasher) *IncludeScanner {
	return &IncludeScanner{
		cache:        cache,
		fingerprints: fingerprints,
		hasher:       hasher,
	}
}

// Scan returns the dependencies of the file at path resolved against includePaths.
// The cached includes are reused while the file has the hash recorded when it was scanned.
func (s *IncludeScanner) Scan(ctx context.Context, path string, includePaths []string) (domain.ScanResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ScanResult{}, err
	}

	// The hash is taken before the file is read, so an edit in between cannot hide behind it.
	hash, err := s.hasher.ComputeFileHash(path)
	if err != nil {
		return domain.ScanResult{}, scanError(err, path)
	}

	includes := s.cache.Value(path)
	if recorded, ok := s.fingerprints.Fingerprint(path); !includes.Valid || !ok || recorded != hash {
		deps, err := scanFile(path)
		if err != nil {
			return domain.ScanResult{}, scanError(err, path)
		}
		includes = domain.NewScanResult(deps)
		s.cache.Insert(path, includes)
		s.fingerprints.Remember(path, hash)
	}

	return resolve(includes, filepath.Dir(path), includePaths), nil
}

// scanFile lists the includes of path as written, without duplicates.
func scanFile(path string) ([]domain.DependencyEntry, error) {
	f, err := os.Open(path) //nolint:gosec // sources come from the project file
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck // read only

	var deps []domain.DependencyEntry
	seen := make(map[domain.DependencyEntry]bool)

	lines := bufio.NewScanner(f)
	lines.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for lines.Scan() {
		match := includePattern.FindStringSubmatch(lines.Text())
		if match == nil {
			continue
		}

		entry := domain.NewDependencyEntry(match[2], match[1] == `"`)
		if !seen[entry] {
			seen[entry] = true
			deps = append(deps, entry)
		}
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}
	return deps, nil
}

func resolve(includes domain.ScanResult, dir string, includePaths []string) domain.ScanResult {
	deps := make([]domain.DependencyEntry, 0, len(includes.Dependencies))
	seen := make(map[string]bool, len(includes.Dependencies))
	for _, include := range includes.Dependencies {
		entry := resolveInclude(include, dir, includePaths)
		if key := entry.FilePath(); !seen[key] {
			seen[key] = true
			deps = append(deps, entry)
		}
	}
	return domain.NewScanResult(deps)
}

func resolveInclude(include domain.DependencyEntry, dir string, includePaths []string) domain.DependencyEntry {
	if !include.IsLocal() {
		return include
	}

	name := include.FilePath()
	candidates := make([]string, 0, len(includePaths)+1)
	candidates = append(candidates, dir)
	candidates = append(candidates, includePaths...)
	for _, base := range candidates {
		candidate := filepath.Join(base, filepath.FromSlash(name))
		if isFile(candidate) {
			resolved := domain.NewDependencyEntry(filepath.ToSlash(candidate), true)
			return domain.RestoreDependencyEntry(resolved.DirPath(), resolved.FileName(), true, include.IsClean())
		}
	}
	return domain.RestoreDependencyEntry(include.DirPath(), include.FileName(), false, include.IsClean())
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func scanError(err error, path string) error {
	if errors.Is(err, fs.ErrNotExist) {
		err = zerr.Wrap(err, "source file missing")
	}
	return zerr.With(fmt.Errorf("%w: %w", domain.ErrScanFailed, err), "path", path)
}
