package cas

import (
	"encoding/json"
	"maps"
	"path/filepath"
	"slices"
	"strconv"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
)

var _ ports.ScanCacheStore = (*ScanStore)(nil)

// FileHasher hashes file contents.
type FileHasher interface {
	ComputeFileHash(path string) (uint64, error)
}

type scanFile struct {
	Hash         string          `json:"hash"`
	Dependencies []dependencyDTO `json:"dependencies,omitempty"`
}

type dependencyDTO struct {
	Dir     string `json:"dir,omitempty"`
	File    string `json:"file"`
	IsLocal bool   `json:"is_local,omitempty"`
	IsClean bool   `json:"is_clean"`
}

// ScanStore persists scan results in a JSON file together with the content hash each
// file had when it was scanned, so results for unchanged files survive between invocations.
type ScanStore struct {
	path         string
	hasher       FileHasher
	fingerprints ports.ScanFingerprints
}

// NewScanStore creates a ScanStore backed by the file at path.
// fingerprints is shared with the scanner that fills the cache.
func NewScanStore(path string, hasher FileHasher, fingerprints ports.ScanFingerprints) *ScanStore {
	return &ScanStore{path: filepath.Clean(path), hasher: hasher, fingerprints: fingerprints}
}

// Load inserts every persisted result whose file still has the recorded content hash
// and remembers that hash. Results for changed or vanished files are dropped.
func (s *ScanStore) Load(cache ports.ScanResultCache) (int, error) {
	data, err := readState(s.path)
	if err != nil || len(data) == 0 {
		return 0, err
	}

	var files map[string]scanFile
	if err := json.Unmarshal(data, &files); err != nil {
		return 0, storeError(domain.ErrStoreReadFailed, err, s.path)
	}

	restored := 0
	for _, path := range slices.Sorted(maps.Keys(files)) {
		file := files[path]
		hash, err := s.hasher.ComputeFileHash(path)
		if err != nil || formatHash(hash) != file.Hash {
			continue
		}

		deps := make([]domain.DependencyEntry, 0, len(file.Dependencies))
		for _, d := range file.Dependencies {
			deps = append(deps, domain.RestoreDependencyEntry(d.Dir, d.File, d.IsLocal, d.IsClean))
		}
		cache.Insert(path, domain.NewScanResult(deps))
		s.fingerprints.Remember(path, hash)
		restored++
	}
	return restored, nil
}

// Save writes the valid entries under the hash recorded when they were scanned.
// Entries without a recorded hash are skipped.
func (s *ScanStore) Save(entries map[string]domain.ScanResult) error {
	files := make(map[string]scanFile, len(entries))
	for path, result := range entries {
		if !result.Valid {
			continue
		}
		hash, ok := s.fingerprints.Fingerprint(path)
		if !ok {
			continue
		}

		file := scanFile{Hash: formatHash(hash)}
		for _, dep := range result.Dependencies {
			file.Dependencies = append(file.Dependencies, dependencyDTO{
				Dir:     dep.DirPath(),
				File:    dep.FileName(),
				IsLocal: dep.IsLocal(),
				IsClean: dep.IsClean(),
			})
		}
		files[path] = file
	}

	data, err := json.MarshalIndent(files, "", "  ")
	if err != nil {
		return storeError(domain.ErrStoreWriteFailed, err, s.path)
	}
	return writeState(s.path, data)
}

func formatHash(hash uint64) string {
	return strconv.FormatUint(hash, 16)
}
