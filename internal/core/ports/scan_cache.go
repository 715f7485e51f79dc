package ports

import "go.trai.ch/cairn/internal/core/domain"

// ScanResultCache memoizes dependency scan results per source file path.
// Implementations must be safe for concurrent use.
//
//go:generate go run go.uber.org/mock/mockgen -source=scan_cache.go -destination=mocks/mock_scan_cache.go -package=mocks
type ScanResultCache interface {
	// Value returns the stored result for path, or the invalid zero result.
	Value(path string) domain.ScanResult

	// Insert stores result for path, replacing any previous value.
	Insert(path string, result domain.ScanResult)
}

// ScanCacheStore persists scan results between invocations.
type ScanCacheStore interface {
	// Load inserts every persisted result whose file is unchanged into cache.
	// It returns the number of restored entries.
	Load(cache ScanResultCache) (int, error)

	// Save persists entries together with the current content hash of each file.
	Save(entries map[string]domain.ScanResult) error
}

// ScanFingerprints records the content hash of each file at the time it was scanned.
// A cached result is only current while the file still has that hash.
type ScanFingerprints interface {
	// Fingerprint returns the hash recorded for path, if any.
	Fingerprint(path string) (uint64, bool)

	// Remember records hash for path.
	Remember(path string, hash uint64)
}
