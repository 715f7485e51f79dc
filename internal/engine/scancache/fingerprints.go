package scancache

import (
	"sync"

	"go.trai.ch/cairn/internal/core/ports"
)

var _ ports.ScanFingerprints = (*Fingerprints)(nil)

// Fingerprints records the content hash each cached file had when it was scanned.
type Fingerprints struct {
	mu     sync.RWMutex
	hashes map[string]uint64
}

// NewFingerprints creates an empty registry.
func NewFingerprints() *Fingerprints {
	return &Fingerprints{hashes: make(map[string]uint64)}
}

// Fingerprint returns the hash recorded for path.
func (f *Fingerprints) Fingerprint(path string) (uint64, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	hash, ok := f.hashes[path]
	return hash, ok
}

// Remember records hash for path, replacing any previous one.
func (f *Fingerprints) Remember(path string, hash uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hashes[path] = hash
}
