// Package cas implements the on-disk state of cairn: build info and persisted scan results.
package cas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildInfoStore = (*Store)(nil)

// Store implements ports.BuildInfoStore using a flat JSON file keyed by product.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.BuildInfo
}

// NewStore creates a new BuildInfoStore backed by the file at the given path.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.BuildInfo),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := readState(s.path)
	if err != nil || len(data) == 0 {
		return err
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return storeError(domain.ErrStoreReadFailed, err, s.path)
	}

	return nil
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return storeError(domain.ErrStoreWriteFailed, err, s.path)
	}

	return writeState(s.path, data)
}

// Get retrieves the build info for a product key.
func (s *Store) Get(productKey string) (*domain.BuildInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.cache[productKey]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the build info and writes the store back to disk.
func (s *Store) Put(info domain.BuildInfo) error {
	s.mu.Lock()
	s.cache[info.ProductKey] = info
	s.mu.Unlock()

	return s.save()
}

func readState(path string) ([]byte, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, storeError(domain.ErrStoreReadFailed, err, path)
	}
	return data, nil
}

func writeState(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return storeError(domain.ErrStoreWriteFailed, err, path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return storeError(domain.ErrStoreWriteFailed, err, path)
	}
	return nil
}

func storeError(kind, cause error, path string) error {
	return zerr.With(fmt.Errorf("%w: %w", kind, cause), "path", path)
}
