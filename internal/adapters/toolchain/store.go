package toolchain

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ProfileStore = (*FileStore)(nil)

type profilesFile struct {
	Profiles []*domain.Profile `yaml:"profiles"`
}

// FileStore implements ports.ProfileStore on a YAML file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: filepath.Clean(path)}
}

// Load returns the stored profiles. A missing file holds no profiles.
func (s *FileStore) Load() ([]*domain.Profile, error) {
	data, err := os.ReadFile(s.path) //nolint:gosec // path comes from settings
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, storeError(domain.ErrStoreReadFailed, err, s.path)
	}

	var file profilesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, storeError(domain.ErrStoreReadFailed, err, s.path)
	}
	return file.Profiles, nil
}

// Save replaces stored profiles of the same name and keeps the others, sorted by name.
func (s *FileStore) Save(profiles []*domain.Profile) error {
	existing, err := s.Load()
	if err != nil {
		return err
	}

	byName := make(map[string]*domain.Profile, len(existing)+len(profiles))
	for _, p := range existing {
		byName[p.Name] = p
	}
	for _, p := range profiles {
		byName[p.Name] = p
	}

	file := profilesFile{Profiles: make([]*domain.Profile, 0, len(byName))}
	for _, p := range byName {
		file.Profiles = append(file.Profiles, p)
	}
	slices.SortFunc(file.Profiles, func(a, b *domain.Profile) int {
		return strings.Compare(a.Name, b.Name)
	})

	data, err := yaml.Marshal(&file)
	if err != nil {
		return storeError(domain.ErrStoreWriteFailed, err, s.path)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return storeError(domain.ErrStoreWriteFailed, err, s.path)
	}
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return storeError(domain.ErrStoreWriteFailed, err, s.path)
	}
	return nil
}

func storeError(kind, cause error, path string) error {
	return zerr.With(fmt.Errorf("%w: %w", kind, cause), "path", path)
}
