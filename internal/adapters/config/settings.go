package config

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/zerr"
)

// Settings environment variables.
const (
	EnvBuildDir     = "CAIRN_BUILD_DIR"
	EnvStateDir     = "CAIRN_STATE_DIR"
	EnvJobs         = "CAIRN_JOBS"
	EnvProfilesFile = "CAIRN_PROFILES_FILE"
)

// DotEnvFileName is read from the working directory when present.
const DotEnvFileName = ".env"

// Settings are tool-level settings that do not belong to a project file.
type Settings struct {
	// Root is the working directory all relative settings resolve against.
	Root         string
	BuildDir     string
	StateDir     string
	Jobs         int
	ProfilesFile string
}

// LookupFunc looks up an environment variable.
type LookupFunc func(key string) (string, bool)

// LoadSettings reads settings for root from the process environment (through lookup)
// and from root/.env. Process variables win over .env entries.
func LoadSettings(root string, lookup LookupFunc) (*Settings, error) {
	dotenv, err := godotenv.Read(filepath.Join(root, DotEnvFileName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(err, "failed to read .env file"), "path", filepath.Join(root, DotEnvFileName))
	}

	get := func(key string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(dotenv[key])
	}

	s := &Settings{
		Root:     root,
		BuildDir: resolvePath(root, firstNonEmpty(get(EnvBuildDir), domain.BuildDirName)),
		StateDir: resolvePath(root, firstNonEmpty(get(EnvStateDir), domain.StateDirName)),
	}
	s.ProfilesFile = resolvePath(root, firstNonEmpty(get(EnvProfilesFile), filepath.Join(s.StateDir, domain.ProfilesFileName)))

	if raw := get(EnvJobs); raw != "" {
		jobs, err := strconv.Atoi(raw)
		if err != nil || jobs < 1 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidArguments, "invalid job count"), EnvJobs, raw)
		}
		s.Jobs = jobs
	}
	return s, nil
}

// BuildInfoPath returns the build info store location.
func (s *Settings) BuildInfoPath() string {
	return filepath.Join(s.StateDir, domain.BuildInfoFileName)
}

// ScanCachePath returns the persisted scan cache location.
func (s *Settings) ScanCachePath() string {
	return filepath.Join(s.StateDir, domain.ScanCacheFileName)
}

func resolvePath(root, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
