package domain

import "path/filepath"

const (
	// ToolName is the name of the command and the prefix of its sub-tools.
	ToolName = "cairn"

	// SubToolPrefix is prepended to unknown command names to find cooperating executables.
	SubToolPrefix = ToolName + "-"

	// ProjectFileName is the default project file.
	ProjectFileName = "cairn.yaml"

	// BuildDirName is the build output location, relative to the working directory.
	BuildDirName = "build"

	// StateDirName holds persisted build state.
	StateDirName = ".cairn"

	// BuildInfoFileName stores product build records.
	BuildInfoFileName = "build-info.json"

	// ScanCacheFileName stores persisted scan results.
	ScanCacheFileName = "scan-cache.json"

	// ProfilesFileName stores toolchain profiles.
	ProfilesFileName = "profiles.yaml"

	// DefaultConfiguration is used when no build configuration is requested.
	DefaultConfiguration = "default"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultBuildPath returns the build output location below root.
func DefaultBuildPath(root string) string {
	return filepath.Join(root, BuildDirName)
}

// DefaultBuildInfoPath returns the build info store below root.
func DefaultBuildInfoPath(root string) string {
	return filepath.Join(root, StateDirName, BuildInfoFileName)
}

// DefaultScanCachePath returns the persisted scan cache below root.
func DefaultScanCachePath(root string) string {
	return filepath.Join(root, StateDirName, ScanCacheFileName)
}

// DefaultProfilesPath returns the toolchain profile file below root.
func DefaultProfilesPath(root string) string {
	return filepath.Join(root, StateDirName, ProfilesFileName)
}
