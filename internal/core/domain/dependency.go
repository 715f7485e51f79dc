package domain

import "strings"

// DependencyEntry is a single file dependency discovered while scanning a source file.
// Entries are immutable once constructed.
type DependencyEntry struct {
	dirPath  InternedString
	fileName InternedString
	isLocal  bool
	isClean  bool
}

// DefaultDependencyEntry returns an empty, non-local entry that is marked clean.
func DefaultDependencyEntry() DependencyEntry {
	return DependencyEntry{isClean: true}
}

// NewDependencyEntry splits filePath at its last separator into directory and file name.
// Local dependencies are project-relative and take part in rebuild propagation.
func NewDependencyEntry(filePath string, isLocal bool) DependencyEntry {
	dir, name := splitFilePath(filePath)
	return DependencyEntry{
		dirPath:  NewInternedString(dir),
		fileName: NewInternedString(name),
		isLocal:  isLocal,
		isClean:  true,
	}
}

// RestoreDependencyEntry rebuilds an entry from its stored parts.
// It is meant for persistence layers that need to carry the clean flag through unchanged.
func RestoreDependencyEntry(dirPath, fileName string, isLocal, isClean bool) DependencyEntry {
	return DependencyEntry{
		dirPath:  NewInternedString(dirPath),
		fileName: NewInternedString(fileName),
		isLocal:  isLocal,
		isClean:  isClean,
	}
}

// DirPath returns the directory part of the dependency, possibly empty.
func (d DependencyEntry) DirPath() string {
	return d.dirPath.String()
}

// FileName returns the file name part of the dependency.
func (d DependencyEntry) FileName() string {
	return d.fileName.String()
}

// FilePath returns the file name when the directory is empty, the directory joined with
// the file name by "/" otherwise.
func (d DependencyEntry) FilePath() string {
	if d.dirPath.String() == "" {
		return d.fileName.String()
	}
	return d.dirPath.String() + "/" + d.fileName.String()
}

// IsLocal reports whether the dependency is project-relative.
func (d DependencyEntry) IsLocal() bool {
	return d.isLocal
}

// IsClean reports the clean flag as set by the scanner.
func (d DependencyEntry) IsClean() bool {
	return d.isClean
}

func splitFilePath(filePath string) (dir, name string) {
	i := strings.LastIndexByte(filePath, '/')
	if i <= 0 {
		// A path directly under the root keeps its slash in the file name.
		return "", filePath
	}
	return filePath[:i], filePath[i+1:]
}
