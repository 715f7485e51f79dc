package ports

import "go.trai.ch/cairn/internal/core/domain"

// CompilerQuery asks a compiler about itself.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type CompilerQuery interface {
	// MachineName returns the trimmed output of `compiler -dumpmachine`.
	// It blocks until the compiler exits.
	MachineName(compilerPath string) (string, error)
}

// ExecutableFinder locates executables.
type ExecutableFinder interface {
	// FindExecutable returns the path of name in PATH, or an empty string.
	FindExecutable(name string) string
	// Exists reports whether path names an existing file.
	Exists(path string) bool
}

// ProfileStore persists toolchain profiles.
type ProfileStore interface {
	Load() ([]*domain.Profile, error)
	// Save replaces profiles of the same name and keeps the others.
	Save(profiles []*domain.Profile) error
}
