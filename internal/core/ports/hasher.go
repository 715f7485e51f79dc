package ports

import "go.trai.ch/cairn/internal/core/domain"

// Hasher defines the interface for computing hashes.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash hashes the content of the file at path.
	ComputeFileHash(path string) (uint64, error)

	// ComputeInputHash hashes the product definition, its environment and its input files.
	ComputeInputHash(product *domain.ResolvedProduct, env []string, inputs []string) (string, error)
}
