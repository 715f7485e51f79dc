package ports

import (
	"context"

	"go.trai.ch/cairn/internal/core/domain"
)

// DependencyScanner discovers the files a source file depends on.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type DependencyScanner interface {
	// Scan returns the dependencies of the source file at path.
	// includePaths are searched for quoted includes that are not found next to the file.
	Scan(ctx context.Context, path string, includePaths []string) (domain.ScanResult, error)
}
