package ports

import (
	"context"

	"go.trai.ch/cairn/internal/core/domain"
)

// BuildGraphExecutor runs a build pass over resolved products.
//
//go:generate go run go.uber.org/mock/mockgen -source=build_graph.go -destination=mocks/mock_build_graph.go -package=mocks
type BuildGraphExecutor interface {
	// BuildProjects builds every product of the given projects.
	BuildProjects(ctx context.Context, projects domain.Forest, opts domain.BuildOptions) error

	// BuildProducts builds the given products and the products they depend on.
	BuildProducts(ctx context.Context, products []*domain.ResolvedProduct, opts domain.BuildOptions) error
}
