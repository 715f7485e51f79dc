package ports

import (
	"context"

	"go.trai.ch/cairn/internal/core/domain"
)

// ProjectLoader resolves a project file into a forest of projects.
//
//go:generate go run go.uber.org/mock/mockgen -source=project_loader.go -destination=mocks/mock_project_loader.go -package=mocks
type ProjectLoader interface {
	// Load resolves the project file once per build configuration, in the given order.
	Load(ctx context.Context, projectFile string, configurations []string) (domain.Forest, error)
}
