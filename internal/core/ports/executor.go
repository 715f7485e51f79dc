// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/cairn/internal/core/domain"
)

// Executor defines the interface for running product build commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command of product.
	//
	// The env parameter contains environment variables in "KEY=VALUE" format.
	// It returns an error if the command cannot be started or exits non-zero.
	Execute(ctx context.Context, product *domain.ResolvedProduct, env []string) error
}
