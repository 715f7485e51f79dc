package ports

import "go.trai.ch/cairn/internal/core/domain"

// RunEnvironmentFactory builds the environment a product runs in.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type RunEnvironmentFactory interface {
	// RunEnvironment returns the working directory and variables for running product.
	RunEnvironment(product *domain.ResolvedProduct) (domain.RunEnvironment, error)

	// BuildEnvironment returns the variables product commands are executed with.
	BuildEnvironment(product *domain.ResolvedProduct) []string
}
