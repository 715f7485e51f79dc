package ports

import "go.trai.ch/cairn/internal/core/domain"

// ProcessRunner launches interactive child processes and waits for them.
// Calls block until the child exits; there is no timeout.
//
//go:generate go run go.uber.org/mock/mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type ProcessRunner interface {
	// Run starts executable with args in env and returns its exit code.
	Run(executable string, args []string, env domain.RunEnvironment) (int, error)

	// Shell opens an interactive shell in env and returns its exit code.
	Shell(env domain.RunEnvironment) (int, error)
}
