package ports

// InputResolver expands source patterns into file paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type InputResolver interface {
	// ResolveInputs resolves the given patterns relative to root.
	ResolveInputs(inputs []string, root string) ([]string, error)
}
