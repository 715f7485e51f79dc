// Package domain contains the core domain models of the build: resolved projects, scan results and build state.
package domain

import (
	"iter"
	"strings"

	"go.trai.ch/zerr"
)

// ProductGraph is the dependency graph of the products built in one pass.
type ProductGraph struct {
	products       map[string]*ResolvedProduct
	order          []string
	dependents     map[string][]string
	executionOrder []*ResolvedProduct
}

// NewProductGraph creates an empty graph.
func NewProductGraph() *ProductGraph {
	return &ProductGraph{
		products:   make(map[string]*ResolvedProduct),
		dependents: make(map[string][]string),
	}
}

// Add inserts a product.
// It returns an error if a product with the same key is already present.
func (g *ProductGraph) Add(p *ResolvedProduct) error {
	if _, exists := g.products[p.Key()]; exists {
		return zerr.With(zerr.Wrap(ErrDuplicateProduct, "failed to add product"), "product", p.Key())
	}
	g.products[p.Key()] = p
	g.order = append(g.order, p.Key())
	return nil
}

// AddWithDependencies inserts a product and everything it transitively depends on.
// Products already present are left alone.
func (g *ProductGraph) AddWithDependencies(p *ResolvedProduct) {
	if _, exists := g.products[p.Key()]; exists {
		return
	}
	g.products[p.Key()] = p
	g.order = append(g.order, p.Key())
	for _, dep := range p.Dependencies {
		g.AddWithDependencies(dep)
	}
}

// Len returns the number of products in the graph.
func (g *ProductGraph) Len() int {
	return len(g.products)
}

// Validate checks for cycles and missing dependencies using a topological sort.
// Products come out in insertion order whenever the dependencies allow it.
func (g *ProductGraph) Validate() error {
	g.executionOrder = make([]*ResolvedProduct, 0, len(g.products))
	g.dependents = make(map[string][]string, len(g.products))
	visited := make(map[string]int) // 0: unvisited, 1: visiting, 2: visited
	var path []string

	var visit func(key string) error
	visit = func(key string) error {
		visited[key] = 1
		path = append(path, key)

		product := g.products[key]
		for _, dep := range product.Dependencies {
			depKey := dep.Key()
			if _, exists := g.products[depKey]; !exists {
				err := zerr.With(zerr.Wrap(ErrMissingDependency, "invalid product graph"), "dependency", depKey)
				return zerr.With(err, "product", key)
			}
			g.dependents[depKey] = append(g.dependents[depKey], key)
			switch visited[depKey] {
			case 1:
				return g.buildCycleError(path, depKey)
			case 0:
				if err := visit(depKey); err != nil {
					return err
				}
			}
		}

		visited[key] = 2
		path = path[:len(path)-1]
		g.executionOrder = append(g.executionOrder, product)
		return nil
	}

	for _, key := range g.order {
		if visited[key] == 0 {
			if err := visit(key); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *ProductGraph) buildCycleError(path []string, dep string) error {
	start := 0
	for i, key := range path {
		if key == dep {
			start = i
			break
		}
	}
	cycle := append(append([]string{}, path[start:]...), dep)
	return zerr.With(zerr.Wrap(ErrCycleDetected, "invalid product graph"), "cycle", strings.Join(cycle, " -> "))
}

// Walk yields products in dependency order.
// It assumes Validate has been called and returned nil.
func (g *ProductGraph) Walk() iter.Seq[*ResolvedProduct] {
	return func(yield func(*ResolvedProduct) bool) {
		for _, p := range g.executionOrder {
			if !yield(p) {
				return
			}
		}
	}
}

// Dependents returns the keys of the products that directly depend on key.
func (g *ProductGraph) Dependents(key string) []string {
	return g.dependents[key]
}
