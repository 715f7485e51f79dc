package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/zerr"
)

func product(name string, deps ...*domain.ResolvedProduct) *domain.ResolvedProduct {
	return &domain.ResolvedProduct{Name: name, ProjectID: "demo@default", Dependencies: deps}
}

func walkNames(g *domain.ProductGraph) []string {
	var names []string
	for p := range g.Walk() {
		names = append(names, p.Name)
	}
	return names
}

func TestProductGraph_Add(t *testing.T) {
	g := domain.NewProductGraph()
	p := product("app")

	require.NoError(t, g.Add(p))
	err := g.Add(p)
	require.ErrorIs(t, err, domain.ErrDuplicateProduct)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "demo@default/app", zErr.Metadata()["product"])
}

func TestProductGraph_Walk(t *testing.T) {
	// app -> lib -> core, tool -> core
	core := product("core")
	lib := product("lib", core)
	app := product("app", lib)
	tool := product("tool", core)

	g := domain.NewProductGraph()
	for _, p := range []*domain.ResolvedProduct{app, tool, lib, core} {
		require.NoError(t, g.Add(p))
	}
	require.NoError(t, g.Validate())

	assert.Equal(t, []string{"core", "lib", "app", "tool"}, walkNames(g))
	dependents := g.Dependents(core.Key())
	slices.Sort(dependents)
	assert.Equal(t, []string{"demo@default/lib", "demo@default/tool"}, dependents)
}

func TestProductGraph_AddWithDependencies(t *testing.T) {
	core := product("core")
	lib := product("lib", core)
	app := product("app", lib, core)

	g := domain.NewProductGraph()
	g.AddWithDependencies(app)
	g.AddWithDependencies(lib)

	require.NoError(t, g.Validate())
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []string{"core", "lib", "app"}, walkNames(g))
}

func TestProductGraph_Validate_MissingDependency(t *testing.T) {
	g := domain.NewProductGraph()
	require.NoError(t, g.Add(product("app", product("lib"))))

	err := g.Validate()
	require.ErrorIs(t, err, domain.ErrMissingDependency)
}

func TestProductGraph_Validate_Cycle(t *testing.T) {
	a := product("a")
	b := product("b", a)
	a.Dependencies = []*domain.ResolvedProduct{b}

	g := domain.NewProductGraph()
	require.NoError(t, g.Add(a))
	require.NoError(t, g.Add(b))

	err := g.Validate()
	require.ErrorIs(t, err, domain.ErrCycleDetected)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "demo@default/a -> demo@default/b -> demo@default/a", zErr.Metadata()["cycle"])
}
