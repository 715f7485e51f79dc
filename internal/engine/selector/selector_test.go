package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports/mocks"
	"go.trai.ch/cairn/internal/engine/selector"
	"go.uber.org/mock/gomock"
)

func forest() domain.Forest {
	debug := &domain.ResolvedProject{Name: "demo", Configuration: "debug"}
	debug.Products = []*domain.ResolvedProduct{
		{Name: "appA", ProjectID: debug.ID()},
		{Name: "appB", ProjectID: debug.ID()},
	}
	release := &domain.ResolvedProject{Name: "demo", Configuration: "release"}
	release.Products = []*domain.ResolvedProduct{
		{Name: "appA", ProjectID: release.ID()},
	}
	return domain.Forest{debug, release}
}

func keys(products []*domain.ResolvedProduct) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Key())
	}
	return out
}

func TestSelect_AllProductsWhenNoNames(t *testing.T) {
	sel := selector.Select(forest(), nil, nil)

	assert.Equal(t, []string{"demo@debug/appA", "demo@debug/appB", "demo@release/appA"}, keys(sel.Products))
	assert.Empty(t, sel.Unmatched)
}

func TestSelect_ForestOrderNotRequestOrder(t *testing.T) {
	sel := selector.Select(forest(), []string{"appB", "appA"}, nil)

	assert.Equal(t, []string{"demo@debug/appA", "demo@debug/appB", "demo@release/appA"}, keys(sel.Products))
}

func TestSelect_UnmatchedNameWarnsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn("No such product 'appX'.").Times(1)

	f := domain.Forest{forest()[0]}
	sel := selector.Select(f, []string{"appA", "appX"}, logger)

	assert.Equal(t, []string{"demo@debug/appA"}, keys(sel.Products))
	assert.Equal(t, []string{"appX"}, sel.Unmatched)
}

func TestSelect_DuplicateNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).Times(1)

	sel := selector.Select(forest(), []string{"appB", "appB", "nope", "nope"}, logger)

	assert.Equal(t, []string{"demo@debug/appB"}, keys(sel.Products))
	assert.Equal(t, []string{"nope"}, sel.Unmatched)
}

func TestSelect_EmptyForest(t *testing.T) {
	sel := selector.Select(nil, []string{"appA"}, nil)

	assert.Empty(t, sel.Products)
	assert.Equal(t, []string{"appA"}, sel.Unmatched)
}
