// Package selector picks the products a command operates on.
package selector

import (
	"fmt"

	"go.trai.ch/cairn/internal/core/domain"
	"go.trai.ch/cairn/internal/core/ports"
)

// Selection is the outcome of Select.
type Selection struct {
	// Products are the selected products in forest order.
	Products []*domain.ResolvedProduct
	// Unmatched lists requested names without any product, in request order.
	Unmatched []string
}

// Select returns the products of forest named in names.
// With no names every product is selected. Each requested name that matches nothing
// produces exactly one warning on logger; logger may be nil.
func Select(forest domain.Forest, names []string, logger ports.Logger) Selection {
	if len(names) == 0 {
		return Selection{Products: forest.Products()}
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = false
	}

	var sel Selection
	for _, product := range forest.Products() {
		if _, ok := wanted[product.Name]; ok {
			sel.Products = append(sel.Products, product)
			wanted[product.Name] = true
		}
	}

	warned := make(map[string]bool)
	for _, name := range names {
		if wanted[name] || warned[name] {
			continue
		}
		warned[name] = true
		sel.Unmatched = append(sel.Unmatched, name)
		if logger != nil {
			logger.Warn(fmt.Sprintf("No such product '%s'.", name))
		}
	}
	return sel
}
