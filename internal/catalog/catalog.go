package catalog

import (
	"context"
	"fmt"

	"ethnic-elite/internal/model"
)

// Loader loads the full product catalogue from a backing source. The
// catalogue is loaded once at startup; the resulting Store is read-only.
type Loader interface {
	// Load reads and validates all products.
	Load(ctx context.Context) ([]model.Product, error)
}

// validateProducts checks catalogue-wide invariants before the products
// are admitted into a Store.
func validateProducts(products []model.Product) error {
	if len(products) == 0 {
		return fmt.Errorf("catalogue is empty")
	}

	seen := make(map[string]struct{}, len(products))
	for i, p := range products {
		if p.ID == "" {
			return fmt.Errorf("product %d: ID is required", i)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("product %s: duplicate ID", p.ID)
		}
		seen[p.ID] = struct{}{}

		if p.Name == "" {
			return fmt.Errorf("product %s: name is required", p.ID)
		}
		if !model.ValidCategory(p.Category) {
			return fmt.Errorf("product %s: unknown category %q", p.ID, p.Category)
		}
		if p.Price < 0 {
			return fmt.Errorf("product %s: negative price", p.ID)
		}
		if p.Price > p.OriginalPrice {
			return fmt.Errorf("product %s: price %.2f exceeds original price %.2f", p.ID, p.Price, p.OriginalPrice)
		}
		if len(p.Colors) == 0 {
			return fmt.Errorf("product %s: at least one colour is required", p.ID)
		}
		if len(p.Sizes) == 0 {
			return fmt.Errorf("product %s: at least one size is required", p.ID)
		}
	}
	return nil
}
