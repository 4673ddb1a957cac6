package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"ethnic-elite/internal/model"
)

// Store is the in-memory product catalogue. It is immutable after
// construction, so reads need no locking.
type Store struct {
	products []model.Product
	byID     map[string]int
}

// NewStore validates the given products and builds a Store over them.
// Insertion order is preserved.
func NewStore(products []model.Product) (*Store, error) {
	if err := validateProducts(products); err != nil {
		return nil, fmt.Errorf("invalid catalogue: %w", err)
	}

	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}

	return &Store{
		products: products,
		byID:     byID,
	}, nil
}

// All returns every product in catalogue order.
func (s *Store) All() []model.Product {
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get looks up a product by ID.
func (s *Store) Get(id string) (model.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return model.Product{}, false
	}
	return s.products[i], true
}

// ByCategory returns all products in the given category, in catalogue
// order.
func (s *Store) ByCategory(category string) []model.Product {
	var out []model.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of products in the catalogue.
func (s *Store) Len() int {
	return len(s.products)
}

// Summary renders the catalogue as the comma-joined
// "name (₹price, category)" string fed to the style assistant.
func (s *Store) Summary() string {
	parts := make([]string, len(s.products))
	for i, p := range s.products {
		price := strconv.FormatFloat(p.Price, 'f', -1, 64)
		parts[i] = fmt.Sprintf("%s (₹%s, %s)", p.Name, price, p.Category)
	}
	return strings.Join(parts, ", ")
}
