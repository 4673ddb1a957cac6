package service

import (
	"context"

	"ethnic-elite/internal/catalog"
	"ethnic-elite/internal/model"

	"github.com/rs/zerolog"
)

// productService implements ProductService over the in-memory catalogue.
type productService struct {
	store  *catalog.Store
	logger zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(store *catalog.Store, logger zerolog.Logger) ProductService {
	return &productService{
		store:  store,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves all products, optionally filtered by category.
func (s *productService) GetAll(ctx context.Context, category string) ([]model.Product, error) {
	if category == "" {
		return s.store.All(), nil
	}

	if !model.ValidCategory(category) {
		s.logger.Warn().Str("category", category).Msg("unknown category requested")
		return nil, model.ErrInvalidCategory
	}

	products := s.store.ByCategory(category)
	s.logger.Debug().
		Str("category", category).
		Int("count", len(products)).
		Msg("retrieved products by category")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, ok := s.store.Get(id)
	if !ok {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return &product, nil
}
