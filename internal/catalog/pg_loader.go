package catalog

import (
	"context"
	"fmt"

	"ethnic-elite/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// pgLoader implements Loader for reading the product catalogue from a
// PostgreSQL products table.
type pgLoader struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresLoader creates a new PostgreSQL-backed catalogue loader.
func NewPostgresLoader(pool *pgxpool.Pool, logger zerolog.Logger) Loader {
	return &pgLoader{
		pool:   pool,
		logger: logger.With().Str("component", "catalog-pg-loader").Logger(),
	}
}

// Load reads and validates all products from the products table.
func (l *pgLoader) Load(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, name, category, price, original_price, rating, reviews,
		       image, description, colors, sizes, is_new, is_best_seller
		FROM products
		ORDER BY id
	`

	rows, err := l.pool.Query(ctx, query)
	if err != nil {
		l.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.Category, &p.Price, &p.OriginalPrice,
			&p.Rating, &p.Reviews, &p.Image, &p.Description,
			&p.Colors, &p.Sizes, &p.IsNew, &p.IsBestSeller,
		)
		if err != nil {
			l.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		l.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	if err := validateProducts(products); err != nil {
		return nil, fmt.Errorf("products table: %w", err)
	}

	l.logger.Info().
		Int("products", len(products)).
		Msg("product catalogue loaded from postgres")

	return products, nil
}
