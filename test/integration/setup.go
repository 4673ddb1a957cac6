package integration

import (
	"context"
	"testing"
	"time"

	"ethnic-elite/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the products table the catalogue loader reads.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			original_price DOUBLE PRECISION NOT NULL,
			rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			reviews INTEGER NOT NULL DEFAULT 0,
			image TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			colors TEXT[] NOT NULL,
			sizes TEXT[] NOT NULL,
			is_new BOOLEAN NOT NULL DEFAULT FALSE,
			is_best_seller BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`

	if _, err := pool.Exec(ctx, schema); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// SeedProducts inserts test catalogue data into the database.
func SeedProducts(t *testing.T, pool *pgxpool.Pool) []model.Product {
	t.Helper()

	ctx := context.Background()

	products := []model.Product{
		{
			ID: "K001", Name: "Royal Blue Anarkali", Category: model.CategoryAnarkali,
			Price: 2499, OriginalPrice: 3999, Rating: 4.8, Reviews: 124,
			Image: "/images/k001.jpg", Description: "Floor-length festive Anarkali.",
			Colors: []string{"Royal Blue", "Maroon"}, Sizes: []string{"S", "M", "L"},
			IsNew: true, IsBestSeller: true,
		},
		{
			ID: "K002", Name: "White Chikankari Kurti", Category: model.CategoryStraight,
			Price: 1299, OriginalPrice: 1899, Rating: 4.6, Reviews: 89,
			Image: "/images/k002.jpg", Description: "Hand-embroidered everyday kurti.",
			Colors: []string{"White"}, Sizes: []string{"M", "L"},
		},
		{
			ID: "K003", Name: "Mustard A-Line Kurti", Category: model.CategoryALine,
			Price: 1599, OriginalPrice: 2299, Rating: 4.4, Reviews: 56,
			Image: "/images/k003.jpg", Description: "Flared A-line cut in mustard cotton.",
			Colors: []string{"Mustard", "Teal"}, Sizes: []string{"S", "M", "L", "XL"},
			IsNew: true,
		},
	}

	for _, p := range products {
		_, err := pool.Exec(ctx,
			`INSERT INTO products
				(id, name, category, price, original_price, rating, reviews,
				 image, description, colors, sizes, is_new, is_best_seller)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			p.ID, p.Name, p.Category, p.Price, p.OriginalPrice, p.Rating, p.Reviews,
			p.Image, p.Description, p.Colors, p.Sizes, p.IsNew, p.IsBestSeller,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.ID, err)
		}
	}

	return products
}

// CleanupDB removes all seeded products.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	if _, err := pool.Exec(context.Background(), "DELETE FROM products"); err != nil {
		t.Logf("failed to clean products table: %v", err)
	}
}
