package catalog

import (
	"testing"

	"ethnic-elite/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []model.Product {
	return []model.Product{
		{
			ID: "K001", Name: "Royal Blue Anarkali", Category: model.CategoryAnarkali,
			Price: 2499, OriginalPrice: 3999,
			Colors: []string{"Royal Blue"}, Sizes: []string{"M", "L"},
		},
		{
			ID: "K002", Name: "White Chikankari Kurti", Category: model.CategoryStraight,
			Price: 1299, OriginalPrice: 1899,
			Colors: []string{"White"}, Sizes: []string{"S", "M"},
		},
	}
}

func TestNewStore_PreservesOrder(t *testing.T) {
	store, err := NewStore(testProducts())
	require.NoError(t, err)

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, "K001", all[0].ID)
	assert.Equal(t, "K002", all[1].ID)
	assert.Equal(t, 2, store.Len())
}

func TestStore_Get(t *testing.T) {
	store, err := NewStore(testProducts())
	require.NoError(t, err)

	p, ok := store.Get("K002")
	require.True(t, ok)
	assert.Equal(t, "White Chikankari Kurti", p.Name)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestStore_ByCategory(t *testing.T) {
	store, err := NewStore(testProducts())
	require.NoError(t, err)

	anarkalis := store.ByCategory(model.CategoryAnarkali)
	require.Len(t, anarkalis, 1)
	assert.Equal(t, "K001", anarkalis[0].ID)

	assert.Empty(t, store.ByCategory(model.CategoryShort))
}

func TestStore_Summary(t *testing.T) {
	store, err := NewStore(testProducts())
	require.NoError(t, err)

	assert.Equal(t,
		"Royal Blue Anarkali (₹2499, Anarkali), White Chikankari Kurti (₹1299, Straight)",
		store.Summary(),
	)
}

func TestNewStore_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func([]model.Product) []model.Product
		errorMsg string
	}{
		{
			name: "duplicate IDs",
			mutate: func(p []model.Product) []model.Product {
				p[1].ID = p[0].ID
				return p
			},
			errorMsg: "duplicate ID",
		},
		{
			name: "price above original price",
			mutate: func(p []model.Product) []model.Product {
				p[0].Price = p[0].OriginalPrice + 1
				return p
			},
			errorMsg: "exceeds original price",
		},
		{
			name: "missing ID",
			mutate: func(p []model.Product) []model.Product {
				p[0].ID = ""
				return p
			},
			errorMsg: "ID is required",
		},
		{
			name: "unknown category",
			mutate: func(p []model.Product) []model.Product {
				p[0].Category = "Lehenga"
				return p
			},
			errorMsg: "unknown category",
		},
		{
			name: "no colours",
			mutate: func(p []model.Product) []model.Product {
				p[0].Colors = nil
				return p
			},
			errorMsg: "at least one colour",
		},
		{
			name: "no sizes",
			mutate: func(p []model.Product) []model.Product {
				p[0].Sizes = nil
				return p
			},
			errorMsg: "at least one size",
		},
		{
			name: "empty catalogue",
			mutate: func([]model.Product) []model.Product {
				return nil
			},
			errorMsg: "catalogue is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewStore(tt.mutate(testProducts()))
			require.Error(t, err)
			assert.Nil(t, store)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}
