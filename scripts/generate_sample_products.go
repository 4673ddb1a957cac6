package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ethnic-elite/internal/model"
)

// generateSampleProducts writes a small catalogue file suitable for
// local development and the integration tests.
func main() {
	dataDir := "data"

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("failed to create data directory: %v", err)
	}

	products := []model.Product{
		{
			ID: "K001", Name: "Royal Blue Anarkali", Category: model.CategoryAnarkali,
			Price: 2499, OriginalPrice: 3999, Rating: 4.8, Reviews: 214,
			Image:       "https://images.ethnicelite.in/k001.jpg",
			Description: "Floor-length royal blue Anarkali with gold zari embroidery, perfect for weddings and festive evenings.",
			Colors:      []string{"Royal Blue", "Maroon"}, Sizes: []string{"S", "M", "L", "XL"},
			IsBestSeller: true,
		},
		{
			ID: "K002", Name: "White Chikankari Kurti", Category: model.CategoryStraight,
			Price: 1299, OriginalPrice: 1899, Rating: 4.7, Reviews: 342,
			Image:       "https://images.ethnicelite.in/k002.jpg",
			Description: "Hand-embroidered Lucknowi Chikankari on breathable white mulmul cotton for timeless elegance.",
			Colors:      []string{"White", "Powder Blue"}, Sizes: []string{"XS", "S", "M", "L", "XL"},
			IsBestSeller: true,
		},
		{
			ID: "K003", Name: "Mustard Block-Print Short Kurti", Category: model.CategoryShort,
			Price: 899, OriginalPrice: 1299, Rating: 4.4, Reviews: 126,
			Image:       "https://images.ethnicelite.in/k003.jpg",
			Description: "Jaipuri hand-block printed short kurti in mustard, an easy pick for brunches and office wear.",
			Colors:      []string{"Mustard", "Teal"}, Sizes: []string{"S", "M", "L"},
			IsNew: true,
		},
		{
			ID: "K004", Name: "Emerald A-Line Kurti", Category: model.CategoryALine,
			Price: 1599, OriginalPrice: 2199, Rating: 4.6, Reviews: 98,
			Image:       "https://images.ethnicelite.in/k004.jpg",
			Description: "Flared emerald A-line kurti in soft rayon with gota patti detailing at the yoke.",
			Colors:      []string{"Emerald", "Wine"}, Sizes: []string{"S", "M", "L", "XL", "XXL"},
		},
		{
			ID: "K005", Name: "Peach Festive Ethnic Set", Category: model.CategoryEthnicSet,
			Price: 2899, OriginalPrice: 4499, Rating: 4.9, Reviews: 187,
			Image:       "https://images.ethnicelite.in/k005.jpg",
			Description: "Three-piece peach kurta set with organza dupatta and palazzo, finished with sequin work.",
			Colors:      []string{"Peach", "Mint"}, Sizes: []string{"S", "M", "L", "XL"},
			IsBestSeller: true,
		},
	}

	path := filepath.Join(dataDir, "products.json")
	file, err := os.Create(path)
	if err != nil {
		log.Fatalf("failed to create %s: %v", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(products); err != nil {
		log.Fatalf("failed to encode products: %v", err)
	}

	fmt.Printf("Wrote %d products to %s\n", len(products), path)
}
