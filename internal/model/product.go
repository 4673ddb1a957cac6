package model

// Product categories offered by the storefront.
const (
	CategoryAnarkali  = "Anarkali"
	CategoryStraight  = "Straight"
	CategoryShort     = "Short"
	CategoryALine     = "A-Line"
	CategoryEthnicSet = "Ethnic Set"
)

// Categories lists all valid product categories in display order.
var Categories = []string{
	CategoryAnarkali,
	CategoryStraight,
	CategoryShort,
	CategoryALine,
	CategoryEthnicSet,
}

// ValidCategory reports whether category is one of the known categories.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Product represents a kurti in the catalogue. Products are immutable
// once loaded. Invariant: Price <= OriginalPrice.
type Product struct {
	ID            string   `json:"id" db:"id"`
	Name          string   `json:"name" db:"name"`
	Category      string   `json:"category" db:"category"`
	Price         float64  `json:"price" db:"price"`
	OriginalPrice float64  `json:"originalPrice" db:"original_price"`
	Rating        float64  `json:"rating" db:"rating"`
	Reviews       int      `json:"reviews" db:"reviews"`
	Image         string   `json:"image" db:"image"`
	Description   string   `json:"description" db:"description"`
	Colors        []string `json:"colors" db:"colors"`
	Sizes         []string `json:"sizes" db:"sizes"`
	IsNew         bool     `json:"isNew,omitempty" db:"is_new"`
	IsBestSeller  bool     `json:"isBestSeller,omitempty" db:"is_best_seller"`
}
