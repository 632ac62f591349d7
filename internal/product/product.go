package product

import "math"

// Specs holds the hardware sheet shown on product cards and detail pages.
type Specs struct {
	Processor string `json:"processor"`
	RAM       string `json:"ram"`
	Storage   string `json:"storage"`
	GPU       string `json:"gpu"`
	Display   string `json:"display"`
}

// Product represents a catalog item. Collections are persisted as one JSON
// document, so JSON tags follow the camelCase convention of the stored data.
type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       int      `json:"price"`
	OldPrice    *int     `json:"oldPrice,omitempty"`
	Image       string   `json:"image"`
	Images      []string `json:"images,omitempty"`
	Specs       Specs    `json:"specs"`
	InStock     bool     `json:"inStock"`
	Description string   `json:"description"`
}

const (
	CategoryLaptops     = "laptops"
	CategoryDesktops    = "desktops"
	CategoryAccessories = "accessories"
	CategoryComponents  = "components"
)

// AllowedCategories contains the supported product categories used across the app.
var AllowedCategories = []string{
	CategoryLaptops,
	CategoryDesktops,
	CategoryAccessories,
	CategoryComponents,
}

// Discounted reports whether the product carries a crossed-out old price.
func (p Product) Discounted() bool {
	return p.OldPrice != nil && *p.OldPrice > p.Price
}

// DiscountPercent returns the rounded percentage off the old price, or 0 for
// non-discounted products.
func (p Product) DiscountPercent() int {
	if !p.Discounted() {
		return 0
	}
	old := float64(*p.OldPrice)
	return int(math.Round((old - float64(p.Price)) / old * 100))
}

// DefaultLaptop is the demo record seeded when the catalog is empty, so a
// fresh install never renders a blank storefront.
func DefaultLaptop() Product {
	return Product{
		ID:       1,
		Name:     "حاسوب محمول HP Pavilion",
		Category: CategoryLaptops,
		Price:    85000,
		Image:    "https://m.media-amazon.com/images/I/71jG+e7roXL._AC_SL1500_.jpg",
		Images:   []string{"https://m.media-amazon.com/images/I/71jG+e7roXL._AC_SL1500_.jpg"},
		Specs: Specs{
			Processor: "Intel Core i5-10300H",
			RAM:       "8GB DDR4",
			Storage:   "512GB SSD",
			GPU:       "NVIDIA GTX 1650",
			Display:   "15.6 بوصة FHD",
		},
		InStock:     true,
		Description: "حاسوب محمول قوي لجميع الاستخدامات اليومية والألعاب الخفيفة.",
	}
}
