package domain

import "math"

// Product represents a canonical shopping result
type Product struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Brand             string              `json:"brand"`
	Category          string              `json:"category"`
	Price             float64             `json:"price"`
	OriginalPrice     float64             `json:"originalPrice,omitempty"`
	Currency          string              `json:"currency"`
	ImageURL          string              `json:"imageUrl"`
	Retailer          Retailer            `json:"retailer"`
	URL               string              `json:"url"`
	InStock           bool                `json:"inStock"`
	StoreAvailability []StoreAvailability `json:"storeAvailability,omitempty"`
	Rating            float64             `json:"rating,omitempty"`
	ReviewCount       int                 `json:"reviewCount,omitempty"`
	Description       string              `json:"description,omitempty"`
}

// Retailer identifies the merchant selling a product
type Retailer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Website string `json:"website"`
}

// StoreAvailability records stock of a product at one physical store
type StoreAvailability struct {
	Store        Store   `json:"store"`
	InStock      bool    `json:"inStock"`
	Distance     float64 `json:"distance"`
	DistanceUnit string  `json:"distanceUnit"`
	LastUpdated  string  `json:"lastUpdated,omitempty"`
}

// SortOption selects the ordering applied after filtering
type SortOption string

const (
	SortRelevance SortOption = "relevance"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortDistance  SortOption = "distance"
	SortRating    SortOption = "rating"
)

// PriceRange bounds the acceptable product price, inclusive
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterOptions is a transient view specification over a product collection.
// Each field at its zero/empty value is a no-op predicate.
type FilterOptions struct {
	PriceRange      PriceRange `json:"priceRange"`
	MaxDistance     float64    `json:"maxDistance,omitempty"`
	Retailers       []string   `json:"retailers"`
	Brands          []string   `json:"brands"`
	Categories      []string   `json:"categories"`
	InStockOnly     bool       `json:"inStockOnly"`
	StorePickupOnly bool       `json:"storePickupOnly"`
	SortBy          SortOption `json:"sortBy"`
}

// DefaultFilters returns the no-op filter specification
func DefaultFilters() FilterOptions {
	return FilterOptions{
		PriceRange: PriceRange{Min: 0, Max: 1000},
		SortBy:     SortRelevance,
	}
}

// ProductSearchResponse is the result of a product search
type ProductSearchResponse struct {
	Products     []Product `json:"products"`
	TotalResults int       `json:"totalResults"`
	Page         int       `json:"page"`
	HasMore      bool      `json:"hasMore"`
	Error        string    `json:"error,omitempty"`
}

// Savings returns the discount percentage when originalPrice exceeds the
// current price, 0 otherwise.
func Savings(originalPrice, currentPrice float64) int {
	if originalPrice <= 0 || originalPrice <= currentPrice {
		return 0
	}
	return int(math.Round((originalPrice - currentPrice) / originalPrice * 100))
}

// MinStoreDistance returns the smallest availability distance for a product,
// or +Inf when the product has no store availability data.
func (p Product) MinStoreDistance() float64 {
	if len(p.StoreAvailability) == 0 {
		return math.Inf(1)
	}
	min := p.StoreAvailability[0].Distance
	for _, sa := range p.StoreAvailability[1:] {
		if sa.Distance < min {
			min = sa.Distance
		}
	}
	return min
}
