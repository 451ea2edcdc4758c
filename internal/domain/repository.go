package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// VisionClient defines the interface for the image-labeling vendor API
type VisionClient interface {
	Annotate(ctx context.Context, base64Image string) (*VisionAnnotations, error)
}

// ShoppingQuery carries the parameters of a shopping-search call
type ShoppingQuery struct {
	Query    string
	MinPrice float64
	MaxPrice float64
	Page     int
}

// ShoppingItem is a raw vendor shopping result with the inconsistent field
// naming the vendors actually produce. Normalization resolves the fallbacks.
type ShoppingItem struct {
	ProductID     string      `json:"product_id"`
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Name          string      `json:"name"`
	Price         interface{} `json:"price"`
	ExtractedPrice interface{} `json:"extracted_price"`
	OriginalPrice interface{} `json:"original_price"`
	Thumbnail     string      `json:"thumbnail"`
	Image         string      `json:"image"`
	ImageURL      string      `json:"imageUrl"`
	Source        string      `json:"source"`
	Merchant      string      `json:"merchant"`
	Link          string      `json:"link"`
	URL           string      `json:"url"`
	InStock       *bool       `json:"in_stock"`
	Rating        float64     `json:"rating"`
	Stars         float64     `json:"stars"`
	Reviews       int         `json:"reviews"`
	ReviewCount   int         `json:"review_count"`
	Snippet       string      `json:"snippet"`
	Description   string      `json:"description"`
}

// ShoppingClient defines the interface for the product-shopping-search
// vendor API
type ShoppingClient interface {
	Search(ctx context.Context, query ShoppingQuery) ([]ShoppingItem, error)
}

// PlacesClient defines the interface for the places-nearby/details vendor API
type PlacesClient interface {
	NearbySearch(ctx context.Context, location Coordinates, keyword string, radiusMeters int) ([]PlaceSummary, error)
	Details(ctx context.Context, placeID string) (*PlaceDetails, error)
}

// AvailabilityChecker defines the interface for per-store stock lookups.
// The shipped implementation is a deterministic placeholder pending real
// retailer integrations.
type AvailabilityChecker interface {
	Check(ctx context.Context, productID string, storeIDs []string) ([]AvailabilityRecord, error)
}

// ClosetRepository defines the interface for the local keyed JSON blob store
// backing saved items and scan history.
type ClosetRepository interface {
	LoadSavedItems(ctx context.Context) ([]SavedItem, error)
	StoreSavedItems(ctx context.Context, items []SavedItem) error
	LoadScanHistory(ctx context.Context) ([]ScanHistory, error)
	StoreScanHistory(ctx context.Context, history []ScanHistory) error
}
