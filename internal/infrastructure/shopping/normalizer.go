package shopping

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/stylesnap/backend/internal/classify"
	"github.com/stylesnap/backend/internal/domain"
)

// nonPriceCharsRegex strips everything that is not a digit or dot before
// price parsing. Thousands separators are consumed by removal.
var nonPriceCharsRegex = regexp.MustCompile(`[^0-9.]`)

// Normalizer converts raw vendor shopping items into canonical products.
// The clock is injectable so synthesized IDs are deterministic in tests.
type Normalizer struct {
	now func() time.Time
}

// NewNormalizer creates a normalizer using the given clock; nil defaults
// to time.Now.
func NewNormalizer(now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{now: now}
}

// Normalize maps vendor items to products. The category is taken from the
// caller's request context (the vendor does not return one). Every field
// has a fallback, so malformed items degrade to placeholder values rather
// than failing.
func (n *Normalizer) Normalize(items []domain.ShoppingItem, category string) []domain.Product {
	if category == "" {
		category = classify.CategoryFallback
	}

	products := make([]domain.Product, 0, len(items))
	for i, item := range items {
		title := firstNonEmpty(item.Title, item.Name, "Unknown Product")
		source := firstNonEmpty(item.Source, item.Merchant)
		link := firstNonEmpty(item.Link, item.URL)

		products = append(products, domain.Product{
			ID:            n.resolveID(item, i),
			Name:          title,
			Brand:         classify.Brand(firstNonEmpty(item.Title, item.Name)),
			Category:      category,
			Price:         resolvePrice(item.Price, item.ExtractedPrice),
			OriginalPrice: parsePriceValue(item.OriginalPrice),
			Currency:      "USD",
			ImageURL:      firstNonEmpty(item.Thumbnail, item.Image, item.ImageURL),
			Retailer: domain.Retailer{
				ID:      firstNonEmpty(source, "unknown"),
				Name:    firstNonEmpty(source, "Unknown Retailer"),
				Website: link,
			},
			URL:         link,
			InStock:     item.InStock == nil || *item.InStock,
			Rating:      firstNonZero(item.Rating, item.Stars),
			ReviewCount: firstNonZeroInt(item.Reviews, item.ReviewCount),
			Description: firstNonEmpty(item.Snippet, item.Description),
		})
	}
	return products
}

// HasMore reports whether another page likely exists. A full vendor page
// is the only signal available; it is a heuristic, not a cursor.
func HasMore(products []domain.Product) bool {
	return len(products) == pageSize
}

// resolveID prefers the vendor id and otherwise synthesizes one from the
// normalization time and item index. Synthesized IDs are not stable across
// repeated identical searches.
func (n *Normalizer) resolveID(item domain.ShoppingItem, index int) string {
	if item.ProductID != "" {
		return item.ProductID
	}
	if item.ID != "" {
		return item.ID
	}
	return fmt.Sprintf("product_%d_%d", n.now().UnixMilli(), index)
}

// ParsePrice parses a vendor price string by stripping all non-digit,
// non-dot characters. Empty or unparseable input yields 0.
func ParsePrice(raw string) float64 {
	cleaned := nonPriceCharsRegex.ReplaceAllString(raw, "")
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return price
}

// parsePriceValue handles the vendor's mixed price typing: numbers pass
// through, strings go through ParsePrice, anything else is 0.
func parsePriceValue(v interface{}) float64 {
	switch value := v.(type) {
	case float64:
		return value
	case string:
		return ParsePrice(value)
	default:
		return 0
	}
}

func resolvePrice(price, extractedPrice interface{}) float64 {
	if p := parsePriceValue(price); p != 0 {
		return p
	}
	return parsePriceValue(extractedPrice)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstNonZero(values ...float64) float64 {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}

func firstNonZeroInt(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
