// Package classify holds the heuristic label classifiers: ordered rule
// tables mapping vendor strings to canonical category, brand, style and
// color values. Table contents and iteration order are part of the visible
// output contract, so entries must not be reordered.
package classify

import (
	"math"
	"strings"
)

// CategoryFallback is returned when no category keyword matches.
const CategoryFallback = "Clothing"

// categoryRule pairs a canonical category with its keyword list.
type categoryRule struct {
	category string
	keywords []string
}

// categoryRules is evaluated in order; the first category with any
// matching keyword wins.
var categoryRules = []categoryRule{
	{"Top", []string{"shirt", "t-shirt", "blouse", "sweater", "hoodie", "jacket", "coat", "cardigan"}},
	{"Bottom", []string{"pants", "jeans", "shorts", "skirt", "trousers"}},
	{"Dress", []string{"dress", "gown"}},
	{"Shoes", []string{"shoe", "shoes", "sneakers", "boots", "sandals", "heels"}},
	{"Accessory", []string{"hat", "cap", "bag", "backpack", "belt", "scarf", "sunglasses"}},
}

// Category maps a free-text item name to one of the canonical clothing
// categories, falling back to "Clothing".
func Category(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category
			}
		}
	}
	return CategoryFallback
}

// knownBrands is checked in order against product titles.
var knownBrands = []string{
	"Nike", "Adidas", "Puma", "Reebok", "Under Armour",
	"Zara", "H&M", "Gap", "Old Navy", "Uniqlo",
	"Levi's", "Wrangler", "Lee", "Calvin Klein",
	"Ralph Lauren", "Tommy Hilfiger", "Lacoste",
	"Vans", "Converse", "New Balance", "Skechers",
}

// Brand extracts a brand name from a product title. Known brands match
// case-insensitively in list order; otherwise the first word of the title
// is used when longer than 2 characters, else "Unknown".
func Brand(title string) string {
	lower := strings.ToLower(title)
	for _, brand := range knownBrands {
		if strings.Contains(lower, strings.ToLower(brand)) {
			return brand
		}
	}

	firstWord := strings.SplitN(title, " ", 2)[0]
	if len(firstWord) > 2 {
		return firstWord
	}
	return "Unknown"
}

// styleKeywords is the fixed style vocabulary, checked in order.
var styleKeywords = []string{"casual", "formal", "sporty", "vintage", "modern", "elegant", "streetwear"}

// Style infers a style from a sequence of vendor labels: label order first,
// keyword order second, first match wins. Returns "" when nothing matches.
func Style(labels []string) string {
	for _, label := range labels {
		lower := strings.ToLower(label)
		for _, style := range styleKeywords {
			if strings.Contains(lower, style) {
				return style
			}
		}
	}
	return ""
}

// paletteEntry is one named reference color.
type paletteEntry struct {
	name    string
	r, g, b float64
}

// palette is the fixed 13-color reference set. Ties in nearest-color
// lookup break toward the earlier entry.
var palette = []paletteEntry{
	{"black", 0, 0, 0},
	{"white", 255, 255, 255},
	{"red", 255, 0, 0},
	{"blue", 0, 0, 255},
	{"green", 0, 128, 0},
	{"yellow", 255, 255, 0},
	{"orange", 255, 165, 0},
	{"purple", 128, 0, 128},
	{"pink", 255, 192, 203},
	{"brown", 165, 42, 42},
	{"gray", 128, 128, 128},
	{"navy", 0, 0, 128},
	{"beige", 245, 245, 220},
}

// ColorName returns the name of the palette color nearest to the given RGB
// triple by Euclidean distance.
func ColorName(r, g, b float64) string {
	minDistance := math.Inf(1)
	closest := "unknown"

	for _, entry := range palette {
		distance := math.Sqrt(
			math.Pow(r-entry.r, 2) + math.Pow(g-entry.g, 2) + math.Pow(b-entry.b, 2),
		)
		if distance < minDistance {
			minDistance = distance
			closest = entry.name
		}
	}

	return closest
}

// knownRetailers is checked in order against store names.
var knownRetailers = []string{"Zara", "H&M", "Gap", "Nike", "Adidas", "Target", "Walmart", "Macy's"}

// RetailerName extracts a retailer name from a store name, falling back to
// the store name's first word.
func RetailerName(storeName string) string {
	lower := strings.ToLower(storeName)
	for _, retailer := range knownRetailers {
		if strings.Contains(lower, strings.ToLower(retailer)) {
			return retailer
		}
	}
	return strings.SplitN(storeName, " ", 2)[0]
}
