package usecase

import (
	"sort"

	"github.com/stylesnap/backend/internal/domain"
)

// Curate applies a filter specification to a product collection and sorts
// the survivors. Pure: the input slice is never mutated, and identical
// inputs always produce the same ordered output.
//
// All predicates are AND-combined; each is a no-op when its filter field
// is at its default/empty value. Sorting is stable and applied after
// filtering; relevance preserves the incoming search-ranked order.
func Curate(products []domain.Product, filters domain.FilterOptions) []domain.Product {
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if keepProduct(p, filters) {
			filtered = append(filtered, p)
		}
	}

	switch filters.SortBy {
	case domain.SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case domain.SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case domain.SortDistance:
		// Products without store availability sort as infinitely far away
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].MinStoreDistance() < filtered[j].MinStoreDistance()
		})
	case domain.SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	}

	return filtered
}

func keepProduct(p domain.Product, filters domain.FilterOptions) bool {
	// Price range. A zero Max means "no upper bound was specified": only
	// the lower bound applies, so the zero-value filter is a no-op.
	if filters.PriceRange.Max > 0 {
		if p.Price < filters.PriceRange.Min || p.Price > filters.PriceRange.Max {
			return false
		}
	} else if p.Price < filters.PriceRange.Min {
		return false
	}

	if len(filters.Retailers) > 0 && !containsString(filters.Retailers, p.Retailer.Name) {
		return false
	}

	if len(filters.Brands) > 0 && !containsString(filters.Brands, p.Brand) {
		return false
	}

	if filters.InStockOnly && !p.InStock {
		return false
	}

	if filters.StorePickupOnly && !anyAvailability(p, func(sa domain.StoreAvailability) bool {
		return sa.InStock
	}) {
		return false
	}

	// Max distance: a product with no availability data is dropped when
	// this filter is active; absence of data is not a pass.
	if filters.MaxDistance > 0 && !anyAvailability(p, func(sa domain.StoreAvailability) bool {
		return sa.Distance <= filters.MaxDistance
	}) {
		return false
	}

	return true
}

func anyAvailability(p domain.Product, pred func(domain.StoreAvailability) bool) bool {
	for _, sa := range p.StoreAvailability {
		if pred(sa) {
			return true
		}
	}
	return false
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
