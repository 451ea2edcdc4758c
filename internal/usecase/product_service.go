package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/stylesnap/backend/internal/domain"
	"github.com/stylesnap/backend/internal/infrastructure/shopping"
)

// searchUnavailableMessage is the advisory error attached to degraded
// search responses; the caller stays usable with zero results.
const searchUnavailableMessage = "Search service temporarily unavailable"

// ProductSearchRequest carries the parameters of a product search
type ProductSearchRequest struct {
	Query    string                `json:"query"`
	Category string                `json:"category,omitempty"`
	Color    string                `json:"color,omitempty"`
	Brand    string                `json:"brand,omitempty"`
	MinPrice float64               `json:"minPrice,omitempty"`
	MaxPrice float64               `json:"maxPrice,omitempty"`
	Page     int                   `json:"page,omitempty"`
	Filters  *domain.FilterOptions `json:"filters,omitempty"`
}

// ProductService handles product search with caching and curation
type ProductService struct {
	cache          domain.CacheRepository
	shoppingClient domain.ShoppingClient
	normalizer     *shopping.Normalizer
	group          singleflight.Group
	cacheTTL       time.Duration
	logger         zerolog.Logger
}

// NewProductService creates a product service with dependencies
func NewProductService(cache domain.CacheRepository, shoppingClient domain.ShoppingClient, normalizer *shopping.Normalizer, cacheTTL time.Duration, logger zerolog.Logger) *ProductService {
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}
	return &ProductService{
		cache:          cache,
		shoppingClient: shoppingClient,
		normalizer:     normalizer,
		cacheTTL:       cacheTTL,
		logger:         logger.With().Str("component", "product-service").Logger(),
	}
}

// SearchProducts searches for products matching the request and applies
// the optional filter specification before returning. Upstream failure
// degrades to an empty, well-formed response with an advisory error
// instead of a hard failure.
func (s *ProductService) SearchProducts(ctx context.Context, req *ProductSearchRequest) (*domain.ProductSearchResponse, error) {
	if req == nil || req.Query == "" {
		return nil, domain.ErrInvalidRequest
	}

	page := req.Page
	if page < 1 {
		page = 1
	}

	searchQuery := buildSearchQuery(req)
	cacheKey := fmt.Sprintf("products_%s_%d_%v_%v", searchQuery, page, req.MinPrice, req.MaxPrice)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		if response, ok := cached.(*domain.ProductSearchResponse); ok {
			return s.curated(response, req.Filters), nil
		}
	}

	result, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		items, err := s.shoppingClient.Search(ctx, domain.ShoppingQuery{
			Query:    searchQuery,
			MinPrice: req.MinPrice,
			MaxPrice: req.MaxPrice,
			Page:     page,
		})
		if err != nil {
			return nil, err
		}

		products := s.normalizer.Normalize(items, req.Category)
		response := &domain.ProductSearchResponse{
			Products:     products,
			TotalResults: len(products),
			Page:         page,
			HasMore:      shopping.HasMore(products),
		}

		// Only successful upstream calls get cached
		if err := s.cache.Set(ctx, cacheKey, response, s.cacheTTL); err != nil {
			s.logger.Warn().Err(err).Msg("failed to cache search response")
		}
		for i := range products {
			if err := s.cache.Set(ctx, "product_"+products[i].ID, &products[i], s.cacheTTL); err != nil {
				s.logger.Warn().Err(err).Msg("failed to cache product")
			}
		}

		return response, nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("query", req.Query).Msg("product search degraded to empty result")
		return &domain.ProductSearchResponse{
			Products:     []domain.Product{},
			TotalResults: 0,
			Page:         1,
			HasMore:      false,
			Error:        searchUnavailableMessage,
		}, nil
	}

	return s.curated(result.(*domain.ProductSearchResponse), req.Filters), nil
}

// GetProduct returns a previously searched product by ID from the cache
func (s *ProductService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, domain.ErrInvalidRequest
	}

	cached, err := s.cache.Get(ctx, "product_"+id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	product, ok := cached.(*domain.Product)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// curated applies the optional per-request filter specification without
// touching the cached response.
func (s *ProductService) curated(response *domain.ProductSearchResponse, filters *domain.FilterOptions) *domain.ProductSearchResponse {
	if filters == nil {
		return response
	}

	curated := Curate(response.Products, *filters)
	return &domain.ProductSearchResponse{
		Products:     curated,
		TotalResults: len(curated),
		Page:         response.Page,
		HasMore:      response.HasMore,
		Error:        response.Error,
	}
}

// buildSearchQuery appends the detected color, brand and category to the
// base query so vendor results match the scanned item more closely.
func buildSearchQuery(req *ProductSearchRequest) string {
	parts := []string{req.Query}
	if req.Color != "" {
		parts = append(parts, req.Color)
	}
	if req.Brand != "" {
		parts = append(parts, req.Brand)
	}
	if req.Category != "" {
		parts = append(parts, req.Category)
	}
	return strings.Join(parts, " ")
}
