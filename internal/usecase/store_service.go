package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/stylesnap/backend/internal/domain"
)

// defaultRadiusMeters matches the vendor default search radius
const defaultRadiusMeters = 10000

// StoreFinder locates nearby stores for a retailer around a point
type StoreFinder interface {
	NearbyStores(ctx context.Context, location domain.Coordinates, retailer string, radiusMeters int) ([]domain.Store, error)
}

// StoreService handles nearby-store lookup with caching, plus per-store
// availability checks.
type StoreService struct {
	cache    domain.CacheRepository
	finder   StoreFinder
	checker  domain.AvailabilityChecker
	group    singleflight.Group
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewStoreService creates a store service with dependencies
func NewStoreService(cache domain.CacheRepository, finder StoreFinder, checker domain.AvailabilityChecker, cacheTTL time.Duration, logger zerolog.Logger) *StoreService {
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}
	return &StoreService{
		cache:    cache,
		finder:   finder,
		checker:  checker,
		cacheTTL: cacheTTL,
		logger:   logger.With().Str("component", "store-service").Logger(),
	}
}

// FindNearbyStores returns stores near the location, closest first.
// The result set may be smaller than the vendor reported when individual
// detail lookups failed.
func (s *StoreService) FindNearbyStores(ctx context.Context, location domain.Coordinates, retailer string, radiusMeters int) (*domain.StoreSearchResponse, error) {
	if location.Lat == 0 || location.Lng == 0 {
		return nil, domain.ErrInvalidRequest
	}
	if radiusMeters <= 0 {
		radiusMeters = defaultRadiusMeters
	}

	cacheKey := fmt.Sprintf("stores_%v_%v_%s_%d", location.Lat, location.Lng, retailer, radiusMeters)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		if response, ok := cached.(*domain.StoreSearchResponse); ok {
			return response, nil
		}
	}

	result, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		stores, err := s.finder.NearbyStores(ctx, location, retailer, radiusMeters)
		if err != nil {
			return nil, err
		}

		response := &domain.StoreSearchResponse{
			Stores:       stores,
			TotalResults: len(stores),
		}

		if err := s.cache.Set(ctx, cacheKey, response, s.cacheTTL); err != nil {
			s.logger.Warn().Err(err).Msg("failed to cache store response")
		}

		return response, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*domain.StoreSearchResponse), nil
}

// CheckAvailability reports per-store stock for a product
func (s *StoreService) CheckAvailability(ctx context.Context, productID string, storeIDs []string) (*domain.AvailabilityResponse, error) {
	if productID == "" || len(storeIDs) == 0 {
		return nil, domain.ErrInvalidRequest
	}

	records, err := s.checker.Check(ctx, productID, storeIDs)
	if err != nil {
		return nil, err
	}

	return &domain.AvailabilityResponse{Availability: records}, nil
}
