package places

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/stylesnap/backend/internal/classify"
	"github.com/stylesnap/backend/internal/domain"
	"github.com/stylesnap/backend/internal/geo"
)

// detailsFanOut caps how many places get a detail lookup per query
const detailsFanOut = 10

// Normalizer turns vendor nearby-search results into canonical stores,
// enriched with per-place details and computed distance.
type Normalizer struct {
	client domain.PlacesClient
	parser AddressParser
	logger zerolog.Logger
}

// NewNormalizer creates a store normalizer backed by the given places client
func NewNormalizer(client domain.PlacesClient, parser AddressParser, logger zerolog.Logger) *Normalizer {
	if parser == nil {
		parser = USAddressParser{}
	}
	return &Normalizer{
		client: client,
		parser: parser,
		logger: logger.With().Str("component", "store-normalizer").Logger(),
	}
}

// NearbyStores looks up nearby places, fetches details for the first 10
// concurrently, and returns canonical stores sorted by ascending distance
// from the query point. A failed detail lookup drops that place silently;
// callers get fewer results, not an error.
func (n *Normalizer) NearbyStores(ctx context.Context, location domain.Coordinates, retailer string, radiusMeters int) ([]domain.Store, error) {
	keyword := retailer
	if keyword == "" {
		keyword = "clothing store"
	}

	summaries, err := n.client.NearbySearch(ctx, location, keyword, radiusMeters)
	if err != nil {
		return nil, err
	}

	if len(summaries) > detailsFanOut {
		summaries = summaries[:detailsFanOut]
	}

	results := make([]*domain.Store, len(summaries))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)

	for i, summary := range summaries {
		g.Go(func() error {
			details, err := n.client.Details(gctx, summary.PlaceID)
			if err != nil {
				n.logger.Warn().Str("place_id", summary.PlaceID).Err(err).Msg("dropping place, details lookup failed")
				return nil
			}

			store := n.buildStore(summary, details, location, retailer)
			mu.Lock()
			results[i] = &store
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stores := make([]domain.Store, 0, len(results))
	for _, s := range results {
		if s != nil {
			stores = append(stores, *s)
		}
	}

	sort.SliceStable(stores, func(i, j int) bool {
		return stores[i].Distance < stores[j].Distance
	})

	return stores, nil
}

func (n *Normalizer) buildStore(summary domain.PlaceSummary, details *domain.PlaceDetails, origin domain.Coordinates, retailer string) domain.Store {
	coords := details.Geometry.Location
	address := n.parser.Parse(details.FormattedAddress)

	if retailer == "" {
		retailer = classify.RetailerName(details.Name)
	}

	var hours string
	if details.OpeningHours != nil {
		hours = strings.Join(details.OpeningHours.WeekdayText, ", ")
	}

	return domain.Store{
		ID:           summary.PlaceID,
		Name:         details.Name,
		Retailer:     retailer,
		Address:      details.FormattedAddress,
		City:         address.City,
		State:        address.State,
		ZipCode:      address.ZipCode,
		Country:      "USA",
		Coordinates:  coords,
		Phone:        details.PhoneNumber,
		Hours:        hours,
		Rating:       details.Rating,
		Distance:     geo.Distance(origin.Lat, origin.Lng, coords.Lat, coords.Lng),
		DistanceUnit: "mi",
	}
}
