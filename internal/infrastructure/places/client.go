package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/stylesnap/backend/internal/domain"
	"github.com/stylesnap/backend/internal/observability"
)

// Client handles communication with the places API (nearby search and
// per-place details).
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	logger      zerolog.Logger
}

// NewClient creates a new places API client
func NewClient(apiKey, baseURL string, logger zerolog.Logger) *Client {
	limiter := rate.NewLimiter(rate.Limit(10), 20)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
		logger:      logger.With().Str("vendor", "places").Logger(),
	}
}

// SetRateLimit overrides the default outbound request rate
func (c *Client) SetRateLimit(rps int) {
	if rps > 0 {
		c.rateLimiter = rate.NewLimiter(rate.Limit(rps), rps*2)
	}
}

// nearbyResponse is the vendor nearby-search envelope
type nearbyResponse struct {
	Results []domain.PlaceSummary `json:"results"`
}

// detailsResponse is the vendor place-details envelope
type detailsResponse struct {
	Result *domain.PlaceDetails `json:"result"`
}

// NearbySearch returns places near the location matching the keyword
func (c *Client) NearbySearch(ctx context.Context, location domain.Coordinates, keyword string, radiusMeters int) ([]domain.PlaceSummary, error) {
	params := url.Values{}
	params.Add("location", fmt.Sprintf("%v,%v", location.Lat, location.Lng))
	params.Add("radius", fmt.Sprintf("%d", radiusMeters))
	params.Add("keyword", keyword)
	params.Add("type", "clothing_store")
	params.Add("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/maps/api/place/nearbysearch/json?%s", c.baseURL, params.Encode())

	body, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var nearby nearbyResponse
	if err := json.Unmarshal(body, &nearby); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return nearby.Results, nil
}

// Details returns the detail record for one place
func (c *Client) Details(ctx context.Context, placeID string) (*domain.PlaceDetails, error) {
	params := url.Values{}
	params.Add("place_id", placeID)
	params.Add("fields", "name,formatted_address,geometry,formatted_phone_number,opening_hours,rating,website")
	params.Add("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/maps/api/place/details/json?%s", c.baseURL, params.Encode())

	body, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var details detailsResponse
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if details.Result == nil {
		return nil, domain.ErrNotFound
	}

	return details.Result, nil
}

// doRequest executes a GET and returns the body, mapping transport and
// status failures to the places sentinel error.
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	start := time.Now()
	defer func() {
		observability.UpstreamDuration.WithLabelValues("places").Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "StyleSnap/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.UpstreamRequests.WithLabelValues("places", "error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrPlacesAPIFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Msg("places request returned non-200")
		observability.UpstreamRequests.WithLabelValues("places", "error").Inc()
		return nil, fmt.Errorf("%w: status %d", domain.ErrPlacesAPIFailure, resp.StatusCode)
	}

	observability.UpstreamRequests.WithLabelValues("places", "ok").Inc()
	return body, nil
}
