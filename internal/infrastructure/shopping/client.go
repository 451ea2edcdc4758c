package shopping

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/stylesnap/backend/internal/domain"
	"github.com/stylesnap/backend/internal/observability"
)

// pageSize is the vendor page size; a full page doubles as the has-more
// signal downstream.
const pageSize = 20

// Client handles communication with the shopping-search scraper API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	logger      zerolog.Logger
}

// NewClient creates a new shopping API client
func NewClient(apiKey, baseURL string, logger zerolog.Logger) *Client {
	limiter := rate.NewLimiter(rate.Limit(5), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
		logger:      logger.With().Str("vendor", "shopping").Logger(),
	}
}

// SetRateLimit overrides the default outbound request rate
func (c *Client) SetRateLimit(rps int) {
	if rps > 0 {
		c.rateLimiter = rate.NewLimiter(rate.Limit(rps), rps*2)
	}
}

// scrapeRequest is the vendor request envelope
type scrapeRequest struct {
	Actor string      `json:"actor"`
	Input scrapeInput `json:"input"`
}

type scrapeInput struct {
	Action     string  `json:"action"`
	Query      string  `json:"query"`
	Country    string  `json:"country"`
	Language   string  `json:"language"`
	MaxResults int     `json:"maxResults"`
	MinPrice   float64 `json:"minPrice,omitempty"`
	MaxPrice   float64 `json:"maxPrice,omitempty"`
}

// scrapeResponse tolerates both vendor envelope shapes: results either
// nested under "result" or at the top level.
type scrapeResponse struct {
	Result *struct {
		ShoppingResults []domain.ShoppingItem `json:"shopping_results"`
	} `json:"result"`
	ShoppingResults []domain.ShoppingItem `json:"shopping_results"`
}

// Search runs a shopping search and returns the raw vendor items
func (c *Client) Search(ctx context.Context, query domain.ShoppingQuery) ([]domain.ShoppingItem, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqBody := scrapeRequest{
		Actor: "scraper.google",
		Input: scrapeInput{
			Action:     "shopping",
			Query:      query.Query,
			Country:    "us",
			Language:   "en",
			MaxResults: pageSize,
			MinPrice:   query.MinPrice,
			MaxPrice:   query.MaxPrice,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	start := time.Now()
	defer func() {
		observability.UpstreamDuration.WithLabelValues("shopping").Observe(time.Since(start).Seconds())
	}()

	reqURL := fmt.Sprintf("%s/api/v1/scraper/request", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "StyleSnap/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.UpstreamRequests.WithLabelValues("shopping", "error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrShoppingAPIFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Str("query", query.Query).Msg("search returned non-200")
		observability.UpstreamRequests.WithLabelValues("shopping", "error").Inc()
		return nil, fmt.Errorf("%w: status %d", domain.ErrShoppingAPIFailure, resp.StatusCode)
	}

	var scrapeResp scrapeResponse
	if err := json.Unmarshal(body, &scrapeResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	observability.UpstreamRequests.WithLabelValues("shopping", "ok").Inc()

	if scrapeResp.Result != nil && scrapeResp.Result.ShoppingResults != nil {
		return scrapeResp.Result.ShoppingResults, nil
	}
	if scrapeResp.ShoppingResults != nil {
		return scrapeResp.ShoppingResults, nil
	}
	return []domain.ShoppingItem{}, nil
}
