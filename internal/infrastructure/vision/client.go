package vision

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

// Client handles communication with the Google Cloud Vision API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	logger      zerolog.Logger
}

// NewClient creates a new vision API client
func NewClient(apiKey, baseURL string, logger zerolog.Logger) *Client {
	// Stay well under the vendor's default quota of 1800 requests/minute
	limiter := rate.NewLimiter(rate.Limit(10), 20)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
		logger:      logger.With().Str("vendor", "vision").Logger(),
	}
}

// SetRateLimit overrides the default outbound request rate
func (c *Client) SetRateLimit(rps int) {
	if rps > 0 {
		c.rateLimiter = rate.NewLimiter(rate.Limit(rps), rps*2)
	}
}

// annotateRequest is the vendor request envelope
type annotateRequest struct {
	Requests []annotateEntry `json:"requests"`
}

type annotateEntry struct {
	Image    annotateImage     `json:"image"`
	Features []annotateFeature `json:"features"`
}

type annotateImage struct {
	Content string `json:"content"`
}

type annotateFeature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults,omitempty"`
}

// annotateResponse is the vendor response envelope
type annotateResponse struct {
	Responses []domain.VisionAnnotations `json:"responses"`
}

// Annotate submits a base64-encoded image for label, object, color and web
// detection and returns the raw annotations for the first (only) image.
func (c *Client) Annotate(ctx context.Context, base64Image string) (*domain.VisionAnnotations, error) {
	reqBody := annotateRequest{
		Requests: []annotateEntry{
			{
				Image: annotateImage{Content: base64Image},
				Features: []annotateFeature{
					{Type: "LABEL_DETECTION", MaxResults: 10},
					{Type: "OBJECT_LOCALIZATION", MaxResults: 5},
					{Type: "IMAGE_PROPERTIES"},
					{Type: "WEB_DETECTION"},
				},
			},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1/images:annotate?key=%s", c.baseURL, c.apiKey)

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		body, status, err := c.doRequest(ctx, reqURL, payload)
		if err != nil {
			c.logger.Warn().Int("attempt", attempt).Err(err).Msg("annotate request failed")
			observability.UpstreamRequests.WithLabelValues("vision", "error").Inc()
			lastErr = err
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		if status != http.StatusOK {
			c.logger.Warn().Int("attempt", attempt).Int("status", status).Msg("annotate returned non-200")
			observability.UpstreamRequests.WithLabelValues("vision", "error").Inc()
			lastErr = fmt.Errorf("%w: status %d", domain.ErrVisionAPIFailure, status)
			time.Sleep(time.Duration(attempt*500) * time.Millisecond)
			continue
		}

		var annotateResp annotateResponse
		if err := json.Unmarshal(body, &annotateResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		observability.UpstreamRequests.WithLabelValues("vision", "ok").Inc()
		if len(annotateResp.Responses) == 0 {
			return &domain.VisionAnnotations{}, nil
		}
		return &annotateResp.Responses[0], nil
	}

	return nil, lastErr
}

// doRequest executes a POST with the JSON payload and returns the body and
// status code.
func (c *Client) doRequest(ctx context.Context, reqURL string, payload []byte) ([]byte, int, error) {
	start := time.Now()
	defer func() {
		observability.UpstreamDuration.WithLabelValues("vision").Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "StyleSnap/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrVisionAPIFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	return body, resp.StatusCode, nil
}
