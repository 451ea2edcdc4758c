package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/stylesnap/backend/internal/domain"
	"github.com/stylesnap/backend/internal/infrastructure/vision"
	"github.com/stylesnap/backend/internal/observability"
)

// dataURLPrefixRegex strips a leading data-URL header from client-supplied
// image payloads before the vendor call.
var dataURLPrefixRegex = regexp.MustCompile(`^data:image/\w+;base64,`)

// DetectService handles clothing detection with caching
type DetectService struct {
	cache        domain.CacheRepository
	visionClient domain.VisionClient
	group        singleflight.Group
	cacheTTL     time.Duration
	logger       zerolog.Logger
}

// NewDetectService creates a detection service with dependencies
func NewDetectService(cache domain.CacheRepository, visionClient domain.VisionClient, cacheTTL time.Duration, logger zerolog.Logger) *DetectService {
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}
	return &DetectService{
		cache:        cache,
		visionClient: visionClient,
		cacheTTL:     cacheTTL,
		logger:       logger.With().Str("component", "detect-service").Logger(),
	}
}

// DetectClothing identifies clothing items in a base64-encoded image.
// Flow: check cache -> annotate via vendor -> normalize -> cache -> return.
// An empty detection list means nothing was detected, not a failure.
func (s *DetectService) DetectClothing(ctx context.Context, imageData string) (*domain.DetectionResponse, error) {
	if imageData == "" {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := detectionCacheKey(imageData)

	if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
		if response, ok := cached.(*domain.DetectionResponse); ok {
			return response, nil
		}
	}

	// Concurrent first-time requests for the same image share one
	// upstream call.
	result, err, _ := s.group.Do(cacheKey, func() (interface{}, error) {
		base64Image := dataURLPrefixRegex.ReplaceAllString(imageData, "")

		annotations, err := s.visionClient.Annotate(ctx, base64Image)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrVisionAPIFailure, err)
		}

		response := &domain.DetectionResponse{
			Detections: vision.Normalize(annotations),
			Success:    true,
		}

		if err := s.cache.Set(ctx, cacheKey, response, s.cacheTTL); err != nil {
			s.logger.Warn().Err(err).Msg("failed to cache detection response")
		}

		return response, nil
	})
	if err != nil {
		return nil, err
	}

	response := result.(*domain.DetectionResponse)
	observability.DetectionsReturned.Add(float64(len(response.Detections)))
	return response, nil
}

// detectionCacheKey derives a deterministic key from the start of the
// image payload. The payload is already base64 from the client; hashing
// the first 50 bytes of a re-encoding keeps keys short and stable for
// identical captures.
func detectionCacheKey(imageData string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(imageData))
	if len(encoded) > 50 {
		encoded = encoded[:50]
	}
	return "vision_" + encoded
}
