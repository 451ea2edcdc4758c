package vision

import (
	"math"
	"strings"

	"github.com/stylesnap/backend/internal/classify"
	"github.com/stylesnap/backend/internal/domain"
)

// clothingKeywords gates which detected objects and labels count as
// clothing at all.
var clothingKeywords = []string{
	"clothing", "shirt", "pants", "dress", "shoe", "shoes", "sneakers",
	"jacket", "coat", "sweater", "hoodie", "jeans", "skirt", "shorts",
	"boots", "sandals", "hat", "cap", "bag", "backpack", "accessory",
}

// brandScoreThreshold is the minimum web-entity score accepted as a brand
// signal.
const brandScoreThreshold = 0.7

// Normalize converts raw vendor annotations into canonical detection
// results. Localized objects matching the clothing keyword list are used
// first; when none match, the first clothing-like label is used as a
// fallback. An empty result means nothing was detected, not an error.
func Normalize(annotations *domain.VisionAnnotations) []domain.DetectionResult {
	if annotations == nil {
		return []domain.DetectionResult{}
	}

	labels := annotations.LabelAnnotations
	detections := []domain.DetectionResult{}

	for _, obj := range annotations.LocalizedObjectAnnotations {
		name := strings.ToLower(obj.Name)
		if !isClothing(name) {
			continue
		}

		detections = append(detections, domain.DetectionResult{
			Category:    classify.Category(name),
			Subcategory: name,
			Attributes: domain.ItemAttributes{
				Colors: dominantColorNames(annotations),
				Brand:  brandFromWebEntities(annotations.WebDetection),
				Style:  styleFromLabels(labels),
			},
			Confidence:  int(math.Round(obj.Score * 100)),
			BoundingBox: boundingBoxFromPoly(obj.BoundingPoly),
		})
	}

	// No clothing object found, fall back to the first clothing-like label
	if len(detections) == 0 {
		for _, label := range labels {
			if !isClothing(strings.ToLower(label.Description)) {
				continue
			}
			detections = append(detections, domain.DetectionResult{
				Category:    classify.Category(strings.ToLower(label.Description)),
				Subcategory: label.Description,
				Attributes: domain.ItemAttributes{
					Colors: dominantColorNames(annotations),
					Style:  styleFromLabels(labels),
				},
				Confidence: int(math.Round(label.Score * 100)),
			})
			break
		}
	}

	return detections
}

func isClothing(name string) bool {
	for _, keyword := range clothingKeywords {
		if strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}

// dominantColorNames maps up to 3 dominant colors, in vendor order, to
// their nearest palette names.
func dominantColorNames(annotations *domain.VisionAnnotations) []string {
	if annotations.ImageProperties == nil {
		return []string{}
	}

	colors := annotations.ImageProperties.DominantColors.Colors
	if len(colors) > 3 {
		colors = colors[:3]
	}

	names := make([]string, 0, len(colors))
	for _, c := range colors {
		names = append(names, classify.ColorName(c.Color.Red, c.Color.Green, c.Color.Blue))
	}
	return names
}

// brandFromWebEntities returns the first web entity confident enough to be
// treated as a brand, or "".
func brandFromWebEntities(web *domain.VisionWebDetection) string {
	if web == nil {
		return ""
	}
	for _, entity := range web.WebEntities {
		if entity.Description != "" && entity.Score > brandScoreThreshold {
			return entity.Description
		}
	}
	return ""
}

func styleFromLabels(labels []domain.VisionLabel) string {
	descriptions := make([]string, 0, len(labels))
	for _, label := range labels {
		descriptions = append(descriptions, label.Description)
	}
	return classify.Style(descriptions)
}

// boundingBoxFromPoly derives a normalized rectangle from vertices 0 and 2
// of the vendor polygon. Missing x/y on vertex 0 default to 0; on vertex 2
// to 1.
func boundingBoxFromPoly(poly domain.VisionBoundingPoly) *domain.BoundingBox {
	if len(poly.NormalizedVertices) < 3 {
		return nil
	}

	x0 := vertexCoord(poly.NormalizedVertices[0].X, 0)
	y0 := vertexCoord(poly.NormalizedVertices[0].Y, 0)
	x2 := vertexCoord(poly.NormalizedVertices[2].X, 1)
	y2 := vertexCoord(poly.NormalizedVertices[2].Y, 1)

	return &domain.BoundingBox{
		X:      x0,
		Y:      y0,
		Width:  x2 - x0,
		Height: y2 - y0,
	}
}

func vertexCoord(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}
