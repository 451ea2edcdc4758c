package domain

// DetectionResult represents one clothing item identified in a scanned image
type DetectionResult struct {
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory,omitempty"`
	Attributes  ItemAttributes  `json:"attributes"`
	Confidence  int             `json:"confidence"` // percentage 0-100
	BoundingBox *BoundingBox    `json:"boundingBox,omitempty"`
}

// ItemAttributes holds the heuristically derived attributes of a detection
type ItemAttributes struct {
	Colors []string `json:"colors"`
	Brand  string   `json:"brand,omitempty"`
	Style  string   `json:"style,omitempty"`
}

// BoundingBox is a normalized rectangle within the source image.
// Coordinates are nominally in [0,1] but not clamped.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DetectionResponse is the result of a clothing detection request
type DetectionResponse struct {
	Detections []DetectionResult `json:"detections"`
	Success    bool              `json:"success"`
	Error      string            `json:"error,omitempty"`
}

// VisionAnnotations is the vendor vision API response for a single image
type VisionAnnotations struct {
	LabelAnnotations           []VisionLabel        `json:"labelAnnotations"`
	LocalizedObjectAnnotations []VisionObject       `json:"localizedObjectAnnotations"`
	ImageProperties            *VisionImageProps    `json:"imagePropertiesAnnotation"`
	WebDetection               *VisionWebDetection  `json:"webDetection"`
}

// VisionLabel is a whole-image label annotation
type VisionLabel struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// VisionObject is a localized object annotation with a bounding polygon
type VisionObject struct {
	Name         string             `json:"name"`
	Score        float64            `json:"score"`
	BoundingPoly VisionBoundingPoly `json:"boundingPoly"`
}

// VisionBoundingPoly holds the normalized vertices of an object bounding box
type VisionBoundingPoly struct {
	NormalizedVertices []VisionVertex `json:"normalizedVertices"`
}

// VisionVertex is one normalized polygon vertex. Pointers distinguish a
// vendor-omitted coordinate from a genuine zero.
type VisionVertex struct {
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
}

// VisionImageProps carries the dominant color annotation
type VisionImageProps struct {
	DominantColors VisionDominantColors `json:"dominantColors"`
}

// VisionDominantColors is the ordered list of dominant image colors
type VisionDominantColors struct {
	Colors []VisionColorInfo `json:"colors"`
}

// VisionColorInfo is one dominant color with its RGB components
type VisionColorInfo struct {
	Color VisionRGB `json:"color"`
}

// VisionRGB holds vendor RGB components; missing channels decode as 0
type VisionRGB struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// VisionWebDetection carries web entities used for brand inference
type VisionWebDetection struct {
	WebEntities []VisionWebEntity `json:"webEntities"`
}

// VisionWebEntity is one web entity match
type VisionWebEntity struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}
