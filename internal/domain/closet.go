package domain

// SavedItem wraps a product the user saved to their closet
type SavedItem struct {
	ID      string  `json:"id"`
	Product Product `json:"product"`
	SavedAt string  `json:"savedAt"`
	Notes   string  `json:"notes,omitempty"`
}

// ScanHistory records one image-capture event and its outcome
type ScanHistory struct {
	ID            string          `json:"id"`
	ImageURL      string          `json:"imageUrl"`
	Detection     DetectionResult `json:"detection"`
	Timestamp     string          `json:"timestamp"`
	ProductsFound int             `json:"productsFound"`
}

// ScanHistoryLimit caps scan history at the most recent entries,
// oldest evicted first.
const ScanHistoryLimit = 50
