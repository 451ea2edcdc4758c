package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/stylesnap/backend/internal/domain"
)

// ClosetService manages the user's saved items and scan history
type ClosetService struct {
	repo   domain.ClosetRepository
	now    func() time.Time
	newID  func() string
	logger zerolog.Logger
}

// NewClosetService creates a closet service. The clock and ID generator
// are injectable for deterministic tests; nil defaults to time.Now and
// random UUIDs.
func NewClosetService(repo domain.ClosetRepository, now func() time.Time, newID func() string, logger zerolog.Logger) *ClosetService {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &ClosetService{
		repo:   repo,
		now:    now,
		newID:  newID,
		logger: logger.With().Str("component", "closet-service").Logger(),
	}
}

// ListSavedItems returns all saved items
func (s *ClosetService) ListSavedItems(ctx context.Context) ([]domain.SavedItem, error) {
	return s.repo.LoadSavedItems(ctx)
}

// SaveItem appends a product to the saved items list
func (s *ClosetService) SaveItem(ctx context.Context, product domain.Product, notes string) (*domain.SavedItem, error) {
	if product.ID == "" {
		return nil, domain.ErrInvalidRequest
	}

	items, err := s.repo.LoadSavedItems(ctx)
	if err != nil {
		return nil, err
	}

	item := domain.SavedItem{
		ID:      "saved_" + s.newID(),
		Product: product,
		SavedAt: s.now().UTC().Format(time.RFC3339),
		Notes:   notes,
	}

	items = append(items, item)
	if err := s.repo.StoreSavedItems(ctx, items); err != nil {
		return nil, err
	}

	return &item, nil
}

// RemoveSavedItem removes a saved item by the saved product's ID
func (s *ClosetService) RemoveSavedItem(ctx context.Context, productID string) error {
	if productID == "" {
		return domain.ErrInvalidRequest
	}

	items, err := s.repo.LoadSavedItems(ctx)
	if err != nil {
		return err
	}

	remaining := make([]domain.SavedItem, 0, len(items))
	for _, item := range items {
		if item.Product.ID != productID {
			remaining = append(remaining, item)
		}
	}

	return s.repo.StoreSavedItems(ctx, remaining)
}

// IsSaved reports whether a product is in the saved items list
func (s *ClosetService) IsSaved(ctx context.Context, productID string) (bool, error) {
	items, err := s.repo.LoadSavedItems(ctx)
	if err != nil {
		return false, err
	}
	for _, item := range items {
		if item.Product.ID == productID {
			return true, nil
		}
	}
	return false, nil
}

// ListScanHistory returns scan history, newest first
func (s *ClosetService) ListScanHistory(ctx context.Context) ([]domain.ScanHistory, error) {
	return s.repo.LoadScanHistory(ctx)
}

// AddScan prepends a scan record to the history, evicting the oldest
// entries beyond the history cap.
func (s *ClosetService) AddScan(ctx context.Context, scan domain.ScanHistory) (*domain.ScanHistory, error) {
	history, err := s.repo.LoadScanHistory(ctx)
	if err != nil {
		return nil, err
	}

	if scan.ID == "" {
		scan.ID = "scan_" + s.newID()
	}
	if scan.Timestamp == "" {
		scan.Timestamp = s.now().UTC().Format(time.RFC3339)
	}

	history = append([]domain.ScanHistory{scan}, history...)
	if len(history) > domain.ScanHistoryLimit {
		history = history[:domain.ScanHistoryLimit]
	}

	if err := s.repo.StoreScanHistory(ctx, history); err != nil {
		return nil, err
	}

	return &scan, nil
}
