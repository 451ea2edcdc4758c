// Package availability holds per-store stock lookups. Until real retailer
// integrations exist, the only implementation is a deterministic
// placeholder.
package availability

import (
	"context"
	"time"

	"github.com/stylesnap/backend/internal/domain"
)

// StaticChecker reports every requested store as in stock with unknown
// quantity. It replaces the earlier randomized placeholder so responses
// are stable; swap in a retailer-backed implementation behind
// domain.AvailabilityChecker when one exists.
type StaticChecker struct {
	now func() time.Time
}

// NewStaticChecker creates the placeholder checker; nil defaults the clock
// to time.Now.
func NewStaticChecker(now func() time.Time) *StaticChecker {
	if now == nil {
		now = time.Now
	}
	return &StaticChecker{now: now}
}

// Check implements domain.AvailabilityChecker
func (c *StaticChecker) Check(ctx context.Context, productID string, storeIDs []string) ([]domain.AvailabilityRecord, error) {
	updated := c.now().UTC().Format(time.RFC3339)

	records := make([]domain.AvailabilityRecord, 0, len(storeIDs))
	for _, storeID := range storeIDs {
		records = append(records, domain.AvailabilityRecord{
			StoreID:     storeID,
			InStock:     true,
			Quantity:    0, // unknown
			LastUpdated: updated,
		})
	}
	return records, nil
}
