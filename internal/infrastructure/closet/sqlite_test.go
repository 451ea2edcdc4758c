package closet

import (
	"context"
	"testing"

	"github.com/stylesnap/backend/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_SavedItemsRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	items := []domain.SavedItem{
		{
			ID:      "saved-1",
			SavedAt: "2026-08-01T12:00:00Z",
			Product: domain.Product{ID: "p1", Name: "Nike Hoodie", Price: 59.99},
		},
	}

	if err := store.StoreSavedItems(ctx, items); err != nil {
		t.Fatalf("StoreSavedItems() error = %v", err)
	}

	got, err := store.LoadSavedItems(ctx)
	if err != nil {
		t.Fatalf("LoadSavedItems() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].ID != "saved-1" || got[0].Product.Name != "Nike Hoodie" {
		t.Errorf("unexpected item: %+v", got[0])
	}
}

func TestStore_EmptyLoads(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	items, err := store.LoadSavedItems(ctx)
	if err != nil {
		t.Fatalf("LoadSavedItems() error = %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("LoadSavedItems() = %v, want empty list", items)
	}

	history, err := store.LoadScanHistory(ctx)
	if err != nil {
		t.Fatalf("LoadScanHistory() error = %v", err)
	}
	if history == nil || len(history) != 0 {
		t.Errorf("LoadScanHistory() = %v, want empty list", history)
	}
}

func TestStore_CorruptDataDegradesToEmpty(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.db.ExecContext(ctx,
		`INSERT INTO blobs (key, value) VALUES ('savedItems', 'not json')`,
	); err != nil {
		t.Fatalf("seeding corrupt blob: %v", err)
	}

	items, err := store.LoadSavedItems(ctx)
	if err != nil {
		t.Fatalf("LoadSavedItems() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("LoadSavedItems() = %v, want empty list", items)
	}
}

func TestStore_OverwriteReplaces(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := []domain.ScanHistory{{ID: "scan-1"}}
	second := []domain.ScanHistory{{ID: "scan-2"}, {ID: "scan-3"}}

	if err := store.StoreScanHistory(ctx, first); err != nil {
		t.Fatalf("StoreScanHistory() error = %v", err)
	}
	if err := store.StoreScanHistory(ctx, second); err != nil {
		t.Fatalf("StoreScanHistory() error = %v", err)
	}

	got, err := store.LoadScanHistory(ctx)
	if err != nil {
		t.Fatalf("LoadScanHistory() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != "scan-2" {
		t.Errorf("LoadScanHistory() = %+v, want replacement list", got)
	}
}
