package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/stylesnap/backend/internal/domain"
)

// fakeCache is a deterministic CacheRepository with no expiry
type fakeCache struct {
	mu   sync.Mutex
	data map[string]interface{}
	sets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]interface{})}
}

func (c *fakeCache) Get(ctx context.Context, key string) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, domain.ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.sets++
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *fakeCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[key]
	return ok, nil
}

// fakeVisionClient serves canned annotations and counts calls
type fakeVisionClient struct {
	annotations *domain.VisionAnnotations
	err         error
	calls       int
	lastImage   string
}

func (f *fakeVisionClient) Annotate(ctx context.Context, base64Image string) (*domain.VisionAnnotations, error) {
	f.calls++
	f.lastImage = base64Image
	if f.err != nil {
		return nil, f.err
	}
	return f.annotations, nil
}

// fakeShoppingClient serves canned items and counts calls
type fakeShoppingClient struct {
	items     []domain.ShoppingItem
	err       error
	calls     int
	lastQuery domain.ShoppingQuery
}

func (f *fakeShoppingClient) Search(ctx context.Context, query domain.ShoppingQuery) ([]domain.ShoppingItem, error) {
	f.calls++
	f.lastQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

// fakeStoreFinder serves canned stores
type fakeStoreFinder struct {
	stores []domain.Store
	err    error
	calls  int
}

func (f *fakeStoreFinder) NearbyStores(ctx context.Context, location domain.Coordinates, retailer string, radiusMeters int) ([]domain.Store, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.stores, nil
}

// fakeClosetRepo keeps closet state in memory
type fakeClosetRepo struct {
	items   []domain.SavedItem
	history []domain.ScanHistory
}

func (f *fakeClosetRepo) LoadSavedItems(ctx context.Context) ([]domain.SavedItem, error) {
	return f.items, nil
}

func (f *fakeClosetRepo) StoreSavedItems(ctx context.Context, items []domain.SavedItem) error {
	f.items = items
	return nil
}

func (f *fakeClosetRepo) LoadScanHistory(ctx context.Context) ([]domain.ScanHistory, error) {
	return f.history, nil
}

func (f *fakeClosetRepo) StoreScanHistory(ctx context.Context, history []domain.ScanHistory) error {
	f.history = history
	return nil
}

func testClock() func() time.Time {
	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time { return ts }
}
