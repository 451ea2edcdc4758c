package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/stylesnap/backend/config"
	"github.com/stylesnap/backend/internal/domain"
	"github.com/stylesnap/backend/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type stubDetect struct {
	response *domain.DetectionResponse
	err      error
}

func (s *stubDetect) DetectClothing(ctx context.Context, imageData string) (*domain.DetectionResponse, error) {
	return s.response, s.err
}

type stubProducts struct {
	response *domain.ProductSearchResponse
	product  *domain.Product
	err      error
}

func (s *stubProducts) SearchProducts(ctx context.Context, req *usecase.ProductSearchRequest) (*domain.ProductSearchResponse, error) {
	return s.response, s.err
}

func (s *stubProducts) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if s.product == nil {
		return nil, domain.ErrNotFound
	}
	return s.product, nil
}

type stubStores struct {
	response     *domain.StoreSearchResponse
	availability *domain.AvailabilityResponse
	err          error
}

func (s *stubStores) FindNearbyStores(ctx context.Context, location domain.Coordinates, retailer string, radiusMeters int) (*domain.StoreSearchResponse, error) {
	if location.Lat == 0 || location.Lng == 0 {
		return nil, domain.ErrInvalidRequest
	}
	return s.response, s.err
}

func (s *stubStores) CheckAvailability(ctx context.Context, productID string, storeIDs []string) (*domain.AvailabilityResponse, error) {
	if productID == "" || len(storeIDs) == 0 {
		return nil, domain.ErrInvalidRequest
	}
	return s.availability, s.err
}

type stubCloset struct {
	items   []domain.SavedItem
	history []domain.ScanHistory
}

func (s *stubCloset) ListSavedItems(ctx context.Context) ([]domain.SavedItem, error) {
	return s.items, nil
}

func (s *stubCloset) SaveItem(ctx context.Context, product domain.Product, notes string) (*domain.SavedItem, error) {
	if product.ID == "" {
		return nil, domain.ErrInvalidRequest
	}
	item := domain.SavedItem{ID: "saved_test", Product: product, SavedAt: "2026-08-01T12:00:00Z", Notes: notes}
	s.items = append(s.items, item)
	return &item, nil
}

func (s *stubCloset) RemoveSavedItem(ctx context.Context, productID string) error {
	if productID == "" {
		return domain.ErrInvalidRequest
	}
	return nil
}

func (s *stubCloset) ListScanHistory(ctx context.Context) ([]domain.ScanHistory, error) {
	return s.history, nil
}

func (s *stubCloset) AddScan(ctx context.Context, scan domain.ScanHistory) (*domain.ScanHistory, error) {
	s.history = append([]domain.ScanHistory{scan}, s.history...)
	return &scan, nil
}

type routerOption func(*Handler)

func withDetect(d DetectService) routerOption { return func(h *Handler) { h.detect = d } }

func withProducts(p ProductService) routerOption { return func(h *Handler) { h.products = p } }

func withStores(s StoreService) routerOption { return func(h *Handler) { h.stores = s } }

// setupTestRouter creates a test router with stubbed services
func setupTestRouter(opts ...routerOption) *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"*"},
		},
		Cache: config.CacheConfig{TTL: time.Hour},
	}

	handler := NewHandler(&stubDetect{}, &stubProducts{}, &stubStores{}, &stubCloset{}, zerolog.Nop())
	for _, opt := range opts {
		opt(handler)
	}

	return SetupRouter(cfg, handler, zerolog.Nop())
}

func doJSON(router *gin.Engine, method, path, payload string) *httptest.ResponseRecorder {
	var body *strings.Reader
	if payload == "" {
		body = strings.NewReader("")
	} else {
		body = strings.NewReader(payload)
	}
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheckEndpoint(t *testing.T) {
	t.Run("returns healthy status", func(t *testing.T) {
		router := setupTestRouter()

		w := doJSON(router, "GET", "/health", "")

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response["status"] != "healthy" {
			t.Errorf("status = %v, want healthy", response["status"])
		}
		if response["service"] != "stylesnap-backend" {
			t.Errorf("service = %v, want stylesnap-backend", response["service"])
		}
	})
}

func TestDetectEndpoint(t *testing.T) {
	t.Run("returns detections", func(t *testing.T) {
		detect := &stubDetect{response: &domain.DetectionResponse{
			Detections: []domain.DetectionResult{{Category: "Shoes", Confidence: 92}},
			Success:    true,
		}}
		router := setupTestRouter(withDetect(detect))

		w := doJSON(router, "POST", "/api/v1/vision/detect", `{"imageData":"aW1hZ2U="}`)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
		}

		var response domain.DetectionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if !response.Success {
			t.Error("success = false, want true")
		}
		if len(response.Detections) != 1 || response.Detections[0].Category != "Shoes" {
			t.Errorf("detections = %+v, want one Shoes detection", response.Detections)
		}
	})

	t.Run("missing imageData returns 400", func(t *testing.T) {
		router := setupTestRouter()

		w := doJSON(router, "POST", "/api/v1/vision/detect", `{}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("upstream failure returns 502", func(t *testing.T) {
		router := setupTestRouter(withDetect(&stubDetect{err: domain.ErrVisionAPIFailure}))

		w := doJSON(router, "POST", "/api/v1/vision/detect", `{"imageData":"aW1hZ2U="}`)

		if w.Code != http.StatusBadGateway {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadGateway)
		}
	})
}

func TestSearchProductsEndpoint(t *testing.T) {
	t.Run("returns products", func(t *testing.T) {
		products := &stubProducts{response: &domain.ProductSearchResponse{
			Products:     []domain.Product{{ID: "abc123", Name: "Nike Air Max 90"}},
			TotalResults: 1,
			Page:         1,
		}}
		router := setupTestRouter(withProducts(products))

		w := doJSON(router, "POST", "/api/v1/products/search", `{"query":"sneakers"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response domain.ProductSearchResponse
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.TotalResults != 1 {
			t.Errorf("totalResults = %d, want 1", response.TotalResults)
		}
	})

	t.Run("missing query returns 400", func(t *testing.T) {
		router := setupTestRouter()

		w := doJSON(router, "POST", "/api/v1/products/search", `{"category":"Shoes"}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("degraded search still returns 200", func(t *testing.T) {
		products := &stubProducts{response: &domain.ProductSearchResponse{
			Products: []domain.Product{},
			Page:     1,
			Error:    "Search service temporarily unavailable",
		}}
		router := setupTestRouter(withProducts(products))

		w := doJSON(router, "POST", "/api/v1/products/search", `{"query":"sneakers"}`)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}

		var response domain.ProductSearchResponse
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if response.Error == "" {
			t.Error("error advisory missing from degraded response")
		}
	})
}

func TestGetProductEndpoint(t *testing.T) {
	t.Run("returns cached product", func(t *testing.T) {
		products := &stubProducts{product: &domain.Product{ID: "abc123", Name: "Nike Air Max 90"}}
		router := setupTestRouter(withProducts(products))

		w := doJSON(router, "GET", "/api/v1/products/abc123", "")

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("unknown product returns 404", func(t *testing.T) {
		router := setupTestRouter()

		w := doJSON(router, "GET", "/api/v1/products/nope", "")

		if w.Code != http.StatusNotFound {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})
}

func TestNearbyStoresEndpoint(t *testing.T) {
	t.Run("returns stores", func(t *testing.T) {
		stores := &stubStores{response: &domain.StoreSearchResponse{
			Stores:       []domain.Store{{ID: "s1", Name: "Nike Store", Distance: 1.2}},
			TotalResults: 1,
		}}
		router := setupTestRouter(withStores(stores))

		w := doJSON(router, "POST", "/api/v1/stores/nearby", `{"lat":37.77,"lng":-122.42}`)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d, body %s", w.Code, http.StatusOK, w.Body.String())
		}
	})

	t.Run("missing coordinates returns 400", func(t *testing.T) {
		router := setupTestRouter()

		w := doJSON(router, "POST", "/api/v1/stores/nearby", `{"lat":37.77}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("upstream failure returns 502", func(t *testing.T) {
		router := setupTestRouter(withStores(&stubStores{err: domain.ErrPlacesAPIFailure}))

		w := doJSON(router, "POST", "/api/v1/stores/nearby", `{"lat":37.77,"lng":-122.42}`)

		if w.Code != http.StatusBadGateway {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadGateway)
		}
	})
}

func TestAvailabilityEndpoint(t *testing.T) {
	t.Run("returns availability records", func(t *testing.T) {
		stores := &stubStores{availability: &domain.AvailabilityResponse{
			Availability: []domain.AvailabilityRecord{{StoreID: "s1", InStock: true}},
		}}
		router := setupTestRouter(withStores(stores))

		w := doJSON(router, "POST", "/api/v1/stores/availability", `{"productId":"abc123","storeIds":["s1"]}`)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		router := setupTestRouter()

		w := doJSON(router, "POST", "/api/v1/stores/availability", `{"productId":"abc123"}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestClosetEndpoints(t *testing.T) {
	t.Run("list saved items returns empty array not null", func(t *testing.T) {
		router := setupTestRouter()

		w := doJSON(router, "GET", "/api/v1/closet/items", "")

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
		}
		if !strings.Contains(w.Body.String(), `"items":[]`) {
			t.Errorf("body = %s, want empty items array", w.Body.String())
		}
	})

	t.Run("save item returns 201", func(t *testing.T) {
		router := setupTestRouter()

		w := doJSON(router, "POST", "/api/v1/closet/items", `{"product":{"id":"abc123","name":"Nike Hoodie"},"notes":"gift"}`)

		if w.Code != http.StatusCreated {
			t.Fatalf("Status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
		}
	})

	t.Run("save item without product returns 400", func(t *testing.T) {
		router := setupTestRouter()

		w := doJSON(router, "POST", "/api/v1/closet/items", `{}`)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("remove saved item returns 200", func(t *testing.T) {
		router := setupTestRouter()

		w := doJSON(router, "DELETE", "/api/v1/closet/items/abc123", "")

		if w.Code != http.StatusOK {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("add scan returns 201", func(t *testing.T) {
		router := setupTestRouter()

		w := doJSON(router, "POST", "/api/v1/closet/history", `{"imageUrl":"shot.jpg","productsFound":3}`)

		if w.Code != http.StatusCreated {
			t.Fatalf("Status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
		}
	})
}
