package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/stylesnap/backend/internal/domain"
	"github.com/stylesnap/backend/internal/usecase"
)

// DetectService identifies clothing in an uploaded image
type DetectService interface {
	DetectClothing(ctx context.Context, imageData string) (*domain.DetectionResponse, error)
}

// ProductService searches and retrieves products
type ProductService interface {
	SearchProducts(ctx context.Context, req *usecase.ProductSearchRequest) (*domain.ProductSearchResponse, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

// StoreService locates nearby stores and checks stock
type StoreService interface {
	FindNearbyStores(ctx context.Context, location domain.Coordinates, retailer string, radiusMeters int) (*domain.StoreSearchResponse, error)
	CheckAvailability(ctx context.Context, productID string, storeIDs []string) (*domain.AvailabilityResponse, error)
}

// ClosetService manages saved items and scan history
type ClosetService interface {
	ListSavedItems(ctx context.Context) ([]domain.SavedItem, error)
	SaveItem(ctx context.Context, product domain.Product, notes string) (*domain.SavedItem, error)
	RemoveSavedItem(ctx context.Context, productID string) error
	ListScanHistory(ctx context.Context) ([]domain.ScanHistory, error)
	AddScan(ctx context.Context, scan domain.ScanHistory) (*domain.ScanHistory, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	detect   DetectService
	products ProductService
	stores   StoreService
	closet   ClosetService
	logger   zerolog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(detect DetectService, products ProductService, stores StoreService, closet ClosetService, logger zerolog.Logger) *Handler {
	return &Handler{
		detect:   detect,
		products: products,
		stores:   stores,
		closet:   closet,
		logger:   logger.With().Str("component", "http").Logger(),
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "stylesnap-backend",
		"version": "1.0.0",
	})
}

// DetectClothing handles clothing detection requests
func (h *Handler) DetectClothing(c *gin.Context) {
	var req struct {
		ImageData string `json:"imageData"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageData == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "imageData is required",
		})
		return
	}

	response, err := h.detect.DetectClothing(c.Request.Context(), req.ImageData)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "imageData is required"})
			return
		}
		h.logger.Error().Err(err).Msg("detection failed")
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   "Image analysis temporarily unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// SearchProducts handles product search requests
func (h *Handler) SearchProducts(c *gin.Context) {
	var req usecase.ProductSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	response, err := h.products.SearchProducts(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
			return
		}
		h.logger.Error().Err(err).Msg("product search failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Search service temporarily unavailable"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetProduct returns details for a previously searched product
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.products.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "product id is required"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// FindNearbyStores handles nearby-store lookup requests
func (h *Handler) FindNearbyStores(c *gin.Context) {
	var req struct {
		Lat      float64 `json:"lat"`
		Lng      float64 `json:"lng"`
		Retailer string  `json:"retailer"`
		Radius   int     `json:"radius"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng are required"})
		return
	}

	response, err := h.stores.FindNearbyStores(c.Request.Context(), domain.Coordinates{Lat: req.Lat, Lng: req.Lng}, req.Retailer, req.Radius)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lng are required"})
			return
		}
		h.logger.Error().Err(err).Msg("store lookup failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Store lookup temporarily unavailable"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// CheckAvailability handles per-store stock requests
func (h *Handler) CheckAvailability(c *gin.Context) {
	var req struct {
		ProductID string   `json:"productId"`
		StoreIDs  []string `json:"storeIds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productId and storeIds are required"})
		return
	}

	response, err := h.stores.CheckAvailability(c.Request.Context(), req.ProductID, req.StoreIDs)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId and storeIds are required"})
			return
		}
		h.logger.Error().Err(err).Msg("availability check failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Availability check temporarily unavailable"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListSavedItems returns the user's saved items
func (h *Handler) ListSavedItems(c *gin.Context) {
	items, err := h.closet.ListSavedItems(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load saved items")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load saved items"})
		return
	}
	if items == nil {
		items = []domain.SavedItem{}
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// SaveItem adds a product to the user's saved items
func (h *Handler) SaveItem(c *gin.Context) {
	var req struct {
		Product domain.Product `json:"product"`
		Notes   string         `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product is required"})
		return
	}

	item, err := h.closet.SaveItem(c.Request.Context(), req.Product, req.Notes)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product is required"})
			return
		}
		h.logger.Error().Err(err).Msg("failed to save item")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// RemoveSavedItem removes a product from the user's saved items
func (h *Handler) RemoveSavedItem(c *gin.Context) {
	productID := c.Param("productId")
	if err := h.closet.RemoveSavedItem(c.Request.Context(), productID); err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
			return
		}
		h.logger.Error().Err(err).Msg("failed to remove saved item")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove saved item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": productID})
}

// ListScanHistory returns the user's scan history, newest first
func (h *Handler) ListScanHistory(c *gin.Context) {
	history, err := h.closet.ListScanHistory(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to load scan history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load scan history"})
		return
	}
	if history == nil {
		history = []domain.ScanHistory{}
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

// AddScan records a scan event in the user's history
func (h *Handler) AddScan(c *gin.Context) {
	var scan domain.ScanHistory
	if err := c.ShouldBindJSON(&scan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scan payload is invalid"})
		return
	}

	recorded, err := h.closet.AddScan(c.Request.Context(), scan)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to record scan")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record scan"})
		return
	}

	c.JSON(http.StatusCreated, recorded)
}
