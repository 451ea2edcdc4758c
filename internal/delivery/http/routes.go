package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/stylesnap/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger zerolog.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(MetricsMiddleware())

	// Operational endpoints
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		vision := v1.Group("/vision")
		{
			vision.POST("/detect", handler.DetectClothing)
		}

		products := v1.Group("/products")
		{
			products.POST("/search", handler.SearchProducts)
			products.GET("/:id", handler.GetProduct)
		}

		stores := v1.Group("/stores")
		{
			stores.POST("/nearby", handler.FindNearbyStores)
			stores.POST("/availability", handler.CheckAvailability)
		}

		closet := v1.Group("/closet")
		{
			closet.GET("/items", handler.ListSavedItems)
			closet.POST("/items", handler.SaveItem)
			closet.DELETE("/items/:productId", handler.RemoveSavedItem)
			closet.GET("/history", handler.ListScanHistory)
			closet.POST("/history", handler.AddScan)
		}
	}

	return router
}
