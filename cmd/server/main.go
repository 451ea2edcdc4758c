package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/stylesnap/backend/config"
	httpDelivery "github.com/stylesnap/backend/internal/delivery/http"
	"github.com/stylesnap/backend/internal/infrastructure/availability"
	"github.com/stylesnap/backend/internal/infrastructure/cache"
	"github.com/stylesnap/backend/internal/infrastructure/closet"
	"github.com/stylesnap/backend/internal/infrastructure/places"
	"github.com/stylesnap/backend/internal/infrastructure/shopping"
	"github.com/stylesnap/backend/internal/infrastructure/vision"
	"github.com/stylesnap/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)
	logger.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Dur("cache_ttl", cfg.Cache.TTL).
		Msg("starting stylesnap backend")

	// Infrastructure
	memoryCache := cache.NewMemoryCache()

	visionClient := vision.NewClient(cfg.Vision.APIKey, cfg.Vision.BaseURL, logger)
	visionClient.SetRateLimit(cfg.RateLimit.Vision)

	shoppingClient := shopping.NewClient(cfg.Shopping.APIKey, cfg.Shopping.BaseURL, logger)
	shoppingClient.SetRateLimit(cfg.RateLimit.Shopping)

	placesClient := places.NewClient(cfg.Places.APIKey, cfg.Places.BaseURL, logger)
	placesClient.SetRateLimit(cfg.RateLimit.Places)

	storeFinder := places.NewNormalizer(placesClient, places.USAddressParser{}, logger)

	closetStore, err := closet.Open(cfg.Closet.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Closet.DBPath).Msg("failed to open closet store")
	}
	defer closetStore.Close()

	// Usecase layer
	detectService := usecase.NewDetectService(memoryCache, visionClient, cfg.Cache.TTL, logger)
	productService := usecase.NewProductService(memoryCache, shoppingClient, shopping.NewNormalizer(time.Now), cfg.Cache.TTL, logger)
	storeService := usecase.NewStoreService(memoryCache, storeFinder, availability.NewStaticChecker(time.Now), cfg.Cache.TTL, logger)
	closetService := usecase.NewClosetService(closetStore, nil, nil, logger)

	// HTTP delivery
	handler := httpDelivery.NewHandler(detectService, productService, storeService, closetService, logger)
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info().Str("addr", addr).Msg("server listening")

	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func initLogger(cfg *config.Config) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var output io.Writer = os.Stdout
	if cfg.Server.Environment == "development" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	return zerolog.New(output).Level(level).With().Timestamp().Str("service", "stylesnap-backend").Logger()
}
