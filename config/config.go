package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Vision    VisionConfig
	Shopping  ShoppingConfig
	Places    PlacesConfig
	Cache     CacheConfig
	Closet    ClosetConfig
	Logging   LoggingConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// VisionConfig holds image-annotation vendor configuration
type VisionConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// ShoppingConfig holds shopping-search vendor configuration
type ShoppingConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// PlacesConfig holds places vendor configuration
type PlacesConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// ClosetConfig holds local persistence configuration
type ClosetConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// RateLimitConfig holds outbound vendor rate limiting configuration
type RateLimitConfig struct {
	Vision   int `mapstructure:"vision"`
	Shopping int `mapstructure:"shopping"`
	Places   int `mapstructure:"places"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/stylesnap/")

	// Environment variable settings
	v.SetEnvPrefix("STYLESNAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Vendor defaults
	v.SetDefault("vision.base_url", "https://vision.googleapis.com")
	v.SetDefault("shopping.base_url", "https://scraping.narf.ai")
	v.SetDefault("places.base_url", "https://maps.googleapis.com")

	// Cache defaults
	v.SetDefault("cache.ttl", "1h")

	// Closet defaults
	v.SetDefault("closet.db_path", "closet.db")

	// Logging defaults
	v.SetDefault("logging.level", "info")

	// Rate limit defaults (requests per second per vendor)
	v.SetDefault("ratelimit.vision", 10)
	v.SetDefault("ratelimit.shopping", 5)
	v.SetDefault("ratelimit.places", 10)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Vision.APIKey == "" {
		return fmt.Errorf("vision API key is required (set STYLESNAP_VISION_API_KEY)")
	}

	if config.Shopping.APIKey == "" {
		return fmt.Errorf("shopping API key is required (set STYLESNAP_SHOPPING_API_KEY)")
	}

	if config.Places.APIKey == "" {
		return fmt.Errorf("places API key is required (set STYLESNAP_PLACES_API_KEY)")
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got: %v", config.Cache.TTL)
	}

	if config.Closet.DBPath == "" {
		return fmt.Errorf("closet DB path is required")
	}

	return nil
}
