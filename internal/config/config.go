package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Client
	ApiBaseURL    string
	ClientTimeout time.Duration

	// Dev API server
	ApiPort         string
	MaxUploadSizeMB int
	UploadBaseURL   string // Base URL prefixed to stored image keys

	// Rate Limiting
	RateLimitBucketSize int
	RateLimitRefillRate int // tokens per second
}

// Load configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file, ignoring errors if it doesn't exist
	godotenv.Load()

	cfg := &Config{}

	// Helper function to get env var or default
	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}
		return defaultValue
	}

	getEnvInt := func(key string, defaultValue int) (int, error) {
		raw, exists := os.LookupEnv(key)
		if !exists {
			return defaultValue, nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
		}
		return v, nil
	}

	cfg.ApiPort = getEnv("API_PORT", "8080")
	cfg.ApiBaseURL = getEnv("API_BASE_URL", "http://localhost:"+cfg.ApiPort)
	cfg.UploadBaseURL = getEnv("UPLOAD_BASE_URL", cfg.ApiBaseURL)

	timeoutSec, err := getEnvInt("CLIENT_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, err
	}
	cfg.ClientTimeout = time.Duration(timeoutSec) * time.Second

	if cfg.MaxUploadSizeMB, err = getEnvInt("MAX_UPLOAD_SIZE_MB", 5); err != nil {
		return nil, err
	}
	if cfg.RateLimitBucketSize, err = getEnvInt("RATE_LIMIT_BUCKET_SIZE", 30); err != nil {
		return nil, err
	}
	if cfg.RateLimitRefillRate, err = getEnvInt("RATE_LIMIT_REFILL_RATE", 10); err != nil {
		return nil, err
	}

	return cfg, nil
}
