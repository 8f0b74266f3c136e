// Package config resolves process-wide configuration from the
// environment once at startup. There is no hot reload; changing the
// signing secret requires a restart and invalidates all issued tokens.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds every runtime setting. It is constructed once in main
// and passed by reference into each component.
type Config struct {
	Port         string
	DatabasePath string

	// SecretKey signs bearer tokens (HMAC-SHA256).
	SecretKey string
	TokenTTL  time.Duration

	BcryptCost int

	// StoreTimeout bounds each user-store call.
	StoreTimeout time.Duration

	GoogleAPIKey   string
	SearchEngineID string
}

// FromEnv builds a Config from environment variables, applying defaults
// and validating required values.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:           envOrDefault("PORT", "8080"),
		DatabasePath:   envOrDefault("DATABASE_PATH", "searchproxy.db"),
		SecretKey:      os.Getenv("SECRET_KEY"),
		GoogleAPIKey:   os.Getenv("GOOGLE_API_KEY"),
		SearchEngineID: os.Getenv("SEARCH_ENGINE_ID"),
		BcryptCost:     12,
		TokenTTL:       30 * time.Minute,
		StoreTimeout:   5 * time.Second,
	}

	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY environment variable is required")
	}
	if len(cfg.SecretKey) < 32 {
		return nil, fmt.Errorf("SECRET_KEY must be at least 32 characters for HMAC-SHA256 security")
	}
	if cfg.GoogleAPIKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY environment variable is required")
	}
	if cfg.SearchEngineID == "" {
		return nil, fmt.Errorf("SEARCH_ENGINE_ID environment variable is required")
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if cost < 4 || cost > 14 {
			return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", cost)
		}
		cfg.BcryptCost = cost
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
		}
		if ttl <= 0 {
			return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", ttl)
		}
		cfg.TokenTTL = ttl
	}

	if v := os.Getenv("STORE_TIMEOUT"); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid STORE_TIMEOUT: %w", err)
		}
		if timeout <= 0 {
			return nil, fmt.Errorf("STORE_TIMEOUT must be positive, got %s", timeout)
		}
		cfg.StoreTimeout = timeout
	}

	return cfg, nil
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
