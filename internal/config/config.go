package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server
	Port        string
	BaseURL     string
	Environment string // development, staging, production

	// Hotel REST API
	APIURL     string
	APITimeout time.Duration

	// JWTKey verifies access tokens issued by the API. When empty, token
	// claims are read without signature verification.
	JWTKey string

	// Database (optional, enables persisted table views)
	DatabaseURL string

	// Session
	SessionSecret string
	SessionMaxAge time.Duration

	// Security
	CSRFSecret string

	// Tables
	DefaultPageSize int
}

// Load reads configuration from environment variables.
// In development, it will also load from a .env file if present.
func Load() (*Config, error) {
	// Load .env file in development (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		APIURL: strings.TrimRight(getEnv("API_URL", "http://localhost:5000"), "/"),
		JWTKey: os.Getenv("JWT_KEY"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		SessionSecret: mustGetEnv("SESSION_SECRET"),
		SessionMaxAge: 7 * 24 * time.Hour, // matches the API refresh token lifetime

		CSRFSecret: mustGetEnv("CSRF_SECRET"),
	}

	timeout, err := time.ParseDuration(getEnv("API_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("API_TIMEOUT: %w", err)
	}
	cfg.APITimeout = timeout

	pageSize, err := strconv.Atoi(getEnv("DEFAULT_PAGE_SIZE", "10"))
	if err != nil || pageSize < 1 {
		return nil, fmt.Errorf("DEFAULT_PAGE_SIZE must be a positive integer, got %q", os.Getenv("DEFAULT_PAGE_SIZE"))
	}
	cfg.DefaultPageSize = pageSize

	// Validate session secret length (need 64 bytes for hash key + block key)
	if len(cfg.SessionSecret) < 64 {
		return nil, fmt.Errorf("SESSION_SECRET must be at least 64 characters, got %d", len(cfg.SessionSecret))
	}

	// gorilla/csrf requires a 32 byte authentication key
	if len(cfg.CSRFSecret) != 32 {
		return nil, fmt.Errorf("CSRF_SECRET must be exactly 32 characters, got %d", len(cfg.CSRFSecret))
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasDatabase reports whether a database is configured.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// getEnv returns the value of an environment variable or a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// mustGetEnv returns the value of an environment variable or panics if not set.
func mustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return value
}
