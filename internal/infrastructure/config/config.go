package config

import (
	"os"
	"strconv"
	"time"

	usecasecontract "github.com/ramentaro/ramen-taro-api/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL         string
	AdminPasswordHash  string
	AdminTokenExpiry   time.Duration
	VocabularyCacheTTL time.Duration
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		AppBaseURL:         getEnv("APP_BASE_URL", "http://localhost:8080"),
		AdminPasswordHash:  getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminTokenExpiry:   time.Hour * time.Duration(getEnvAsInt("ADMIN_TOKEN_EXPIRY_HOURS", 24)),
		VocabularyCacheTTL: time.Minute * time.Duration(getEnvAsInt("VOCAB_CACHE_TTL_MINUTES", 10)),
	}
}

// GetAppBaseURL returns the public base URL of the site.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetAdminPasswordHash returns the bcrypt hash of the admin password.
func (c *Config) GetAdminPasswordHash() string {
	return c.AdminPasswordHash
}

// GetAdminTokenExpiry returns the lifetime of admin session tokens.
func (c *Config) GetAdminTokenExpiry() time.Duration {
	return c.AdminTokenExpiry
}

// GetVocabularyCacheTTL returns the TTL of the cached tag vocabulary.
func (c *Config) GetVocabularyCacheTTL() time.Duration {
	return c.VocabularyCacheTTL
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
