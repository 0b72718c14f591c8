package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Database
	DatabaseURL string

	// Server
	Port         string
	CORSOrigins  []string
	Env          string
	ClientOrigin string

	// TrueLayer
	TrueLayer TrueLayerConfig
}

// TrueLayerConfig holds open-banking provider configuration. ClientSecret is
// read once at startup and never leaves the process.
type TrueLayerConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	AuthURL      string
	APIURL       string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		Port:         getEnv("PORT", "8080"),
		CORSOrigins:  strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173"), ","),
		Env:          getEnv("ENV", "development"),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		TrueLayer: TrueLayerConfig{
			ClientID:     getEnv("TRUELAYER_CLIENT_ID", ""),
			ClientSecret: getEnv("TRUELAYER_CLIENT_SECRET", ""),
			RedirectURI:  getEnv("TRUELAYER_REDIRECT_URI", ""),
			AuthURL:      getEnv("TRUELAYER_AUTH_URL", "https://auth.truelayer-sandbox.com"),
			APIURL:       getEnv("TRUELAYER_API_URL", "https://api.truelayer-sandbox.com"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.TrueLayer.ClientID == "" {
		return fmt.Errorf("TRUELAYER_CLIENT_ID is required")
	}
	if c.TrueLayer.ClientSecret == "" {
		return fmt.Errorf("TRUELAYER_CLIENT_SECRET is required")
	}
	if c.TrueLayer.RedirectURI == "" {
		return fmt.Errorf("TRUELAYER_REDIRECT_URI is required")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
