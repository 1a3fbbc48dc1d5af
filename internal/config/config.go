// Package config loads service configuration from the environment, with a
// best-effort .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DatabaseURL  string
	StoreURL     string
	StoreAPIKey  string
	AIServiceURL string
	ChromePath   string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the environment. A missing .env file is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getenv("PORT", "3000"),
		DatabaseURL:  os.Getenv("RESUME_DATABASE_URL"),
		StoreURL:     getenv("RESUME_STORE_URL", "http://localhost:3000"),
		StoreAPIKey:  os.Getenv("RESUME_STORE_API_KEY"),
		AIServiceURL: getenv("AI_SERVICE_URL", "http://ai-service:8000"),
		ChromePath:   os.Getenv("CHROME_PATH"),
	}
}
