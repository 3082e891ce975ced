package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all environment variables for the catalog-service.
type Config struct {
	MongoURI   string // MongoDB connection string
	MongoDB    string // Database name (default: catalog)
	Port       string // Service port (default: 8080)
	BackendURL string // Public base URL prepended to stored asset paths (optional)
	UploadDir  string // Root directory for stored assets (default: uploads)
	Env        string // "production" or "development"
}

// LoadConfig loads environment variables into Config struct and validates them.
// A local .env file is picked up when present, system env wins otherwise.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:   os.Getenv("MONGO_URI"),
		MongoDB:    os.Getenv("MONGO_DB"),
		Port:       os.Getenv("PORT"),
		BackendURL: os.Getenv("BACKEND_URL"),
		UploadDir:  os.Getenv("UPLOAD_DIR"),
		Env:        os.Getenv("ENV"),
	}

	if cfg.MongoDB == "" {
		cfg.MongoDB = "catalog"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}

	// Validate required fields
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}

	return cfg, nil
}
