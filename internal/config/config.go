package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort   = "8080"
	defaultOrigin = "http://localhost:4500"
)

type Config struct {
	MongoURI       string
	MongoDatabase  string
	APIPort        string
	GinMode        string
	AllowedOrigins []string
}

// Load reads the .env file when present and builds the Config from the
// environment. MONGO_URI and MONGO_DATABASE are required.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg := &Config{
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDatabase:  os.Getenv("MONGO_DATABASE"),
		APIPort:        os.Getenv("API_PORT"),
		GinMode:        os.Getenv("GIN_MODE"),
		AllowedOrigins: splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.MongoURI == "" || cfg.MongoDatabase == "" {
		return nil, errors.New("environment variables (MONGO_URI, MONGO_DATABASE) are required")
	}
	if cfg.APIPort == "" {
		cfg.APIPort = defaultPort
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{defaultOrigin}
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
