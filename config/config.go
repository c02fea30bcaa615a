package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application-level configuration
type Config struct {
	// Database
	DatabaseDriver string `validate:"required,oneof=sqlite postgres"`
	DatabaseDSN    string `validate:"required"`

	// Input
	InputCSVPath string `validate:"required"`

	// Pipeline
	ProgressEvery  int `validate:"min=1"`
	ConnectRetries int `validate:"min=1"`

	// Logging
	LogLevel   string `validate:"required"`
	PrettyLogs bool
}

// Load reads configuration from the environment (optionally seeded from
// a .env file), falls back to defaults and validates the result.
func Load() (*Config, error) {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseDriver: getEnv("DB_DRIVER", "sqlite"),
		DatabaseDSN:    getEnv("DB_DSN", "data/processed/rvezy_listings.db"),
		InputCSVPath:   getEnv("INPUT_CSV_PATH", "data/raw/rvezy_listings.csv"),
		ProgressEvery:  getEnvInt("PROGRESS_LOG_EVERY", 50),
		ConnectRetries: getEnvInt("DB_CONNECT_RETRIES", 3),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		PrettyLogs:     getEnvBool("PRETTY_LOGS", true),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
