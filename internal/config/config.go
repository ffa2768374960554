// Package config loads runtime settings from the environment, with .env
// support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment string
	LogLevel    string
	LogFormat   string

	MinBet float64
	MaxBet float64

	MetricsAddr string
	SimRounds   int
	SimSeed     int64
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		MetricsAddr: getEnv("METRICS_ADDR", ""),
	}

	var err error
	if cfg.MinBet, err = getEnvFloat("MIN_BET", 1); err != nil {
		return nil, err
	}
	if cfg.MaxBet, err = getEnvFloat("MAX_BET", 10000); err != nil {
		return nil, err
	}
	if cfg.MinBet > cfg.MaxBet {
		return nil, fmt.Errorf("MIN_BET %v exceeds MAX_BET %v", cfg.MinBet, cfg.MaxBet)
	}

	rounds, err := getEnvInt("SIM_ROUNDS", 10000)
	if err != nil {
		return nil, err
	}
	cfg.SimRounds = rounds

	seed, err := getEnvInt("SIM_SEED", 0)
	if err != nil {
		return nil, err
	}
	cfg.SimSeed = int64(seed)

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return f, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}
