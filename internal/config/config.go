package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the engine
type Config struct {
	Redis  RedisConfig
	Engine EngineConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string // Optional: empty falls back to in-memory repositories
}

// EngineConfig holds resolution-engine configuration
type EngineConfig struct {
	// CardPackDir is where YAML card packs are loaded from
	CardPackDir string

	// RepetitionDelaySeconds is the default pacing between repetitions
	RepetitionDelaySeconds int

	// DisablePacing turns off cosmetic delays entirely
	DisablePacing bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Engine: EngineConfig{
			CardPackDir:            getEnvOrDefault("CARD_PACK_DIR", "packs"),
			RepetitionDelaySeconds: getEnvAsIntOrDefault("REPETITION_DELAY_SECONDS", 2),
			DisablePacing:          os.Getenv("DISABLE_PACING") == "true",
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
