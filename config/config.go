package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the tracker.
type Config struct {
	Logger LoggerConfig
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level  string
	Pretty bool
}

// Load reads configuration from environment variables, applying
// defaults where values are missing. A .env file is honored if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Logger: LoggerConfig{
			Level:  getEnv("CRM_LOG_LEVEL", "info"),
			Pretty: getEnvAsBool("CRM_LOG_PRETTY", false),
		},
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
