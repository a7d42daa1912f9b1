package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Redis (optional response cache; empty disables it)
	RedisURL string

	// Rate limiting
	ChatRateLimit int

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "8000"),
		Env:           getEnvOrDefault("ENV", "development"),
		RedisURL:      getEnvOrDefault("REDIS_URL", ""),
		ChatRateLimit: getEnvAsIntOrDefault("CHAT_RATE_LIMIT", 60),
		FrontendURL:   getEnvOrDefault("FRONTEND_URL", "*"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
