// Package config provides environment configuration for the bot service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	// Admin HTTP settings
	AdminPort          string
	AdminReadTimeout   time.Duration
	AdminWriteTimeout  time.Duration
	AdminRateLimit     int
	AdminRateWindow    time.Duration

	// Generation API settings
	APIKeys            []string
	APIBaseURL         string
	Model              string
	Temperature        float64
	MaxTokens          int
	TopP               float64
	RequestTimeout     time.Duration
	MaxRetries         int
	KeyFailureCooldown time.Duration

	// Conversation settings
	RateLimitPerUser int
	RateLimitWindow  time.Duration
	SessionTTL       time.Duration
	ProgressInterval time.Duration

	// Chat-transport adapter
	AdapterURL string

	// Storage
	DatabasePath string

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		// Admin HTTP
		AdminPort:         getEnv("ADMIN_PORT", "8080"),
		AdminReadTimeout:  getDurationEnv("ADMIN_READ_TIMEOUT", 30*time.Second),
		AdminWriteTimeout: getDurationEnv("ADMIN_WRITE_TIMEOUT", 60*time.Second),
		AdminRateLimit:    getIntEnv("ADMIN_RATE_LIMIT", 60),
		AdminRateWindow:   getDurationEnv("ADMIN_RATE_WINDOW", time.Minute),

		// Generation API
		APIKeys:            getListEnv("GENAI_API_KEYS"),
		APIBaseURL:         getEnv("GENAI_API_URL", "https://api.deepseek.com/v1"),
		Model:              getEnv("GENAI_MODEL", "deepseek-coder"),
		Temperature:        getFloatEnv("GENAI_TEMPERATURE", 0.7),
		MaxTokens:          getIntEnv("GENAI_MAX_TOKENS", 4000),
		TopP:               getFloatEnv("GENAI_TOP_P", 0.9),
		RequestTimeout:     getDurationEnv("GENAI_REQUEST_TIMEOUT", 60*time.Second),
		MaxRetries:         getIntEnv("GENAI_MAX_RETRIES", 3),
		KeyFailureCooldown: getDurationEnv("KEY_FAILURE_COOLDOWN", 0),

		// Conversation
		RateLimitPerUser: getIntEnv("RATE_LIMIT_PER_USER", 10),
		RateLimitWindow:  getDurationEnv("RATE_LIMIT_WINDOW", time.Hour),
		SessionTTL:       getDurationEnv("SESSION_TTL", 30*time.Minute),
		ProgressInterval: getDurationEnv("PROGRESS_INTERVAL", 2*time.Second),

		// Chat-transport adapter
		AdapterURL: getEnv("ADAPTER_URL", "http://localhost:8081"),

		// Storage
		DatabasePath: getEnv("DATABASE_PATH", "sitecraft.db"),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getListEnv(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
