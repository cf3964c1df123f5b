package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime knobs for the verification workflow. Lookup tables
// (tariffs, limits, icons) live in Tables and are loaded separately.
type Config struct {
	SMSCodeLength     int
	SMSCodeTTL        time.Duration
	SMSMaxAttempts    int
	SMSResendCooldown time.Duration
	SMSMaxPerHour     int
	TablesPath        string // empty means compiled-in defaults
}

// Load reads configuration from environment variables, with an optional
// .env file for local development.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}
	return &Config{
		SMSCodeLength:     getEnvInt("SMS_CODE_LENGTH", 6),
		SMSCodeTTL:        getEnvDur("SMS_CODE_TTL", 5*time.Minute),
		SMSMaxAttempts:    getEnvInt("SMS_MAX_ATTEMPTS", 3),
		SMSResendCooldown: getEnvDur("SMS_RESEND_COOLDOWN", 60*time.Second),
		SMSMaxPerHour:     getEnvInt("SMS_MAX_PER_HOUR", 3),
		TablesPath:        getEnv("TABLES_PATH", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDur(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
