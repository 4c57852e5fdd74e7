package config

import (
	"os"
	"strconv"
	"time"

	"github.com/go-kit/log"
	"github.com/joho/godotenv"
)

const (
	FeeSourceMemory   = "memory"
	FeeSourcePostgres = "postgres"
)

// Config holds the runtime settings of the fee service.
type Config struct {
	Port            string
	FeeSource       string
	DatabaseURL     string
	RedisAddr       string
	FeeCacheTTL     time.Duration
	Interpolation   string
	RateLimit       int
	RateLimitWindow time.Duration
	QuoteHistory    int
	SeedFees        bool
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv(logger log.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Log("msg", "no .env file found", "err", err)
	}
}

// Load reads the configuration from the environment, applying defaults.
func Load() Config {
	return Config{
		Port:            GetEnv("PORT", "8080"),
		FeeSource:       GetEnv("FEE_SOURCE", FeeSourceMemory),
		DatabaseURL:     GetEnv("DATABASE_URL", ""),
		RedisAddr:       GetEnv("REDIS_ADDR", ""),
		FeeCacheTTL:     GetDurationEnv("FEE_CACHE_TTL", 10*time.Minute),
		Interpolation:   GetEnv("INTERPOLATION", "linear"),
		RateLimit:       GetIntEnv("RATE_LIMIT", 5),
		RateLimitWindow: GetDurationEnv("RATE_LIMIT_WINDOW", time.Minute),
		QuoteHistory:    GetIntEnv("QUOTE_HISTORY", 100),
		SeedFees:        GetBoolEnv("SEED_FEES", false),
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable such as "90s" or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// GetBoolEnv returns a bool environment variable or a default value.
func GetBoolEnv(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
