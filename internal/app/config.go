package app

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the full runtime configuration, read from the environment.
type Config struct {
	Env      string
	Port     int
	Database string

	AuthSecret      string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	BcryptCost      int

	LogLevel  string
	LogFormat string
	LogFile   string

	SeedDemoData        bool
	ShutdownGracePeriod time.Duration
}

// devAuthSecret is used when AUTH_SECRET is unset outside production so a
// bare `go run` works. Production refuses to start without a real secret.
const devAuthSecret = "dev-insecure-secret-change-me"

// LoadConfig reads configuration from environment variables, applying
// defaults suitable for local development.
func LoadConfig() (Config, error) {
	cfg := Config{
		Env:      envString("ENV", "dev"),
		Port:     envInt("PORT", 8080),
		Database: envString("DATABASE_FILE", "ecommerce.db"),

		AuthSecret:      envString("AUTH_SECRET", ""),
		AccessTokenTTL:  envDuration("ACCESS_TOKEN_TTL", 30*time.Minute),
		RefreshTokenTTL: envDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		BcryptCost:      envInt("BCRYPT_COST", 0),

		LogLevel:  envString("LOG_LEVEL", "info"),
		LogFormat: envString("LOG_FORMAT", "json"),
		LogFile:   envString("LOG_FILE", ""),

		SeedDemoData:        envBool("SEED_DEMO_DATA", true),
		ShutdownGracePeriod: envDuration("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if cfg.AuthSecret == "" {
		if cfg.Env == "prod" {
			return Config{}, fmt.Errorf("AUTH_SECRET must be set when ENV=prod")
		}
		cfg.AuthSecret = devAuthSecret
	}

	if cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL <= 0 {
		return Config{}, fmt.Errorf("token TTLs must be positive")
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
