package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     []byte
	TokenTTL      time.Duration
	AllowedOrigin string // empty means allow all
}

// Load reads configuration from the environment. DATABASE_URL and JWT_SECRET
// are required, everything else falls back to a sane default.
func Load() (Config, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL cannot be empty")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET cannot be empty")
	}
	ttlHours, err := strconv.Atoi(envOr("TOKEN_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		return Config{}, fmt.Errorf("TOKEN_TTL_HOURS must be a positive integer")
	}
	return Config{
		Port:          envOr("PORT", "8080"),
		DatabaseURL:   databaseURL,
		JWTSecret:     []byte(jwtSecret),
		TokenTTL:      time.Duration(ttlHours) * time.Hour,
		AllowedOrigin: os.Getenv("CORS_ORIGIN"),
	}, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
