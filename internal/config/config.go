package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config keeps runtime settings for the server.
type Config struct {
	Addr            string
	DatabaseURL     string
	StaticDir       string
	SessionTTL      time.Duration
	SessionSweep    time.Duration
	RateLimitPerMin int
	RateLimitBurst  int
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	cfg := Config{
		Addr:            strings.TrimSpace(os.Getenv("ADDR")),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DATABASE_URL")),
		StaticDir:       strings.TrimSpace(os.Getenv("STATIC_DIR")),
		SessionTTL:      parseHours(os.Getenv("SESSION_TTL_HOURS")),
		SessionSweep:    parseMinutes(os.Getenv("SESSION_SWEEP_MINUTES")),
		RateLimitPerMin: parseInt(os.Getenv("RATE_LIMIT_PER_MIN")),
		RateLimitBurst:  parseInt(os.Getenv("RATE_LIMIT_BURST")),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":3000"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "tasklist.db"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "client"
	}
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	if cfg.SessionSweep == 0 {
		cfg.SessionSweep = 15 * time.Minute
	}
	if cfg.RateLimitPerMin == 0 {
		cfg.RateLimitPerMin = 300
	}
	if cfg.RateLimitBurst == 0 {
		cfg.RateLimitBurst = 50
	}

	return cfg
}

func parseHours(raw string) time.Duration {
	return parseUnit(raw, time.Hour)
}

func parseMinutes(raw string) time.Duration {
	return parseUnit(raw, time.Minute)
}

func parseUnit(raw string, unit time.Duration) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0
	}
	return time.Duration(n) * unit
}

func parseInt(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
