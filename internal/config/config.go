package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/vaultpass/passgen/internal/locale"
)

const devJWTSecret = "dev-secret-change-in-production"

type Config struct {
	Port           string
	Env            string
	DatabaseDSN    string
	JWTSecret      string
	JWTExpiry      time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	AuthRateRPS    float64
	AuthRateBurst  int
	DefaultLocale  string
}

func Load() Config {
	cfg, err := load(os.Getenv)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	return cfg
}

func load(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		Port:          get("PORT", "8080"),
		Env:           get("ENV", "development"),
		DatabaseDSN:   get("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/passgen?parseTime=true"),
		JWTSecret:     get("JWT_SECRET", devJWTSecret),
		DefaultLocale: get("DEFAULT_LOCALE", locale.Default),
		AuthRateRPS:   5,
		AuthRateBurst: 10,
	}

	var err error
	if cfg.JWTExpiry, err = time.ParseDuration(get("JWT_EXPIRY", "24h")); err != nil {
		return Config{}, fmt.Errorf("JWT_EXPIRY: %w", err)
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(get("RATE_LIMIT_RPS", "20"), 64); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(get("RATE_LIMIT_BURST", "40")); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}

	if !locale.Supported(cfg.DefaultLocale) {
		return Config{}, fmt.Errorf("DEFAULT_LOCALE %q is not a supported locale", cfg.DefaultLocale)
	}
	if cfg.Env == "production" && cfg.JWTSecret == devJWTSecret {
		return Config{}, fmt.Errorf("JWT_SECRET must be set in production environment")
	}

	return cfg, nil
}
