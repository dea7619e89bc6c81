package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds the checkout driver configuration loaded from the environment.
type Config struct {
	CatalogFile string
	LogLevel    string
	LogFormat   string
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	return &Config{
		CatalogFile: strings.TrimSpace(k.String("CHECKOUT_CATALOG_FILE")),
		LogLevel:    valueOrDefault(k.String("LOG_LEVEL"), "warn"),
		LogFormat:   valueOrDefault(k.String("LOG_FORMAT"), "console"),
	}, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
