package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Arrange
	t.Setenv("CHECKOUT_CATALOG_FILE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	// Act
	cfg, err := Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &Config{CatalogFile: "", LogLevel: "warn", LogFormat: "console"}, cfg)
}

func TestLoadFromEnvironment(t *testing.T) {
	// Arrange
	t.Setenv("CHECKOUT_CATALOG_FILE", " data/catalog.yaml ")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	// Act
	cfg, err := Load()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "data/catalog.yaml", cfg.CatalogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}
