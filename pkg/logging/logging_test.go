package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerToJsonRespectsLevel(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "json", "warn")

	// Act
	logger.Info().Msg("hidden")
	logger.Warn().Str("sku", "unknown").Msg("shown")

	// Assert
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"sku":"unknown"`)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestNewLoggerToConsoleFormat(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "console", "debug")

	// Act
	logger.Debug().Str("sku", "atv").Msg("Scanned")

	// Assert
	assert.Contains(t, buf.String(), "Scanned")
	assert.Contains(t, buf.String(), "sku=atv")
	assert.NotContains(t, buf.String(), "{")
}

func TestNewLoggerToFallsBackToInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, NewLoggerTo(&bytes.Buffer{}, "json", "loud").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, NewLoggerTo(&bytes.Buffer{}, "json", "").GetLevel())
}

func TestNewLoggerToLeavesGlobalTimeFormatAlone(t *testing.T) {
	// Arrange
	previous := zerolog.TimeFieldFormat
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	t.Cleanup(func() { zerolog.TimeFieldFormat = previous })

	// Act
	NewLoggerTo(&bytes.Buffer{}, "json", "info")

	// Assert
	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
}
