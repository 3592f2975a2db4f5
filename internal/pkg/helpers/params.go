package helpers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// Global logger: this runs while the configured logger may not exist yet.
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseIDParam reads a positive integer path parameter
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	return parsePositive(name, c.Param(name))
}

// ParseIDQuery reads a required positive integer query parameter
func ParseIDQuery(c *gin.Context, name string) (int64, error) {
	return parsePositive(name, c.Query(name))
}

// RequiredQuery reads a required, non-blank query parameter
func RequiredQuery(c *gin.Context, name string) (string, error) {
	value := strings.TrimSpace(c.Query(name))
	if value == "" {
		return "", fmt.Errorf("el parámetro '%s' es requerido", name)
	}
	return value, nil
}

// RawQuery reads a required query parameter exactly as sent. Only an empty value is rejected.
func RawQuery(c *gin.Context, name string) (string, error) {
	value := c.Query(name)
	if value == "" {
		return "", fmt.Errorf("el parámetro '%s' es requerido", name)
	}
	return value, nil
}

func parsePositive(name, raw string) (int64, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, fmt.Errorf("el parámetro '%s' es requerido", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("el parámetro '%s' debe ser un número entero positivo", name)
	}
	return id, nil
}
