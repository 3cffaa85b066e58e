package utils

import (
	"strconv"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateSessionToken() string {
	return uuid.New().String()
}

// GenerateShopID returns a collision-resistant tenant id. A UUID instead
// of a timestamp-derived string, so concurrent registrations cannot
// collide.
func GenerateShopID() string {
	return uuid.New().String()
}

// ==================== HELPERS ====================

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}
