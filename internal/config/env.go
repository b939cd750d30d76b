// Package config loads engine settings from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Settings holds the tunable engine parameters.
type Settings struct {
	// AddressGeohashPrecision is the blocking cell size for street
	// addresses.
	AddressGeohashPrecision int

	// VenueGeohashPrecision is the blocking cell size for venues.
	VenueGeohashPrecision int

	// NameDupeThreshold is the soft-TF-IDF similarity above which venue
	// names are considered duplicates.
	NameDupeThreshold float64

	// MaxBlockingKeys caps the keys generated per record.
	MaxBlockingKeys int

	// Debug enables decision tracing.
	Debug bool
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		AddressGeohashPrecision: 7,
		VenueGeohashPrecision:   6,
		NameDupeThreshold:       0.9,
		MaxBlockingKeys:         10000,
		Debug:                   false,
	}
}

// LoadSettings loads settings from DEDUPE_* environment variables,
// falling back to defaults. LoadEnv should run first if a .env file is
// in use.
func LoadSettings() Settings {
	s := DefaultSettings()
	s.AddressGeohashPrecision = GetEnvInt("DEDUPE_ADDRESS_GEOHASH_PRECISION", s.AddressGeohashPrecision)
	s.VenueGeohashPrecision = GetEnvInt("DEDUPE_VENUE_GEOHASH_PRECISION", s.VenueGeohashPrecision)
	s.NameDupeThreshold = GetEnvFloat("DEDUPE_NAME_THRESHOLD", s.NameDupeThreshold)
	s.MaxBlockingKeys = GetEnvInt("DEDUPE_MAX_BLOCKING_KEYS", s.MaxBlockingKeys)
	s.Debug = GetEnvBool("DEDUPE_DEBUG", s.Debug)
	return s
}

// LoadEnv loads variables from a .env file in the current or a parent
// directory. Existing environment variables win.
func LoadEnv() error {
	envPaths := []string{".env", "../.env", "../../.env"}

	for _, envPath := range envPaths {
		data, err := os.ReadFile(envPath)
		if err != nil {
			continue
		}
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			parts := strings.SplitN(line, "=", 2)
			if len(parts) != 2 {
				continue
			}
			key := strings.TrimSpace(parts[0])
			value := strings.TrimSpace(parts[1])
			if os.Getenv(key) == "" {
				os.Setenv(key, value)
			}
		}
		break
	}
	return nil
}

// GetEnv gets an environment variable with a default.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt gets an integer environment variable with a default.
// Malformed values fall back to the default.
func GetEnvInt(key string, defaultValue int) int {
	if value := GetEnv(key, ""); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvFloat gets a float environment variable with a default.
// Malformed values fall back to the default.
func GetEnvFloat(key string, defaultValue float64) float64 {
	if value := GetEnv(key, ""); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// GetEnvBool gets a boolean environment variable with a default.
// Malformed values fall back to the default.
func GetEnvBool(key string, defaultValue bool) bool {
	if value := GetEnv(key, ""); value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return defaultValue
}
