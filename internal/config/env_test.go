package config

import "testing"

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.AddressGeohashPrecision != 7 {
		t.Errorf("AddressGeohashPrecision = %d, want 7", s.AddressGeohashPrecision)
	}
	if s.VenueGeohashPrecision != 6 {
		t.Errorf("VenueGeohashPrecision = %d, want 6", s.VenueGeohashPrecision)
	}
	if s.NameDupeThreshold != 0.9 {
		t.Errorf("NameDupeThreshold = %v, want 0.9", s.NameDupeThreshold)
	}
}

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Setenv("DEDUPE_VENUE_GEOHASH_PRECISION", "5")
	t.Setenv("DEDUPE_NAME_THRESHOLD", "0.85")
	t.Setenv("DEDUPE_DEBUG", "true")

	s := LoadSettings()

	if s.VenueGeohashPrecision != 5 {
		t.Errorf("VenueGeohashPrecision = %d, want 5", s.VenueGeohashPrecision)
	}
	if s.NameDupeThreshold != 0.85 {
		t.Errorf("NameDupeThreshold = %v, want 0.85", s.NameDupeThreshold)
	}
	if !s.Debug {
		t.Error("Debug should be enabled")
	}
	// Untouched settings keep their defaults.
	if s.AddressGeohashPrecision != 7 {
		t.Errorf("AddressGeohashPrecision = %d, want default 7", s.AddressGeohashPrecision)
	}
}

func TestLoadSettingsIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DEDUPE_MAX_BLOCKING_KEYS", "not-a-number")

	s := LoadSettings()
	if s.MaxBlockingKeys != DefaultSettings().MaxBlockingKeys {
		t.Errorf("MaxBlockingKeys = %d, want default on malformed input", s.MaxBlockingKeys)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("DEDUPE_TEST_STRING", "")
	if got := GetEnv("DEDUPE_TEST_STRING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv on unset variable = %q, want %q", got, "fallback")
	}

	t.Setenv("DEDUPE_TEST_STRING", "configured")
	if got := GetEnv("DEDUPE_TEST_STRING", "fallback"); got != "configured" {
		t.Errorf("GetEnv = %q, want %q", got, "configured")
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"yes", true},
		{"on", true},
		{"false", false},
		{"0", false},
		{"off", false},
		{"garbage", true}, // falls back to the default
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("DEDUPE_TEST_BOOL", tt.value)
			if got := GetEnvBool("DEDUPE_TEST_BOOL", true); got != tt.want {
				t.Errorf("GetEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
