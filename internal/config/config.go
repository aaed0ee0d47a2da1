package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the engine
type Config struct {
	Content ContentConfig
	Audio   AudioConfig
}

// ContentConfig points at the game content on disk
type ContentConfig struct {
	// AbilityDir holds per-ability YAML definitions
	AbilityDir string
}

// AudioConfig holds audio playback configuration
type AudioConfig struct {
	Enabled    bool
	SFXDir     string
	SampleRate int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Content: ContentConfig{
			AbilityDir: getEnvOrDefault("CONTENT_ABILITY_DIR", "content/abilities"),
		},
		Audio: AudioConfig{
			Enabled:    getEnvAsBoolOrDefault("AUDIO_ENABLED", false),
			SFXDir:     getEnvOrDefault("AUDIO_SFX_DIR", "content/sfx"),
			SampleRate: getEnvAsIntOrDefault("AUDIO_SAMPLE_RATE", 44100),
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
