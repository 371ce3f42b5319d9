package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()
}

// Config holds all process-wide configuration. It is built once at startup
// and never mutated afterwards; every component receives it explicitly.
type Config struct {
	// Required
	TwilioAccountSID   string
	TwilioAuthToken    string
	AnthropicAPIKey    string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRefreshToken string
	DriveFolderID      string

	// Optional with defaults
	HTTPPort          int
	Timezone          string
	CalendarID        string
	ClaudeModel       string
	ClaudeTemperature float64
}

func LoadFromEnv() *Config {
	cfg := &Config{
		// Required
		TwilioAccountSID:   os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    os.Getenv("TWILIO_AUTH_TOKEN"),
		AnthropicAPIKey:    os.Getenv("ANTHROPIC_API_KEY"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRefreshToken: os.Getenv("GOOGLE_REFRESH_TOKEN"),
		DriveFolderID:      os.Getenv("DRIVE_FOLDER_ID"),

		// Optional with defaults
		HTTPPort:          getEnvAsIntOrDefault("PORT", 8000),
		Timezone:          getEnvOrDefault("TIMEZONE", "America/Los_Angeles"),
		CalendarID:        getEnvOrDefault("CALENDAR_ID", "primary"),
		ClaudeModel:       getEnvOrDefault("CLAUDE_MODEL", "claude-sonnet-4-20250514"),
		ClaudeTemperature: getEnvAsFloatOrDefault("CLAUDE_TEMPERATURE", 0),
	}

	return cfg
}

// Validate reports the first missing required setting.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"TWILIO_ACCOUNT_SID", c.TwilioAccountSID},
		{"TWILIO_AUTH_TOKEN", c.TwilioAuthToken},
		{"ANTHROPIC_API_KEY", c.AnthropicAPIKey},
		{"GOOGLE_CLIENT_ID", c.GoogleClientID},
		{"GOOGLE_CLIENT_SECRET", c.GoogleClientSecret},
		{"GOOGLE_REFRESH_TOKEN", c.GoogleRefreshToken},
		{"DRIVE_FOLDER_ID", c.DriveFolderID},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("missing required environment variable %s", r.name)
		}
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
