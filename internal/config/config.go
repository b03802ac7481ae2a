package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Discord configuration, only needed by the bot
	Token   string
	AppID   string
	GuildID string

	// Logging and output
	LogLevel string
	NoColor  bool

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables, merging in a
// .env file from the working directory when one exists.
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	noColor, err := getEnvBool("NO_COLOR", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Token:       os.Getenv("DISCORD_TOKEN"),
		AppID:       os.Getenv("APP_ID"),
		GuildID:     os.Getenv("GUILD_ID"),
		LogLevel:    getEnvWithDefault("LOG_LEVEL", "info"),
		NoColor:     noColor,
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
	}

	return cfg, nil
}

// ValidateDiscord checks that everything the bot needs is present
func (c *Config) ValidateDiscord() error {
	if c.Token == "" {
		return fmt.Errorf("DISCORD_TOKEN is required")
	}
	if c.AppID == "" {
		return fmt.Errorf("APP_ID is required")
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return parsed, nil
}
