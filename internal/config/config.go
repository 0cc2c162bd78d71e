// Package config loads the application configuration from the environment.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration. It is passed explicitly into
// the gateway and builder; nothing below cmd reads the environment.
type Config struct {
	// GitHub
	GitHubToken string
	Repo        string // tracked repository, "owner/name"
	SearchTerm  string // related-repository search term

	// Radar
	WindowHours int
	OutputPath  string // snapshot JSON destination

	// Notion
	NotionAPIKey       string
	NotionParentPageID string
}

// Load loads the configuration from environment variables, reading a .env
// file first if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	windowHours, err := strconv.Atoi(getEnv("RADAR_WINDOW_HOURS", "24"))
	if err != nil || windowHours <= 0 {
		return nil, &ConfigError{Field: "RADAR_WINDOW_HOURS", Message: "must be a positive integer"}
	}

	return &Config{
		GitHubToken:        getEnv("GITHUB_TOKEN", ""),
		Repo:               getEnv("RADAR_REPO", "openclaw/openclaw"),
		SearchTerm:         getEnv("RADAR_SEARCH", "openclaw"),
		WindowHours:        windowHours,
		OutputPath:         getEnv("RADAR_OUTPUT", "github_radar.json"),
		NotionAPIKey:       getEnv("NOTION_API_KEY", ""),
		NotionParentPageID: getEnv("NOTION_PARENT_PAGE_ID", ""),
	}, nil
}

// Validate checks the configuration every command needs.
func (c *Config) Validate() error {
	if c.GitHubToken == "" {
		return &ConfigError{Field: "GITHUB_TOKEN", Message: "GitHub token is required"}
	}
	if c.Repo == "" {
		return &ConfigError{Field: "RADAR_REPO", Message: "tracked repository is required"}
	}
	if c.SearchTerm == "" {
		return &ConfigError{Field: "RADAR_SEARCH", Message: "repository search term is required"}
	}
	return nil
}

// ValidateNotion checks the additional configuration the publish command needs.
func (c *Config) ValidateNotion() error {
	if c.NotionAPIKey == "" {
		return &ConfigError{Field: "NOTION_API_KEY", Message: "Notion API key is required for publishing"}
	}
	if c.NotionParentPageID == "" {
		return &ConfigError{Field: "NOTION_PARENT_PAGE_ID", Message: "Notion parent page id is required for publishing"}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
