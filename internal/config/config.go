// Package config contains everything related to configuration
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration. It is resolved once at startup
// and passed explicitly to the components that need it; there is no
// process-wide mutable state.
type Config struct {
	// InputPath is the usage export to aggregate (CSV by default).
	InputPath string
	// SummaryPath is where the summary JSON document is persisted.
	SummaryPath string
	// HTMLPath is where the static HTML page is written; empty disables it.
	HTMLPath string
	// TopModels limits how many models the presenters show.
	TopModels int
}

// Default values
const (
	defaultInputPath   = "usage-events.csv"
	defaultSummaryPath = "cursor-wrapped-summary.json"
	defaultTopModels   = 5
)

// Load reads configuration from .env files and environment variables.
// Command-line flags override these values at the CLI boundary.
func Load() (*Config, error) {
	for _, path := range getEnvPaths() {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}

	cfg := &Config{
		InputPath:   getEnvString("WRAPPED_INPUT_PATH", defaultInputPath),
		SummaryPath: getEnvString("WRAPPED_SUMMARY_PATH", defaultSummaryPath),
		HTMLPath:    getEnvString("WRAPPED_HTML_PATH", ""),
		TopModels:   getEnvInt("WRAPPED_TOP_MODELS", defaultTopModels),
	}
	if cfg.TopModels < 1 {
		cfg.TopModels = defaultTopModels
	}

	return cfg, nil
}

// getEnvPaths returns a list of paths to check for .env files.
func getEnvPaths() []string {
	var paths []string

	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".env"))
	}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config", "cursor-wrapped", ".env"),
			filepath.Join(home, ".cursor-wrapped", ".env"),
		)
	}

	return paths
}

// getEnvString retrieves a string environment variable or returns the default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns the default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
