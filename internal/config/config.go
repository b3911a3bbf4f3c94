// Package config loads the pipeline's environment-variable contract,
// optionally pre-seeded from a .env file.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the four environment variables that govern every stage
// invocation, per the external-interfaces env contract.
type Config struct {
	LogLevel      string
	LogPath       string
	DatabasePath  string
	DatalakePath  string
}

// Load reads a .env file if present (missing is not an error) and then the
// required environment variables, returning an error that names the first
// required variable found absent.
func Load() (*Config, error) {
	_ = godotenv.Load()

	logLevel := getEnvOrDefault("ITX_LOG_LEVEL", "info")

	logPath, err := requireEnv("ITX_LOG_PATH")
	if err != nil {
		return nil, err
	}
	dbPath, err := requireEnv("ITX_DATABASE_PATH")
	if err != nil {
		return nil, err
	}
	datalakePath, err := requireEnv("ITX_DATALAKE_PATH")
	if err != nil {
		return nil, err
	}

	return &Config{
		LogLevel:     logLevel,
		LogPath:      logPath,
		DatabasePath: dbPath,
		DatalakePath: datalakePath,
	}, nil
}

// requireEnv returns an error naming the missing variable instead of
// fatal-exiting directly, so callers (cobra commands) control process exit.
func requireEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("config: required environment variable %s is not set", key)
	}
	return v, nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
