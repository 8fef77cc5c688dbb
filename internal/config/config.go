// Package config loads swatch settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvDataDir       = "SWATCH_DATA_DIR"
	EnvDefaultCount  = "SWATCH_DEFAULT_COUNT"
	EnvDefaultScheme = "SWATCH_DEFAULT_SCHEME"
	EnvNoColor       = "SWATCH_NO_COLOR"
	EnvLogLevel      = "SWATCH_LOG_LEVEL"
)

// Config holds resolved settings. CLI flags override these values.
type Config struct {
	DataDir       string
	DefaultCount  int
	DefaultScheme string
	NoColor       bool
	LogLevel      string
}

// Load reads .env files (if present) and then the environment.
// Missing .env files are not an error; malformed values are.
func Load(envFiles ...string) (*Config, error) {
	// godotenv.Load never overrides variables already set in the environment.
	_ = godotenv.Load(envFiles...)

	dataDir, err := defaultDataDir()
	if err != nil {
		return nil, err
	}

	count, err := getEnvInt(EnvDefaultCount, 5)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %d", EnvDefaultCount, count)
	}

	noColor, err := getEnvBool(EnvNoColor, false)
	if err != nil {
		return nil, err
	}

	return &Config{
		DataDir:       getEnv(EnvDataDir, dataDir),
		DefaultCount:  count,
		DefaultScheme: getEnv(EnvDefaultScheme, "random"),
		NoColor:       noColor,
		LogLevel:      getEnv(EnvLogLevel, "warn"),
	}, nil
}

// defaultDataDir returns $XDG_DATA_HOME/swatch, falling back to ~/.local/share/swatch.
func defaultDataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "swatch"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(homeDir, ".local", "share", "swatch"), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
