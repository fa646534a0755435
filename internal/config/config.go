// Package config loads run settings from the environment and listing presets from YAML.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/BaroCatalog_Go/internal/validation"
)

// Config holds the application configuration
type Config struct {
	GameRoot       string `validate:"required"`
	OutputDir      string `validate:"required"`
	Language       string `validate:"required"`
	PackageFile    string // content package file; empty uses the vanilla package
	ListingsFile   string
	SchemaPath     string `validate:"required"`
	MetricsFile    string // empty disables the metrics dump
	LogLevel       string `validate:"oneof=debug info warn warning error"`
	LogFormat      string `validate:"oneof=json text"`
	Environment    string `validate:"required"`
	SkipEventItems bool
	Workers        int           `validate:"gte=1"`
	PathCacheSize  int           `validate:"gte=1"`
	PathCacheTTL   time.Duration `validate:"gte=0"`

	Listings Listings
}

// Load loads the configuration from environment variables and the listings file
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		GameRoot:       getEnv(EnvGameRoot, DefaultGameRoot),
		OutputDir:      getEnv(EnvOutputDir, DefaultOutputDir),
		Language:       getEnv(EnvLanguage, DefaultLanguage),
		PackageFile:    getEnv(EnvPackageFile, ""),
		ListingsFile:   getEnv(EnvListingsFile, ConfigPathListings),
		SchemaPath:     getEnv(EnvSchemaPath, ConfigPathSchema),
		MetricsFile:    getEnv(EnvMetricsFile, ""),
		LogLevel:       strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:      strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:    getEnv(EnvEnvironment, DefaultEnvironment),
		SkipEventItems: getEnvAsBool(EnvSkipEventItems, false),
		Workers:        getEnvAsInt(EnvWorkers, DefaultWorkers),
		PathCacheSize:  getEnvAsInt(EnvPathCacheSize, DefaultPathCacheSize),
		PathCacheTTL:   getEnvAsDuration(EnvPathCacheTTL, 0),
	}

	listings, err := LoadListings(cfg.ListingsFile)
	if err != nil {
		return nil, err
	}
	cfg.Listings = *listings

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its validate tags.
func (c *Config) Validate() error {
	if err := validation.Structs().ValidateStruct(c); err != nil {
		return fmt.Errorf(ErrMsgInvalidConfig, err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back on missing or invalid values
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsBool retrieves a boolean environment variable, falling back on missing or invalid values
func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration retrieves a duration environment variable, falling back on missing or invalid values
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}
