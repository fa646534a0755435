package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BaroCatalog_Go/internal/domain"
)

var envVars = []string{
	EnvGameRoot, EnvOutputDir, EnvLanguage, EnvPackageFile, EnvListingsFile, EnvSchemaPath,
	EnvMetricsFile, EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvSkipEventItems,
	EnvWorkers, EnvPathCacheSize, EnvPathCacheTTL,
}

// clearEnvVars unsets every variable Load reads, restoring them when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range envVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvListingsFile, filepath.Join(t.TempDir(), "absent.yaml"))

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultGameRoot, cfg.GameRoot)
		assert.Equal(t, DefaultOutputDir, cfg.OutputDir)
		assert.Equal(t, DefaultLanguage, cfg.Language)
		assert.Equal(t, ConfigPathSchema, cfg.SchemaPath)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Empty(t, cfg.MetricsFile)
		assert.False(t, cfg.SkipEventItems)
		assert.Equal(t, DefaultWorkers, cfg.Workers)
		assert.Equal(t, DefaultPathCacheSize, cfg.PathCacheSize)
		assert.Equal(t, DefaultListings(), cfg.Listings)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvGameRoot, "/games/Barotrauma")
		t.Setenv(EnvOutputDir, "/tmp/catalog")
		t.Setenv(EnvLanguage, "German")
		t.Setenv(EnvPackageFile, "Content/ContentPackages/Vanilla.xml")
		t.Setenv(EnvListingsFile, "")
		t.Setenv(EnvMetricsFile, "/tmp/catalog.prom")
		t.Setenv(EnvLogLevel, "DEBUG")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "production")
		t.Setenv(EnvSkipEventItems, "true")
		t.Setenv(EnvWorkers, "8")
		t.Setenv(EnvPathCacheTTL, "10m")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "/games/Barotrauma", cfg.GameRoot)
		assert.Equal(t, "/tmp/catalog", cfg.OutputDir)
		assert.Equal(t, "German", cfg.Language)
		assert.Equal(t, "Content/ContentPackages/Vanilla.xml", cfg.PackageFile)
		assert.Equal(t, "/tmp/catalog.prom", cfg.MetricsFile)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.True(t, cfg.SkipEventItems)
		assert.Equal(t, 8, cfg.Workers)
		assert.Equal(t, 10*time.Minute, cfg.PathCacheTTL)
	})

	t.Run("returns error for invalid log format", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvListingsFile, "")
		t.Setenv(EnvLogFormat, "xml")

		cfg, err := Load()

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.Contains(t, err.Error(), "config.logformat")
	})

	t.Run("returns error for zero workers", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvListingsFile, "")
		t.Setenv(EnvWorkers, "0")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "config.workers")
	})

	t.Run("returns error for broken listings file", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvListingsFile, writeFile(t, "listings.yaml", "presets: [not, a, map"))

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse listings file")
	})
}

func TestLoadListings(t *testing.T) {
	t.Run("missing file uses built-in listings", func(t *testing.T) {
		l, err := LoadListings(filepath.Join(t.TempDir(), "missing.yaml"))

		require.NoError(t, err)
		assert.Equal(t, DefaultListings(), *l)
	})

	t.Run("partial file keeps built-in values", func(t *testing.T) {
		path := writeFile(t, "listings.yaml", `
presets:
  listed:
    minAvailable: 3
    maxAvailable: 9
merchants: [city, outpost]
`)

		l, err := LoadListings(path)

		require.NoError(t, err)
		assert.Equal(t, 3, l.Presets.Listed.MinAvailable)
		require.NotNil(t, l.Presets.Listed.MaxAvailable)
		assert.Equal(t, 9, *l.Presets.Listed.MaxAvailable)
		assert.True(t, l.Presets.Listed.Sold)
		assert.Equal(t, domain.DefaultListingPresets().Catalog, l.Presets.Catalog)
		assert.Equal(t, []string{"city", "outpost"}, l.Merchants)
	})

	t.Run("rejects out of range values", func(t *testing.T) {
		path := writeFile(t, "listings.yaml", `
presets:
  catalog:
    minLevelDifficulty: 150
`)

		_, err := LoadListings(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid listings file")
		assert.Contains(t, err.Error(), "minleveldifficulty")
	})

	t.Run("rejects empty merchant id", func(t *testing.T) {
		path := writeFile(t, "listings.yaml", "merchants: [city, \"\"]\n")

		_, err := LoadListings(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "merchants[1]")
	})

	t.Run("repository listings file matches built-in listings", func(t *testing.T) {
		l, err := LoadListings(filepath.Join("..", "..", ConfigPathListings))

		require.NoError(t, err)
		assert.Equal(t, DefaultListings(), *l)
	})
}

func TestGetEnvHelpers(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		assert.Equal(t, 100, getEnvAsInt("TEST_INT_VAR", 42))
		t.Setenv("TEST_INT_VAR", "42.5")
		assert.Equal(t, 7, getEnvAsInt("TEST_INT_VAR", 7), "Should return default for float values")
		os.Unsetenv("TEST_INT_VAR")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("bool", func(t *testing.T) {
		t.Setenv("TEST_BOOL_VAR", "1")
		assert.True(t, getEnvAsBool("TEST_BOOL_VAR", false))
		t.Setenv("TEST_BOOL_VAR", "maybe")
		assert.False(t, getEnvAsBool("TEST_BOOL_VAR", false))
	})

	t.Run("duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "90s")
		assert.Equal(t, 90*time.Second, getEnvAsDuration("TEST_DURATION_VAR", time.Minute))
		t.Setenv("TEST_DURATION_VAR", "soon")
		assert.Equal(t, time.Minute, getEnvAsDuration("TEST_DURATION_VAR", time.Minute))
	})
}
