package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
data:
  csv_path: /srv/recipes.csv
filter:
  max_price: 12.5
snapshot:
  backend: pebble
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/recipes.csv", cfg.Data.CSVPath)
	assert.Equal(t, "data/recipes_export.csv", cfg.Data.ExportPath)
	assert.Equal(t, 12.5, cfg.Filter.MaxPrice)
	assert.Equal(t, 30, cfg.Filter.MaxCookingTime)
	assert.Equal(t, "pebble", cfg.Snapshot.Backend)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "bench:\n  runs: 10\n")
	t.Setenv("RECIPES_BENCH_RUNS", "25")
	t.Setenv("RECIPES_SNAPSHOT_BACKEND", "badger")
	t.Setenv("RECIPES_LOG_LEVEL", "debug")
	t.Setenv("RECIPES_UNRELATED", "ignored")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Bench.Runs)
	assert.Equal(t, "badger", cfg.Snapshot.Backend)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadConfigPathFromEnv(t *testing.T) {
	path := writeConfig(t, "bench:\n  key: rating\n")
	t.Setenv(PathEnvVar, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "rating", cfg.Bench.Key)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"backend":  "snapshot:\n  backend: sqlite\n",
		"key":      "bench:\n  key: flavor\n",
		"runs":     "bench:\n  runs: 0\n",
		"fp rate":  "index:\n  false_positive_rate: 1.5\n",
		"price":    "filter:\n  max_price: -1\n",
		"log form": "logging:\n  format: xml\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestEnvTransform(t *testing.T) {
	assert.Equal(t, "filter.max_cooking_time", envTransform("RECIPES_FILTER_MAX_COOKING_TIME"))
	assert.Equal(t, "", envTransform("RECIPES_NOPE"))
}
