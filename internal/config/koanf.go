package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RECIPES_"

// PathEnvVar overrides the config file location.
const PathEnvVar = EnvPrefix + "CONFIG"

// DefaultPaths are searched in order when no path is given.
var DefaultPaths = []string{
	"recipes.yaml",
	"recipes.yml",
}

// envKeys maps lower-cased variable names, prefix stripped, to config paths.
var envKeys = map[string]string{
	"csv_path":                  "data.csv_path",
	"export_path":               "data.export_path",
	"filter_max_price":          "filter.max_price",
	"filter_max_cooking_time":   "filter.max_cooking_time",
	"bench_runs":                "bench.runs",
	"bench_key":                 "bench.key",
	"index_false_positive_rate": "index.false_positive_rate",
	"snapshot_backend":          "snapshot.backend",
	"snapshot_path":             "snapshot.path",
	"log_level":                 "logging.level",
	"log_format":                "logging.format",
	"history_file":              "menu.history_file",
}

// Load builds the configuration. An explicit path must exist; otherwise the
// first of DefaultPaths found is used, and none at all is fine.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	configPath, err := findConfigFile(path)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfigFile(path string) (string, error) {
	if path == "" {
		path = os.Getenv(PathEnvVar)
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file %s: %w", path, err)
		}
		return path, nil
	}
	for _, p := range DefaultPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", nil
}

// envTransform maps RECIPES_SNAPSHOT_BACKEND to snapshot.backend. Unknown
// variables map to "" and are dropped by koanf.
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return envKeys[key]
}
