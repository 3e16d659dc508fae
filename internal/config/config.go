// Package config loads settings from defaults, an optional YAML file and
// RECIPES_* environment variables, in increasing priority.
package config

import (
	"fmt"

	"github.com/Luktock/recipe-selection-system/internal/validation"
)

// Config is the complete application configuration.
type Config struct {
	Data     DataConfig     `koanf:"data" yaml:"data"`
	Filter   FilterConfig   `koanf:"filter" yaml:"filter"`
	Bench    BenchConfig    `koanf:"bench" yaml:"bench"`
	Index    IndexConfig    `koanf:"index" yaml:"index"`
	Snapshot SnapshotConfig `koanf:"snapshot" yaml:"snapshot"`
	Logging  LoggingConfig  `koanf:"logging" yaml:"logging"`
	Menu     MenuConfig     `koanf:"menu" yaml:"menu"`
}

// DataConfig locates the CSV exchange files.
type DataConfig struct {
	CSVPath    string `koanf:"csv_path" yaml:"csv_path" validate:"required"`
	ExportPath string `koanf:"export_path" yaml:"export_path" validate:"required"`
}

// FilterConfig holds the thresholds of the "cheap and quick" filter.
type FilterConfig struct {
	MaxPrice       float64 `koanf:"max_price" yaml:"max_price" validate:"gte=0"`
	MaxCookingTime int     `koanf:"max_cooking_time" yaml:"max_cooking_time" validate:"gte=0"`
}

// BenchConfig drives the sort performance comparison.
type BenchConfig struct {
	Runs int    `koanf:"runs" yaml:"runs" validate:"min=1"`
	Key  string `koanf:"key" yaml:"key" validate:"oneof=price cooking_time rating name"`
}

// IndexConfig sizes the catalog name index.
type IndexConfig struct {
	FalsePositiveRate float64 `koanf:"false_positive_rate" yaml:"false_positive_rate" validate:"gt=0,lt=1"`
}

// SnapshotConfig selects the snapshot backend and location.
type SnapshotConfig struct {
	Backend string `koanf:"backend" yaml:"backend" validate:"oneof=bbolt badger pebble"`
	Path    string `koanf:"path" yaml:"path" validate:"required"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level" yaml:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" yaml:"format" validate:"oneof=json console"`
}

// MenuConfig configures the interactive menu.
type MenuConfig struct {
	HistoryFile string `koanf:"history_file" yaml:"history_file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			CSVPath:    "data/recipes.csv",
			ExportPath: "data/recipes_export.csv",
		},
		Filter: FilterConfig{
			MaxPrice:       10,
			MaxCookingTime: 30,
		},
		Bench: BenchConfig{
			Runs: 500,
			Key:  "cooking_time",
		},
		Index: IndexConfig{
			FalsePositiveRate: 0.01,
		},
		Snapshot: SnapshotConfig{
			Backend: "bbolt",
			Path:    "data/recipes.snapshot",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Menu: MenuConfig{
			HistoryFile: ".recipes_history",
		},
	}
}

// Validate checks every field rule.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
