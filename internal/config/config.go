// Package config holds the run options bundle and the optional YAML
// config file that supplies defaults for it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMaxDepth bounds recursive organizing: the top-level directory is
// depth 0, so the default re-applies the pipeline at most twice down.
const DefaultMaxDepth = 2

// Options is the full configuration surface for one organizing run.
// It is threaded explicitly through the pipeline; nothing reads it from
// ambient state.
type Options struct {
	// Path is the directory to organize.
	Path string

	// Force skips the confirmation prompt.
	Force bool

	// IncludeEmpty pre-seeds buckets for all 36 digit/letter keys.
	IncludeEmpty bool

	// Split enables breaking oversized buckets.
	Split bool

	// Combine enables merging undersized adjacent buckets.
	Combine bool

	// DryRun previews the plan without touching the filesystem.
	DryRun bool

	// Recurse re-applies the pipeline inside each created folder.
	Recurse bool

	// MaxDepth bounds recursion; CurrentDepth tracks where this
	// invocation sits (0 = top level).
	MaxDepth     int
	CurrentDepth int

	// Upper uppercases folder names.
	Upper bool

	// IncludeCount appends " [N]" with the file count to folder names.
	IncludeCount bool

	// Prefix and Suffix wrap the final folder name.
	Prefix string
	Suffix string

	// Threshold is the maximum bucket size; 0 means derive it as a tenth
	// of the file count, rounded up.
	Threshold int

	// NoJournal disables recording the run in the journal database.
	NoJournal bool
}

// DefaultOptions returns the documented defaults: threshold auto-derived,
// max depth 2, every boolean off.
func DefaultOptions() Options {
	return Options{
		MaxDepth: DefaultMaxDepth,
	}
}

// JournalConfig configures the run journal.
type JournalConfig struct {
	// Enabled records runs and moves in the journal database.
	Enabled bool `yaml:"enabled"`

	// DBPath is the path to the journal database.
	DBPath string `yaml:"db_path"`

	// KeepDays is the number of days of history to retain.
	KeepDays int `yaml:"keep_days"`
}

// Config is the persistent configuration loaded from .bucketize.yaml.
// It supplies defaults that command-line flags override.
type Config struct {
	// Threshold is the default bucket-size threshold (0 = auto).
	Threshold int `yaml:"threshold"`

	// MaxDepth is the default recursion bound.
	MaxDepth int `yaml:"max_depth"`

	// IncludeEmpty, Split, Combine, Upper and IncludeCount default the
	// matching flags.
	IncludeEmpty bool `yaml:"include_empty"`
	Split        bool `yaml:"split"`
	Combine      bool `yaml:"combine"`
	Upper        bool `yaml:"upper"`
	IncludeCount bool `yaml:"include_count"`

	// Prefix and Suffix default the folder-name wrapping.
	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix"`

	// Journal contains journal configuration.
	Journal JournalConfig `yaml:"journal"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Threshold: 0, // Auto-derive
		MaxDepth:  DefaultMaxDepth,
		Journal: JournalConfig{
			Enabled:  true,
			DBPath:   ".bucketize/journal.db",
			KeepDays: 90,
		},
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Use a temporary struct so an explicit "enabled: false" for the
	// journal is distinguishable from the key being absent.
	type yamlJournal struct {
		Enabled  *bool  `yaml:"enabled"`
		DBPath   string `yaml:"db_path"`
		KeepDays int    `yaml:"keep_days"`
	}
	type yamlConfig struct {
		Threshold    int         `yaml:"threshold"`
		MaxDepth     int         `yaml:"max_depth"`
		IncludeEmpty bool        `yaml:"include_empty"`
		Split        bool        `yaml:"split"`
		Combine      bool        `yaml:"combine"`
		Upper        bool        `yaml:"upper"`
		IncludeCount bool        `yaml:"include_count"`
		Prefix       string      `yaml:"prefix"`
		Suffix       string      `yaml:"suffix"`
		Journal      yamlJournal `yaml:"journal"`
	}

	var fileCfg yamlConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Merge non-zero values over the defaults. Booleans can only be
	// switched on by the file; flags handle switching off.
	if fileCfg.Threshold != 0 {
		cfg.Threshold = fileCfg.Threshold
	}
	if fileCfg.MaxDepth != 0 {
		cfg.MaxDepth = fileCfg.MaxDepth
	}
	if fileCfg.IncludeEmpty {
		cfg.IncludeEmpty = true
	}
	if fileCfg.Split {
		cfg.Split = true
	}
	if fileCfg.Combine {
		cfg.Combine = true
	}
	if fileCfg.Upper {
		cfg.Upper = true
	}
	if fileCfg.IncludeCount {
		cfg.IncludeCount = true
	}
	if fileCfg.Prefix != "" {
		cfg.Prefix = fileCfg.Prefix
	}
	if fileCfg.Suffix != "" {
		cfg.Suffix = fileCfg.Suffix
	}
	if fileCfg.Journal.Enabled != nil {
		cfg.Journal.Enabled = *fileCfg.Journal.Enabled
	}
	if fileCfg.Journal.DBPath != "" {
		cfg.Journal.DBPath = fileCfg.Journal.DBPath
	}
	if fileCfg.Journal.KeepDays != 0 {
		cfg.Journal.KeepDays = fileCfg.Journal.KeepDays
	}

	return cfg, nil
}

// ToOptions converts the persistent config into a run options bundle for
// the given directory.
func (c *Config) ToOptions(path string) Options {
	opts := DefaultOptions()
	opts.Path = path
	opts.Threshold = c.Threshold
	opts.MaxDepth = c.MaxDepth
	opts.IncludeEmpty = c.IncludeEmpty
	opts.Split = c.Split
	opts.Combine = c.Combine
	opts.Upper = c.Upper
	opts.IncludeCount = c.IncludeCount
	opts.Prefix = c.Prefix
	opts.Suffix = c.Suffix
	return opts
}
