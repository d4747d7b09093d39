package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestDefaultOptions verifies the documented option defaults
func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	if opts.MaxDepth != 2 {
		t.Errorf("MaxDepth = %d, want 2", opts.MaxDepth)
	}
	if opts.CurrentDepth != 0 {
		t.Errorf("CurrentDepth = %d, want 0", opts.CurrentDepth)
	}
	if opts.Threshold != 0 {
		t.Errorf("Threshold = %d, want 0 (auto)", opts.Threshold)
	}
	if opts.Force || opts.IncludeEmpty || opts.Split || opts.Combine ||
		opts.DryRun || opts.Recurse || opts.Upper || opts.IncludeCount {
		t.Error("all booleans should default to false")
	}
}

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Threshold != 0 {
		t.Errorf("Threshold = %d, want 0", cfg.Threshold)
	}
	if cfg.MaxDepth != 2 {
		t.Errorf("MaxDepth = %d, want 2", cfg.MaxDepth)
	}
	if !cfg.Journal.Enabled {
		t.Error("Journal.Enabled should default to true")
	}
	if cfg.Journal.DBPath != ".bucketize/journal.db" {
		t.Errorf("Journal.DBPath = %q, want .bucketize/journal.db", cfg.Journal.DBPath)
	}
	if cfg.Journal.KeepDays != 90 {
		t.Errorf("Journal.KeepDays = %d, want 90", cfg.Journal.KeepDays)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".bucketize.yaml")

	configContent := `threshold: 8
max_depth: 3
combine: true
split: true
prefix: "["
suffix: "]"
journal:
  enabled: false
  db_path: /tmp/journal.db
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Threshold != 8 {
		t.Errorf("Threshold = %d, want 8", cfg.Threshold)
	}
	if cfg.MaxDepth != 3 {
		t.Errorf("MaxDepth = %d, want 3", cfg.MaxDepth)
	}
	if !cfg.Combine || !cfg.Split {
		t.Error("Combine and Split should be true")
	}
	if cfg.Prefix != "[" || cfg.Suffix != "]" {
		t.Errorf("Prefix/Suffix = %q/%q, want [/]", cfg.Prefix, cfg.Suffix)
	}
	if cfg.Journal.Enabled {
		t.Error("Journal.Enabled should be false when set explicitly")
	}
	if cfg.Journal.DBPath != "/tmp/journal.db" {
		t.Errorf("Journal.DBPath = %q, want /tmp/journal.db", cfg.Journal.DBPath)
	}
	if cfg.Journal.KeepDays != 90 {
		t.Errorf("Journal.KeepDays = %d, want default 90", cfg.Journal.KeepDays)
	}
}

// TestLoadConfigMissingFile verifies defaults when the file doesn't exist
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v, want nil for missing file", err)
	}
	if cfg.MaxDepth != 2 {
		t.Errorf("MaxDepth = %d, want default 2", cfg.MaxDepth)
	}
	if !cfg.Journal.Enabled {
		t.Error("Journal.Enabled should default to true")
	}
}

// TestLoadConfigMalformedFile verifies malformed YAML returns an error
func TestLoadConfigMalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".bucketize.yaml")

	if err := os.WriteFile(configPath, []byte("threshold: [not an int"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Fatal("LoadConfig() should fail on malformed YAML")
	}
}

// TestToOptions verifies config-to-options conversion
func TestToOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Threshold = 7
	cfg.Upper = true
	cfg.Prefix = "("

	opts := cfg.ToOptions("/data")

	if opts.Path != "/data" {
		t.Errorf("Path = %q, want /data", opts.Path)
	}
	if opts.Threshold != 7 {
		t.Errorf("Threshold = %d, want 7", opts.Threshold)
	}
	if !opts.Upper {
		t.Error("Upper should carry over")
	}
	if opts.Prefix != "(" {
		t.Errorf("Prefix = %q, want (", opts.Prefix)
	}
	if opts.CurrentDepth != 0 {
		t.Errorf("CurrentDepth = %d, want 0", opts.CurrentDepth)
	}
}
