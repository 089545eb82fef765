package app

import (
	"testing"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	// LogLevel may be empty (triggers precedence logic in logger.go)
	// but LogFormat should have a default
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}

	if config.Sentinel == 0 {
		t.Error("Sentinel not set to default")
	}
}

// TestConfig_EnvironmentVariables verifies environment variable loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("VERBOSE", "true")
	t.Setenv("FORMAT", "json")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if !config.Verbose {
		t.Error("VERBOSE environment variable not loaded")
	}
	if config.Format != "json" {
		t.Errorf("Format = %s, want json", config.Format)
	}
}

// TestConfig_DatasetPath verifies the dataset path env var is honored.
func TestConfig_DatasetPath(t *testing.T) {
	t.Setenv("DATASET_PATH", "/tmp/nations.json")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if config.DatasetPath != "/tmp/nations.json" {
		t.Errorf("DatasetPath = %s, want /tmp/nations.json", config.DatasetPath)
	}
}

// TestConfig_UpdateFromFlags verifies flag precedence over config values.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{Format: "yaml", LogLevel: "info"}

	config.UpdateFromFlags(true, false, true, "table", "debug")

	if !config.Verbose {
		t.Error("Verbose flag not applied")
	}
	if !config.NoColor {
		t.Error("NoColor flag not applied")
	}
	if config.Format != "table" {
		t.Errorf("Format = %s, want table", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %s, want debug", config.LogLevel)
	}

	// Empty flag values must not clobber existing config
	config.UpdateFromFlags(false, false, false, "", "")
	if config.Format != "table" {
		t.Errorf("empty format flag clobbered config, Format = %s", config.Format)
	}
	if config.LogLevel != "debug" {
		t.Errorf("empty log-level flag clobbered config, LogLevel = %s", config.LogLevel)
	}
}
