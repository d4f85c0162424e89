package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.DefaultSort != "name" {
		t.Errorf("expected default DefaultSort='name', got %q", cfg.DefaultSort)
	}

	if cfg.DefaultAction != "list" {
		t.Errorf("expected default DefaultAction='list', got %q", cfg.DefaultAction)
	}

	if cfg.Editor != "" {
		t.Errorf("expected default Editor='', got %q", cfg.Editor)
	}

	if cfg.ReelWheels != 6 {
		t.Errorf("expected default ReelWheels=6, got %d", cfg.ReelWheels)
	}

	if cfg.ReelIntervalMS != 350 {
		t.Errorf("expected default ReelIntervalMS=350, got %d", cfg.ReelIntervalMS)
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	// Loading a non-existent file should return default config
	cfg, err := Load("/nonexistent/path/config.yaml")

	if err != nil {
		t.Fatalf("unexpected error loading non-existent file: %v", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if cfg.MaxSearchResults != 50 {
		t.Errorf("expected default MaxSearchResults=50, got %d", cfg.MaxSearchResults)
	}

	if cfg.WatchDebounceMS != 500 {
		t.Errorf("expected default WatchDebounceMS=500, got %d", cfg.WatchDebounceMS)
	}
}

func TestSave_And_Load(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	cfg := &Config{
		Editor:         "vim",
		DefaultSort:    "created",
		ReelWheels:     4,
		ReelIntervalMS: 200,
	}

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}

	loaded, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Editor != "vim" {
		t.Errorf("expected Editor='vim', got %q", loaded.Editor)
	}
	if loaded.DefaultSort != "created" {
		t.Errorf("expected DefaultSort='created', got %q", loaded.DefaultSort)
	}
	if loaded.ReelWheels != 4 {
		t.Errorf("expected ReelWheels=4, got %d", loaded.ReelWheels)
	}

	// Zero-valued essentials fall back to defaults
	if loaded.MaxSearchResults != 50 {
		t.Errorf("expected MaxSearchResults to default to 50, got %d", loaded.MaxSearchResults)
	}
	if loaded.DefaultAction != "list" {
		t.Errorf("expected invalid DefaultAction to fall back to 'list', got %q", loaded.DefaultAction)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("{broken: ["), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Error("expected error loading invalid YAML")
	}
}
