package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Editor        string `yaml:"editor"`
	DefaultSort   string `yaml:"default_sort"`
	ReverseSort   bool   `yaml:"reverse_sort"`
	DateFormat    string `yaml:"date_format"`
	DefaultAction string `yaml:"default_action"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`
	TableWidth int    `yaml:"table_width"`

	// Search Settings
	MaxSearchResults int `yaml:"max_search_results"`

	// Reel Settings
	ReelWheels     int `yaml:"reel_wheels"`
	ReelIntervalMS int `yaml:"reel_interval_ms"`

	// Watch Settings
	WatchDebounceMS int `yaml:"watch_debounce_ms"`

	// Stats
	StatsTopTags int `yaml:"stats_top_tags"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		Editor:           "",
		DefaultSort:      "name",
		ReverseSort:      false,
		DateFormat:       "2006-01-02",
		DefaultAction:    "list",
		ColorTheme:       "auto",
		TableWidth:       0,
		MaxSearchResults: 50,
		ReelWheels:       6,
		ReelIntervalMS:   350,
		WatchDebounceMS:  500,
		StatsTopTags:     10,
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	// Try to read the file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Missing config is fine, defaults apply
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.DefaultSort == "" {
		cfg.DefaultSort = "name"
	}
	if cfg.DateFormat == "" {
		cfg.DateFormat = "2006-01-02"
	}
	if cfg.MaxSearchResults <= 0 {
		cfg.MaxSearchResults = 50
	}
	if cfg.ReelWheels <= 0 {
		cfg.ReelWheels = 6
	}
	if cfg.ReelIntervalMS <= 0 {
		cfg.ReelIntervalMS = 350
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = 500
	}
	if cfg.StatsTopTags <= 0 {
		cfg.StatsTopTags = 10
	}

	// Validate DefaultAction
	if !isValidDefaultAction(cfg.DefaultAction) {
		cfg.DefaultAction = "list"
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// isValidDefaultAction checks if the default action is valid
func isValidDefaultAction(action string) bool {
	validActions := []string{"list", "search", "browse"}
	for _, valid := range validActions {
		if action == valid {
			return true
		}
	}
	return false
}
