package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds application configuration
type Config struct {
	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`
	Analysis struct {
		Language string `yaml:"language"`
	} `yaml:"analysis"`
	Paths struct {
		PinDB string `yaml:"pin_db"`
	} `yaml:"paths"`
}

// Timeout returns the HTTP timeout as a duration
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// Load loads configuration from file or returns defaults
func Load() (*Config, error) {
	cfg := Default()

	configPath := filepath.Join(configDir(), "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to file
func (c *Config) Save() error {
	dir := configDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644)
}

// Default returns default configuration
func Default() *Config {
	cfg := &Config{}

	cfg.API.BaseURL = "http://localhost:8080"
	cfg.API.TimeoutSeconds = 120
	cfg.Analysis.Language = "ko-KR"
	cfg.Paths.PinDB = filepath.Join(configDir(), "pins.db")

	return cfg
}

func configDir() string {
	return filepath.Join(os.Getenv("HOME"), ".clausecheck")
}
