package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name inside a books directory.
const FileName = "ledgerbook.yaml"

// Config represents the top-level ledgerbook.yaml configuration.
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Cashbook CashbookConfig `yaml:"cashbook"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DataConfig locates the journal database, relative to the books directory.
type DataConfig struct {
	Database string `yaml:"database"`
}

// CashbookConfig locates the cashbook file, relative to the books directory.
type CashbookConfig struct {
	File string `yaml:"file"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads a ledgerbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new books directory.
func Default() *Config {
	return &Config{
		Data:     DataConfig{Database: "ledgerbook.db"},
		Cashbook: CashbookConfig{File: "cashbook.csv"},
		Logging:  LoggingConfig{Level: "info"},
	}
}
