package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls how comparison reports are displayed. All fields are
// optional in the YAML file; unset fields keep their defaults.
type Config struct {
	Table TableConfig `yaml:"table"`
	Color bool        `yaml:"color"`
}

// TableConfig controls column truncation in the terminal table.
type TableConfig struct {
	FieldNameWidth int `yaml:"field_name_width"`
	ValueWidth     int `yaml:"value_width"`
}

// Default returns the built-in display configuration.
func Default() *Config {
	return &Config{
		Table: TableConfig{
			FieldNameWidth: 40,
			ValueWidth:     20,
		},
		Color: true,
	}
}

// Load reads a YAML configuration file and merges it over the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file '%s': %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Table.FieldNameWidth <= 0 {
		return fmt.Errorf("table.field_name_width must be positive, got %d", c.Table.FieldNameWidth)
	}
	if c.Table.ValueWidth <= 0 {
		return fmt.Errorf("table.value_width must be positive, got %d", c.Table.ValueWidth)
	}
	return nil
}
