// Package config defines the rpn35 tool configuration and its YAML form.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Valid color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the merged tool configuration. Precedence, lowest to highest:
// built-in defaults, discovered .rpn35.yml, RPN35_* environment
// variables, CLI flags.
type Config struct {
	// Color controls styled output: auto, always, never.
	Color string `yaml:"color"`

	// LogLevel is the charmbracelet/log level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Costs overrides per-mnemonic byte costs for the memory estimate,
	// keyed by mnemonic ("LBL", "STO", "x2", ...).
	Costs map[string]int `yaml:"costs"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Color:    ColorAuto,
		LogLevel: "info",
	}
}

// FromYAML parses a configuration from YAML bytes on top of defaults.
func FromYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects unknown enum values and negative costs.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q", c.Color)
	}
	for mnemonic, bytes := range c.Costs {
		if bytes < 0 {
			return fmt.Errorf("negative cost for %q", mnemonic)
		}
	}
	return nil
}
