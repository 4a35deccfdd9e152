// Package config loads the YAML run configuration for the hillclimb CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Modes.
const (
	// ModeSingle searches from the start marker only.
	ModeSingle = "single"
	// ModeAny searches from every lowest cell and keeps the best route.
	ModeAny = "any"
)

// Sentinel errors for configuration validation.
var (
	ErrInvalidMode     = errors.New("config: mode must be \"single\" or \"any\"")
	ErrInvalidClimb    = errors.New("config: max_climb cannot be negative")
	ErrInvalidLevel    = errors.New("config: unknown log level")
	ErrInvalidEncoding = errors.New("config: log encoding must be \"console\" or \"json\"")
)

// Config holds all hillclimb configuration.
type Config struct {
	// Input is the terrain file; "-" reads standard input.
	Input string `yaml:"input"`

	// Mode is ModeSingle or ModeAny.
	Mode string `yaml:"mode"`

	// Trim enables the trimming heuristic in ModeAny.
	Trim bool `yaml:"trim"`

	// MaxClimb is the largest allowed height gain per step.
	MaxClimb int `yaml:"max_climb"`

	// Show prints the route over the terrain.
	Show bool `yaml:"show"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // console, json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input:    "-",
		Mode:     ModeSingle,
		MaxClimb: 1,
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads path over Default. Fields absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeSingle, ModeAny:
	default:
		return fmt.Errorf("%w (got %q)", ErrInvalidMode, c.Mode)
	}
	if c.MaxClimb < 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidClimb, c.MaxClimb)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w %q", ErrInvalidLevel, c.Log.Level)
	}
	switch c.Log.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("%w (got %q)", ErrInvalidEncoding, c.Log.Encoding)
	}

	return nil
}
