// Package config loads the anolib CLI settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI defaults. Flags override these per invocation.
type Config struct {
	// Audio rendering
	SampleRate int     `yaml:"sample_rate"`
	Amplitude  float64 `yaml:"amplitude"`

	// Filtering
	DefaultQ      float64 `yaml:"default_q"`
	DCBlockerPole float64 `yaml:"dc_blocker_pole"`

	// Alignment
	AlignWindow int `yaml:"align_window"`

	// Logging
	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// ErrInvalid indicates a config value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		SampleRate:    48000,
		Amplitude:     0.8,
		DefaultQ:      0.7071,
		DCBlockerPole: 0.995,
		AlignWindow:   -1,
		LogLevel:      "info",
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("sample_rate=%d: %w", c.SampleRate, ErrInvalid)
	case !(c.Amplitude > 0 && c.Amplitude <= 1):
		return fmt.Errorf("amplitude=%g: %w", c.Amplitude, ErrInvalid)
	case !(c.DefaultQ > 0):
		return fmt.Errorf("default_q=%g: %w", c.DefaultQ, ErrInvalid)
	case !(c.DCBlockerPole > -1 && c.DCBlockerPole < 1):
		return fmt.Errorf("dc_blocker_pole=%g: %w", c.DCBlockerPole, ErrInvalid)
	case c.AlignWindow < -1:
		return fmt.Errorf("align_window=%d: %w", c.AlignWindow, ErrInvalid)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level=%q: %w", c.LogLevel, ErrInvalid)
	}
	return nil
}
