// Package config loads hamgrid settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value outside its domain.
var ErrInvalidConfig = errors.New("config: invalid value")

// Render modes understood by the CLI.
const (
	ModeText    = "text"    // print the finished board once
	ModeAnimate = "animate" // play the board in the terminal
	ModeStream  = "stream"  // one "x y D" line per arrow
	ModeNone    = "none"    // counts only
)

// Environment variables consulted by Load.
const (
	EnvSize     = "HAMGRID_SIZE"
	EnvDelay    = "HAMGRID_DELAY"
	EnvMode     = "HAMGRID_MODE"
	EnvLogLevel = "HAMGRID_LOG_LEVEL"
)

// Config holds all hamgrid configuration.
type Config struct {
	// Size is the grid size n used when none is given on the command line.
	Size int `yaml:"size"`

	// Render configures the drawing pass.
	Render RenderConfig `yaml:"render"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig configures the renderer.
type RenderConfig struct {
	Mode  string `yaml:"mode"`  // text, animate, stream, none
	Delay string `yaml:"delay"` // pause between arrows, e.g. "50ms"
	Color bool   `yaml:"color"`
	Hold  bool   `yaml:"hold"` // keep the animation open when it finishes
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Size: 8,
		Render: RenderConfig{
			Mode:  ModeText,
			Delay: "50ms",
			Color: true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
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

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvSize); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSize, v, ErrInvalidConfig)
		}
		c.Size = n
	}
	if v := os.Getenv(EnvDelay); v != "" {
		c.Render.Delay = v
	}
	if v := os.Getenv(EnvMode); v != "" {
		c.Render.Mode = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}

	return nil
}

// Validate checks the fields that do not depend on the grid size. The size
// itself is validated by the cycle package so the CLI can report it verbatim.
func (c *Config) Validate() error {
	switch c.Render.Mode {
	case ModeText, ModeAnimate, ModeStream, ModeNone:
	default:
		return fmt.Errorf("render.mode=%q: %w", c.Render.Mode, ErrInvalidConfig)
	}
	if d, err := time.ParseDuration(c.Render.Delay); err != nil || d < 0 {
		return fmt.Errorf("render.delay=%q: %w", c.Render.Delay, ErrInvalidConfig)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level=%q: %w", c.Logging.Level, ErrInvalidConfig)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format=%q: %w", c.Logging.Format, ErrInvalidConfig)
	}

	return nil
}

// GetDelay returns the render delay as a duration.
func (c *Config) GetDelay() time.Duration {
	d, err := time.ParseDuration(c.Render.Delay)
	if err != nil || d < 0 {
		return 50 * time.Millisecond
	}
	return d
}
