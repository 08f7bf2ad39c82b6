// Package config holds pipeloop's run settings: YAML file values, defaults
// and environment overrides. Command-line flags are applied on top by the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Modes of operation.
const (
	// ModeCounter prints the anti-point distance and enclosure counts.
	ModeCounter = "counter"
	// ModeMap additionally prints the field with enclosed cells marked.
	ModeMap = "map"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Environment variables that override file values.
const (
	EnvDebug  = "PIPELOOP_DEBUG"
	EnvFormat = "PIPELOOP_FORMAT"
	EnvMode   = "PIPELOOP_MODE"
)

var (
	// ErrInvalidMode indicates an unknown mode of operation.
	ErrInvalidMode = errors.New("config: invalid mode")
	// ErrInvalidFormat indicates an unknown output format.
	ErrInvalidFormat = errors.New("config: invalid format")
	// ErrInvalidEncoding indicates an unknown log encoding.
	ErrInvalidEncoding = errors.New("config: invalid log encoding")
)

// Config holds all pipeloop configuration.
type Config struct {
	// Input files to analyse, in report order.
	Inputs []string `yaml:"inputs"`

	// Mode is counter or map.
	Mode string `yaml:"mode"`

	// Format is text or yaml.
	Format string `yaml:"format"`

	// Reverse traces each loop in the opposite sense.
	Reverse bool `yaml:"reverse"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Debug    bool   `yaml:"debug"`
	Encoding string `yaml:"encoding"` // console or json
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Mode:   ModeCounter,
		Format: FormatText,
		Logging: LoggingConfig{
			Debug:    false,
			Encoding: "console",
		},
	}
}

// Load reads configuration from a YAML file over the defaults, then applies
// environment overrides. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		cfg.applyEnvOverrides()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvDebug); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.Debug = b
		}
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = strings.ToLower(v)
	}
	if v := os.Getenv(EnvMode); v != "" {
		c.Mode = strings.ToLower(v)
	}
}

// Validate checks mode, format and log encoding.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeCounter, ModeMap:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	switch c.Logging.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEncoding, c.Logging.Encoding)
	}
	return nil
}
