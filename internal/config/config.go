// Package config loads the settings of the fnkit walkthrough from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultRandomPulls is the number of values the lazy evaluation lesson
	// pulls when the config does not say otherwise.
	DefaultRandomPulls = 3

	LogLevelInfo  = "info"
	LogLevelDebug = "debug"
)

// ErrInvalid is wrapped by every validation error returned by Load.
var ErrInvalid = errors.New("invalid config")

// Config contains the walkthrough settings.
// If some field is not defined in the config file, it keeps its default value.
type Config struct {
	// Lessons to run, by name. Empty means every lesson, in catalogue order.
	Lessons []string `yaml:"lessons"`

	// RandomPulls is how many values the lazy lesson draws from the infinite
	// random sequence.
	RandomPulls int `yaml:"random-pulls"`

	// Color enables ANSI colors when stdout is a terminal.
	Color bool `yaml:"color"`

	// LogLevel is either "info" or "debug".
	LogLevel string `yaml:"log-level"`

	sourceFile string
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		RandomPulls: DefaultRandomPulls,
		Color:       true,
		LogLevel:    LogLevelInfo,
	}
}

// Load reads the config file at path. An empty path returns Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	cfg.sourceFile = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that the YAML decoder cannot.
func (c *Config) Validate() error {
	if c.RandomPulls < 0 {
		return fmt.Errorf("%w: random-pulls must not be negative, got %d", ErrInvalid, c.RandomPulls)
	}
	switch c.LogLevel {
	case LogLevelInfo, LogLevelDebug:
	default:
		return fmt.Errorf("%w: unknown log-level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == LogLevelDebug
}

// SourceFile returns the file the config was loaded from, if any.
func (c *Config) SourceFile() string {
	return c.sourceFile
}
