package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate when a setting is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultPath is the config file the CLI reads when --config is not given.
const DefaultPath = "aoc.yaml"

// Config holds all runner configuration.
type Config struct {
	// Namespace is the leading segment of every solver identifier
	// (e.g. "aoc" in aoc.year2023.day05.main).
	Namespace string `yaml:"namespace"`

	// Years bounds the accepted --year values.
	Years YearRange `yaml:"years"`

	// DataDir holds the puzzle input files (<YY>-<DD>.txt).
	DataDir string `yaml:"data_dir"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Namespace: "aoc",
		Years: YearRange{
			Min:     2015,
			Max:     2024,
			Default: 2023,
		},
		DataDir: "data",
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults (with environment overrides applied).
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := strings.TrimSpace(os.Getenv("AOC_YEAR")); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: AOC_YEAR=%q is not an integer", ErrInvalidConfig, v)
		}
		c.Years.Default = year
	}
	if dir := os.Getenv("AOC_DATA_DIR"); dir != "" {
		c.DataDir = dir
	}
	if level := os.Getenv("AOC_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	return nil
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Namespace) == "" {
		return fmt.Errorf("%w: namespace must not be empty", ErrInvalidConfig)
	}
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir must not be empty", ErrInvalidConfig)
	}
	if err := c.Years.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}
