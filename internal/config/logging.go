package config

import "fmt"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level,omitempty"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format,omitempty"` // console, json
}

// Validate rejects unknown levels and formats.
func (c LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown logging.level %q (valid: debug, info, warn, error)", ErrInvalidConfig, c.Level)
	}
	switch c.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: unknown logging.format %q (valid: console, json)", ErrInvalidConfig, c.Format)
	}
	return nil
}
