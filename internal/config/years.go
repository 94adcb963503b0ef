package config

import "fmt"

// YearRange is the closed interval of supported puzzle years plus the year
// used when none is requested.
type YearRange struct {
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Default int `yaml:"default"`
}

// Contains reports whether year lies in [Min, Max].
func (r YearRange) Contains(year int) bool {
	return year >= r.Min && year <= r.Max
}

// Validate checks that the range is non-empty and holds its default.
func (r YearRange) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: years.min (%d) must be <= years.max (%d)", ErrInvalidConfig, r.Min, r.Max)
	}
	if !r.Contains(r.Default) {
		return fmt.Errorf("%w: years.default (%d) must be in range [%d, %d]", ErrInvalidConfig, r.Default, r.Min, r.Max)
	}
	return nil
}
