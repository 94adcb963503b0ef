package runner

import (
	"errors"
	"fmt"

	"aoc/internal/config"
	"aoc/internal/input"
	"aoc/internal/solver"
)

// ErrInvalidSelector is returned for a year or day outside the supported range.
var ErrInvalidSelector = errors.New("invalid selector")

// Selector identifies which puzzle to run. Build it with NewSelector.
type Selector struct {
	Year int
	Day  int
}

// NewSelector validates year against years and day against [1, 24].
func NewSelector(years config.YearRange, year, day int) (Selector, error) {
	if day < input.MinDay || day > input.MaxDay {
		return Selector{}, fmt.Errorf("%w: day %d must be in range [%d, %d]", ErrInvalidSelector, day, input.MinDay, input.MaxDay)
	}
	if !years.Contains(year) {
		return Selector{}, fmt.Errorf("%w: year %d must be in range [%d, %d]", ErrInvalidSelector, year, years.Min, years.Max)
	}
	return Selector{Year: year, Day: day}, nil
}

// Identifier returns the solver identifier for s under namespace, e.g.
// "aoc.year2023.day05.main".
func (s Selector) Identifier(namespace string) string {
	return fmt.Sprintf("%s.year%d.day%02d.main", namespace, s.Year, s.Day)
}

// Key returns the registry key for s.
func (s Selector) Key() solver.Key {
	return solver.Key{Year: s.Year, Day: s.Day}
}
