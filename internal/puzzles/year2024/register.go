// Package year2024 registers the 2024 puzzle units.
package year2024

import (
	"aoc/internal/puzzles/year2024/day01"
	"aoc/internal/solver"
)

// RegisterAll registers every 2024 unit with the given registry.
func RegisterAll(registry *solver.Registry) error {
	units := []*solver.Unit{
		day01.Unit(),
	}

	for _, u := range units {
		if err := registry.Register(u); err != nil {
			return err
		}
	}
	return nil
}
