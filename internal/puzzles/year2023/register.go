// Package year2023 registers the 2023 puzzle units.
//
// Days:
//   - 01: Trebuchet?!
//   - 02: Cube Conundrum
//   - 03: Gear Ratios
//   - 04: Scratchcards
//   - 05: If You Give A Seed A Fertilizer
//   - 06: Wait For It
//   - 07: Camel Cards
package year2023

import (
	"aoc/internal/puzzles/year2023/day01"
	"aoc/internal/puzzles/year2023/day02"
	"aoc/internal/puzzles/year2023/day03"
	"aoc/internal/puzzles/year2023/day04"
	"aoc/internal/puzzles/year2023/day05"
	"aoc/internal/puzzles/year2023/day06"
	"aoc/internal/puzzles/year2023/day07"
	"aoc/internal/solver"
)

// RegisterAll registers every 2023 unit with the given registry.
func RegisterAll(registry *solver.Registry) error {
	units := []*solver.Unit{
		day01.Unit(),
		day02.Unit(),
		day03.Unit(),
		day04.Unit(),
		day05.Unit(),
		day06.Unit(),
		day07.Unit(),
	}

	for _, u := range units {
		if err := registry.Register(u); err != nil {
			return err
		}
	}
	return nil
}
