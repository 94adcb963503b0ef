// Package day01 recovers trebuchet calibration values.
package day01

import (
	"context"
	"fmt"
	"strings"

	"aoc/internal/solver"
)

var digitWords = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Calibrate returns the first digit of line times ten plus its last digit.
// With words set, spelled-out digits count too; overlapping words such as
// "eightwo" yield both digits.
func Calibrate(line string, words bool) (int, error) {
	first, last := -1, -1
	for i := range line {
		d := digitAt(line, i, words)
		if d < 0 {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, fmt.Errorf("no calibration digit in %q", line)
	}
	return first*10 + last, nil
}

func digitAt(s string, i int, words bool) int {
	if c := s[i]; c >= '1' && c <= '9' {
		return int(c - '0')
	}
	if !words {
		return -1
	}
	for n, w := range digitWords {
		if strings.HasPrefix(s[i:], w) {
			return n + 1
		}
	}
	return -1
}

// SumCalibration adds the calibration value of every line.
func SumCalibration(lines []string, words bool) (int, error) {
	sum := 0
	for i, line := range lines {
		v, err := Calibrate(line, words)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += v
	}
	return sum, nil
}

func solve(_ context.Context, p *solver.Puzzle) error {
	lines, err := p.Lines()
	if err != nil {
		return err
	}

	numeric, err := SumCalibration(lines, false)
	if err != nil {
		return err
	}
	withWords, err := SumCalibration(lines, true)
	if err != nil {
		return err
	}

	p.Printf("Sum with numbers only (Part I): %d\n", numeric)
	p.Printf("Sum with words included (Part II): %d\n", withWords)
	return nil
}

// Unit returns the registration for 2023 day 1.
func Unit() *solver.Unit {
	return &solver.Unit{
		Key:    solver.Key{Year: 2023, Day: 1},
		Title:  "Trebuchet?!",
		Solver: solver.SolverFunc(solve),
	}
}
