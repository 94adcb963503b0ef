// Package day03 reads part numbers and gear ratios off an engine schematic.
package day03

import (
	"context"

	"aoc/internal/solver"
)

// Point is a cell in the schematic.
type Point struct {
	Row, Col int
}

// Number is a run of digits on one row.
type Number struct {
	Value int
	Row   int
	Start int // first column
	End   int // one past the last column
}

// Schematic is the engine schematic, one string per row.
type Schematic []string

func (s Schematic) at(p Point) (byte, bool) {
	if p.Row < 0 || p.Row >= len(s) || p.Col < 0 || p.Col >= len(s[p.Row]) {
		return 0, false
	}
	return s[p.Row][p.Col], true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSymbol(c byte) bool { return c != '.' && !isDigit(c) }

// Numbers returns every number in reading order.
func (s Schematic) Numbers() []Number {
	var nums []Number
	for r, row := range s {
		for c := 0; c < len(row); {
			if !isDigit(row[c]) {
				c++
				continue
			}
			n := Number{Row: r, Start: c}
			for c < len(row) && isDigit(row[c]) {
				n.Value = n.Value*10 + int(row[c]-'0')
				c++
			}
			n.End = c
			nums = append(nums, n)
		}
	}
	return nums
}

// neighbours returns the in-bounds cells touching n, diagonals included.
func (s Schematic) neighbours(n Number) []Point {
	var pts []Point
	for r := n.Row - 1; r <= n.Row+1; r++ {
		for c := n.Start - 1; c <= n.End; c++ {
			if r == n.Row && c >= n.Start && c < n.End {
				continue
			}
			if _, ok := s.at(Point{r, c}); ok {
				pts = append(pts, Point{r, c})
			}
		}
	}
	return pts
}

// IsPart reports whether n touches a symbol.
func (s Schematic) IsPart(n Number) bool {
	for _, p := range s.neighbours(n) {
		if c, _ := s.at(p); isSymbol(c) {
			return true
		}
	}
	return false
}

// SumPartNumbers adds every number adjacent to a symbol.
func (s Schematic) SumPartNumbers() int {
	sum := 0
	for _, n := range s.Numbers() {
		if s.IsPart(n) {
			sum += n.Value
		}
	}
	return sum
}

// SumGearRatios adds the product of the two numbers around every '*' that
// touches exactly two numbers.
func (s Schematic) SumGearRatios() int {
	adjacent := make(map[Point][]int)
	for _, n := range s.Numbers() {
		for _, p := range s.neighbours(n) {
			if c, _ := s.at(p); c == '*' {
				adjacent[p] = append(adjacent[p], n.Value)
			}
		}
	}

	sum := 0
	for _, vals := range adjacent {
		if len(vals) == 2 {
			sum += vals[0] * vals[1]
		}
	}
	return sum
}

func solve(_ context.Context, p *solver.Puzzle) error {
	lines, err := p.Lines()
	if err != nil {
		return err
	}
	s := Schematic(lines)

	p.Printf("Sum of all part numbers in schematic (Part I): %d\n", s.SumPartNumbers())
	p.Printf("Sum of all gear ratios in schematic (Part II): %d\n", s.SumGearRatios())
	return nil
}

// Unit returns the registration for 2023 day 3.
func Unit() *solver.Unit {
	return &solver.Unit{
		Key:    solver.Key{Year: 2023, Day: 3},
		Title:  "Gear Ratios",
		Solver: solver.SolverFunc(solve),
	}
}
