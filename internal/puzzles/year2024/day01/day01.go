// Package day01 reconciles the two historians' location id lists.
package day01

import (
	"context"
	"fmt"
	"sort"

	"aoc/internal/input"
	"aoc/internal/numeric"
	"aoc/internal/solver"
)

// ParseLists reads two whitespace separated columns.
func ParseLists(lines []string) (left, right []int, err error) {
	for i, line := range lines {
		nums, err := input.Ints(line)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(nums) != 2 {
			return nil, nil, fmt.Errorf("line %d: expected two ids, got %q", i+1, line)
		}
		left = append(left, nums[0])
		right = append(right, nums[1])
	}
	return left, right, nil
}

// TotalDistance pairs the lists smallest to smallest and sums the gaps.
func TotalDistance(left, right []int) int {
	l := append([]int(nil), left...)
	r := append([]int(nil), right...)
	sort.Ints(l)
	sort.Ints(r)

	total := 0
	for i := range l {
		total += numeric.AbsDiff(l[i], r[i])
	}
	return total
}

// Similarity sums each left id times the number of times it appears on the
// right.
func Similarity(left, right []int) int {
	seen := make(map[int]int, len(right))
	for _, id := range right {
		seen[id]++
	}
	score := 0
	for _, id := range left {
		score += id * seen[id]
	}
	return score
}

func solve(_ context.Context, p *solver.Puzzle) error {
	lines, err := p.Lines()
	if err != nil {
		return err
	}
	left, right, err := ParseLists(lines)
	if err != nil {
		return err
	}

	p.Printf("Solution to part 1: %d\n", TotalDistance(left, right))
	p.Printf("Solution to part 2: %d\n", Similarity(left, right))
	return nil
}

// Unit returns the registration for 2024 day 1.
func Unit() *solver.Unit {
	return &solver.Unit{
		Key:    solver.Key{Year: 2024, Day: 1},
		Title:  "Historian Hysteria",
		Solver: solver.SolverFunc(solve),
	}
}
