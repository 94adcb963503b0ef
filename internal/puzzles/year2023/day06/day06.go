// Package day06 counts the ways to win toy boat races.
package day06

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"aoc/internal/input"
	"aoc/internal/numeric"
	"aoc/internal/solver"
)

// Race is one race: its duration and the record distance to beat.
type Race struct {
	Time, Record int
}

func (r Race) distance(hold int) int {
	return hold * (r.Time - hold)
}

// Ways counts the hold durations that beat the record.
//
// Distance is symmetric around Time/2 and increases up to it, so a binary
// search over [0, Time/2] finds the shortest winning hold.
func (r Race) Ways() int {
	mid := r.Time / 2
	if r.distance(mid) <= r.Record {
		return 0
	}
	lo, hi := 0, mid
	for lo < hi {
		h := (lo + hi) / 2
		if r.distance(h) > r.Record {
			hi = h
		} else {
			lo = h + 1
		}
	}
	return r.Time - 2*lo + 1
}

func fieldLine(lines []string, label string) (string, error) {
	for _, line := range lines {
		if rest, ok := strings.CutPrefix(line, label+":"); ok {
			return rest, nil
		}
	}
	return "", fmt.Errorf("missing %q line", label)
}

// ParseRaces reads the Time and Distance lines column by column.
func ParseRaces(lines []string) ([]Race, error) {
	tl, err := fieldLine(lines, "Time")
	if err != nil {
		return nil, err
	}
	dl, err := fieldLine(lines, "Distance")
	if err != nil {
		return nil, err
	}

	times, err := input.Ints(tl)
	if err != nil {
		return nil, err
	}
	dists, err := input.Ints(dl)
	if err != nil {
		return nil, err
	}
	if len(times) != len(dists) {
		return nil, fmt.Errorf("%d times but %d distances", len(times), len(dists))
	}
	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Record: dists[i]}
	}
	return races, nil
}

// ParseKerned reads the lines as a single race, ignoring the spaces
// between digits.
func ParseKerned(lines []string) (Race, error) {
	join := func(label string) (int, error) {
		s, err := fieldLine(lines, label)
		if err != nil {
			return 0, err
		}
		return strconv.Atoi(strings.Join(strings.Fields(s), ""))
	}
	t, err := join("Time")
	if err != nil {
		return Race{}, err
	}
	d, err := join("Distance")
	if err != nil {
		return Race{}, err
	}
	return Race{Time: t, Record: d}, nil
}

// WinProduct multiplies the number of ways to win each race.
func WinProduct(races []Race) int {
	ways := make([]int, len(races))
	for i, r := range races {
		ways[i] = r.Ways()
	}
	return numeric.Product(ways...)
}

func solve(_ context.Context, p *solver.Puzzle) error {
	lines, err := p.Lines()
	if err != nil {
		return err
	}
	races, err := ParseRaces(lines)
	if err != nil {
		return err
	}
	kerned, err := ParseKerned(lines)
	if err != nil {
		return err
	}

	p.Printf("Product of all winning race configuration counts (Part I): %d\n", WinProduct(races))
	p.Printf("Count of winning race conditions with bad kerning (Part II): %d\n", kerned.Ways())
	return nil
}

// Unit returns the registration for 2023 day 6.
func Unit() *solver.Unit {
	return &solver.Unit{
		Key:    solver.Key{Year: 2023, Day: 6},
		Title:  "Wait For It",
		Solver: solver.SolverFunc(solve),
	}
}
