// Package day05 follows seeds through the almanac's chain of maps to a
// location.
package day05

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"aoc/internal/input"
	"aoc/internal/solver"
)

var errNoSeeds = errors.New("almanac has no seeds")

// Range maps [Src, Src+Len) onto [Dst, Dst+Len).
type Range struct {
	Dst, Src, Len int
}

// Stage is one "x-to-y map" section.
type Stage struct {
	Name   string
	Ranges []Range
}

// Map returns where v lands. Values no range covers map to themselves.
func (s Stage) Map(v int) int {
	for _, r := range s.Ranges {
		if v >= r.Src && v < r.Src+r.Len {
			return r.Dst + v - r.Src
		}
	}
	return v
}

// Interval is the half-open span [Start, End).
type Interval struct {
	Start, End int
}

// MapIntervals maps every value in ivs through s, splitting intervals that
// straddle range boundaries.
func (s Stage) MapIntervals(ivs []Interval) []Interval {
	var out []Interval
	pending := append([]Interval(nil), ivs...)
	for len(pending) > 0 {
		iv := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		mapped := false
		for _, r := range s.Ranges {
			lo, hi := max(iv.Start, r.Src), min(iv.End, r.Src+r.Len)
			if lo >= hi {
				continue
			}
			shift := r.Dst - r.Src
			out = append(out, Interval{lo + shift, hi + shift})
			if iv.Start < lo {
				pending = append(pending, Interval{iv.Start, lo})
			}
			if hi < iv.End {
				pending = append(pending, Interval{hi, iv.End})
			}
			mapped = true
			break
		}
		if !mapped {
			out = append(out, iv)
		}
	}
	return out
}

// Almanac is the parsed puzzle input.
type Almanac struct {
	Seeds  []int
	Stages []Stage
}

// Parse reads the seeds line and the map sections that follow it.
func Parse(lines []string) (Almanac, error) {
	blocks := input.SplitBlocks(lines)
	if len(blocks) == 0 || !strings.HasPrefix(blocks[0][0], "seeds:") {
		return Almanac{}, errNoSeeds
	}

	seeds, err := input.Ints(blocks[0][0])
	if err != nil {
		return Almanac{}, err
	}
	a := Almanac{Seeds: seeds}
	if len(a.Seeds) == 0 {
		return Almanac{}, errNoSeeds
	}
	for _, b := range blocks[1:] {
		st := Stage{Name: strings.TrimSuffix(b[0], " map:")}
		for _, line := range b[1:] {
			nums, err := input.Ints(line)
			if err != nil {
				return Almanac{}, fmt.Errorf("%s: %w", st.Name, err)
			}
			if len(nums) != 3 {
				return Almanac{}, fmt.Errorf("%s: expected 3 numbers in %q", st.Name, line)
			}
			st.Ranges = append(st.Ranges, Range{Dst: nums[0], Src: nums[1], Len: nums[2]})
		}
		a.Stages = append(a.Stages, st)
	}
	return a, nil
}

// Location runs seed through every stage.
func (a Almanac) Location(seed int) int {
	v := seed
	for _, st := range a.Stages {
		v = st.Map(v)
	}
	return v
}

// LowestLocation returns the smallest location of any individual seed.
func (a Almanac) LowestLocation() int {
	lowest := math.MaxInt
	for _, s := range a.Seeds {
		lowest = min(lowest, a.Location(s))
	}
	return lowest
}

// LowestRangeLocation reads the seeds as (start, length) pairs and returns
// the smallest location of any seed in any range.
func (a Almanac) LowestRangeLocation() (int, error) {
	if len(a.Seeds)%2 != 0 {
		return 0, fmt.Errorf("seed ranges need pairs, got %d numbers", len(a.Seeds))
	}

	var ivs []Interval
	for i := 0; i < len(a.Seeds); i += 2 {
		if a.Seeds[i+1] > 0 {
			ivs = append(ivs, Interval{a.Seeds[i], a.Seeds[i] + a.Seeds[i+1]})
		}
	}
	if len(ivs) == 0 {
		return 0, errNoSeeds
	}
	for _, st := range a.Stages {
		ivs = st.MapIntervals(ivs)
	}

	lowest := math.MaxInt
	for _, iv := range ivs {
		lowest = min(lowest, iv.Start)
	}
	return lowest, nil
}

func solve(_ context.Context, p *solver.Puzzle) error {
	lines, err := p.Lines()
	if err != nil {
		return err
	}
	a, err := Parse(lines)
	if err != nil {
		return err
	}
	ranged, err := a.LowestRangeLocation()
	if err != nil {
		return err
	}

	p.Printf("Lowest location number (Part I): %d\n", a.LowestLocation())
	p.Printf("Lowest location number for seed ranges (Part II): %d\n", ranged)
	return nil
}

// Unit returns the registration for 2023 day 5.
func Unit() *solver.Unit {
	return &solver.Unit{
		Key:    solver.Key{Year: 2023, Day: 5},
		Title:  "If You Give A Seed A Fertilizer",
		Solver: solver.SolverFunc(solve),
	}
}
