package day05

import (
	"sort"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc/internal/puzzles/puzzletest"
)

const sample = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func almanac(t *testing.T) Almanac {
	t.Helper()
	a, err := Parse(strings.Split(sample, "\n"))
	require.NoError(t, err)
	return a
}

func TestParse(t *testing.T) {
	a := almanac(t)
	assert.Equal(t, []int{79, 14, 55, 13}, a.Seeds)
	require.Len(t, a.Stages, 7)
	assert.Equal(t, "seed-to-soil", a.Stages[0].Name)
	assert.Equal(t, []Range{{Dst: 50, Src: 98, Len: 2}, {Dst: 52, Src: 50, Len: 48}}, a.Stages[0].Ranges)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorIs(t, err, errNoSeeds)

	_, err = Parse([]string{"seeds: 1 2", "", "a-to-b map:", "1 2"})
	assert.ErrorContains(t, err, "a-to-b")

	_, err = Parse([]string{"seeds: 1 2", "", "a-to-b map:", "1 2 99999999999999999999999"})
	assert.ErrorIs(t, err, strconv.ErrRange)
	assert.ErrorContains(t, err, "a-to-b")
}

func TestLocation(t *testing.T) {
	a := almanac(t)
	for seed, want := range map[int]int{79: 82, 14: 43, 55: 86, 13: 35} {
		assert.Equal(t, want, a.Location(seed), "seed %d", seed)
	}
}

func TestMapIntervals(t *testing.T) {
	st := Stage{Ranges: []Range{{Dst: 100, Src: 10, Len: 5}}}
	got := st.MapIntervals([]Interval{{Start: 5, End: 20}})
	sort.Slice(got, func(i, j int) bool { return got[i].Start < got[j].Start })

	want := []Interval{{5, 10}, {15, 20}, {100, 105}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MapIntervals mismatch (-want +got):\n%s", diff)
	}
}

func TestLowestRangeLocation_OddSeeds(t *testing.T) {
	a := Almanac{Seeds: []int{1, 2, 3}}
	_, err := a.LowestRangeLocation()
	assert.Error(t, err)
}

func TestSolve(t *testing.T) {
	out := puzzletest.Solve(t, Unit(), sample)
	assert.Equal(t,
		"Lowest location number (Part I): 35\nLowest location number for seed ranges (Part II): 46\n",
		out)
}
