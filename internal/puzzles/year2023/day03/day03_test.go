package day03

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"aoc/internal/puzzles/puzzletest"
)

const sample = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func schematic() Schematic {
	return Schematic(strings.Split(strings.TrimSuffix(sample, "\n"), "\n"))
}

func TestNumbers(t *testing.T) {
	got := Schematic{"467..114..", "...*......"}.Numbers()
	want := []Number{
		{Value: 467, Row: 0, Start: 0, End: 3},
		{Value: 114, Row: 0, Start: 5, End: 8},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Numbers mismatch (-want +got):\n%s", diff)
	}
}

func TestIsPart(t *testing.T) {
	s := schematic()
	parts := map[int]bool{}
	for _, n := range s.Numbers() {
		parts[n.Value] = s.IsPart(n)
	}
	assert.True(t, parts[467])
	assert.False(t, parts[114])
	assert.False(t, parts[58])
	assert.True(t, parts[592])
}

func TestEdgeNumbers(t *testing.T) {
	s := Schematic{"12", "#."}
	assert.Equal(t, 12, s.SumPartNumbers())

	s = Schematic{"5*5"}
	assert.Equal(t, 25, s.SumGearRatios())

	s = Schematic{"5*5", ".5."}
	assert.Equal(t, 0, s.SumGearRatios())
}

func TestSolve(t *testing.T) {
	out := puzzletest.Solve(t, Unit(), sample)
	assert.Equal(t,
		"Sum of all part numbers in schematic (Part I): 4361\nSum of all gear ratios in schematic (Part II): 467835\n",
		out)
}
