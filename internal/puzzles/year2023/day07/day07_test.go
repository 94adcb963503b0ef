package day07

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aoc/internal/puzzles/puzzletest"
)

const sample = `32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
`

func TestKind(t *testing.T) {
	tests := []struct {
		cards  string
		jokers bool
		want   Kind
	}{
		{"AAAAA", false, FiveOfAKind},
		{"AA8AA", false, FourOfAKind},
		{"23332", false, FullHouse},
		{"TTT98", false, ThreeOfAKind},
		{"23432", false, TwoPair},
		{"A23A4", false, OnePair},
		{"23456", false, HighCard},
		{"KTJJT", false, TwoPair},
		{"KTJJT", true, FourOfAKind},
		{"JJJJJ", true, FiveOfAKind},
		{"2345J", true, OnePair},
		{"22J33", true, FullHouse},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Hand{Cards: tt.cards}.Kind(tt.jokers), "%s jokers=%v", tt.cards, tt.jokers)
	}
}

func TestLess_TieBreak(t *testing.T) {
	assert.True(t, less(Hand{Cards: "2AAAA"}, Hand{Cards: "33332"}, false))
	assert.True(t, less(Hand{Cards: "KK677"}, Hand{Cards: "KTJJT"}, true))
	assert.True(t, less(Hand{Cards: "JKKK2"}, Hand{Cards: "QQQQ2"}, true))
}

func TestParseHands_Errors(t *testing.T) {
	for _, line := range []string{"32T3K", "32T3 765", "32T3X 765", "32T3K x"} {
		_, err := ParseHands([]string{line})
		assert.Error(t, err, line)
	}
}

func TestWinnings(t *testing.T) {
	hands, err := ParseHands([]string{"32T3K 765", "T55J5 684", "KK677 28", "KTJJT 220", "QQQJA 483"})
	require.NoError(t, err)
	assert.Equal(t, 6440, Winnings(hands, false))
	assert.Equal(t, 5905, Winnings(hands, true))
	assert.Equal(t, "32T3K", hands[0].Cards, "input order is preserved")
}

func TestSolve(t *testing.T) {
	out := puzzletest.Solve(t, Unit(), sample)
	assert.Equal(t, "Total winnings (Part I): 6440\nTotal winnings with jokers (Part II): 5905\n", out)
}
