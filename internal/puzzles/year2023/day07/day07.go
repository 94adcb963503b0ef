// Package day07 ranks Camel Cards hands.
package day07

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"aoc/internal/solver"
)

// Kind is a hand's type, weakest first.
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

const (
	standardOrder = "23456789TJQKA"
	jokerOrder    = "J23456789TQKA"
)

// Hand is five cards and the bid placed on them.
type Hand struct {
	Cards string
	Bid   int
}

// Kind classifies the hand. With jokers, every J joins the largest group.
func (h Hand) Kind(jokers bool) Kind {
	counts := make(map[rune]int, 5)
	wild := 0
	for _, c := range h.Cards {
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}

	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(groups)))
	if len(groups) == 0 {
		groups = []int{0}
	}
	groups[0] += wild

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	default:
		return HighCard
	}
}

// less orders a before b by kind, then card by card.
func less(a, b Hand, jokers bool) bool {
	ka, kb := a.Kind(jokers), b.Kind(jokers)
	if ka != kb {
		return ka < kb
	}
	order := standardOrder
	if jokers {
		order = jokerOrder
	}
	for i := 0; i < len(a.Cards); i++ {
		ra, rb := strings.IndexByte(order, a.Cards[i]), strings.IndexByte(order, b.Cards[i])
		if ra != rb {
			return ra < rb
		}
	}
	return false
}

// ParseHands parses "32T3K 765" lines.
func ParseHands(lines []string) ([]Hand, error) {
	hands := make([]Hand, 0, len(lines))
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("bad hand %q", line)
		}
		if len(fields[0]) != 5 || strings.Trim(fields[0], standardOrder) != "" {
			return nil, fmt.Errorf("bad cards %q", fields[0])
		}
		bid, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("bad bid in %q: %w", line, err)
		}
		hands = append(hands, Hand{Cards: fields[0], Bid: bid})
	}
	return hands, nil
}

// Winnings ranks the hands weakest first and sums bid*rank.
func Winnings(hands []Hand, jokers bool) int {
	ranked := append([]Hand(nil), hands...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j], jokers)
	})

	total := 0
	for i, h := range ranked {
		total += h.Bid * (i + 1)
	}
	return total
}

func solve(_ context.Context, p *solver.Puzzle) error {
	lines, err := p.Lines()
	if err != nil {
		return err
	}
	hands, err := ParseHands(lines)
	if err != nil {
		return err
	}

	p.Printf("Total winnings (Part I): %d\n", Winnings(hands, false))
	p.Printf("Total winnings with jokers (Part II): %d\n", Winnings(hands, true))
	return nil
}

// Unit returns the registration for 2023 day 7.
func Unit() *solver.Unit {
	return &solver.Unit{
		Key:    solver.Key{Year: 2023, Day: 7},
		Title:  "Camel Cards",
		Solver: solver.SolverFunc(solve),
	}
}
