// Package day04 scores scratchcards.
package day04

import (
	"context"
	"fmt"
	"strings"

	"aoc/internal/input"
	"aoc/internal/numeric"
	"aoc/internal/solver"
)

// Card is one scratchcard.
type Card struct {
	ID      int
	Winning []int
	Have    []int
}

// Matches counts the numbers on the card that are also winning numbers.
func (c Card) Matches() int {
	winning := make(map[int]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = struct{}{}
	}
	m := 0
	for _, n := range c.Have {
		if _, ok := winning[n]; ok {
			m++
		}
	}
	return m
}

// Score is 2^(matches-1), or zero without a match.
func (c Card) Score() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// ParseCard parses "Card 1: 41 48 83 | 83 86 6".
func ParseCard(line string) (Card, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("missing ':' in %q", line)
	}
	winning, have, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("missing '|' in %q", line)
	}
	ids, err := input.Ints(head)
	if err != nil {
		return Card{}, err
	}
	if len(ids) != 1 {
		return Card{}, fmt.Errorf("bad card id in %q", line)
	}
	c := Card{ID: ids[0]}
	if c.Winning, err = input.Ints(winning); err != nil {
		return Card{}, err
	}
	if c.Have, err = input.Ints(have); err != nil {
		return Card{}, err
	}
	return c, nil
}

// ParseCards parses one card per line.
func ParseCards(lines []string) ([]Card, error) {
	cards := make([]Card, 0, len(lines))
	for _, line := range lines {
		c, err := ParseCard(line)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// TotalScore adds every card's score.
func TotalScore(cards []Card) int {
	scores := make([]int, len(cards))
	for i, c := range cards {
		scores[i] = c.Score()
	}
	return numeric.Sum(scores...)
}

// TotalCards counts the cards held once every card with m matches has won
// one copy of each of the next m cards. Copies never run past the last card.
func TotalCards(cards []Card) int {
	counts := make([]int, len(cards))
	for i := range counts {
		counts[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			counts[j] += counts[i]
		}
	}
	return numeric.Sum(counts...)
}

func solve(_ context.Context, p *solver.Puzzle) error {
	lines, err := p.Lines()
	if err != nil {
		return err
	}
	cards, err := ParseCards(lines)
	if err != nil {
		return err
	}

	p.Printf("Sum of all card scores (Part I): %d\n", TotalScore(cards))
	p.Printf("Total number of scratchcards after copying (Part II): %d\n", TotalCards(cards))
	return nil
}

// Unit returns the registration for 2023 day 4.
func Unit() *solver.Unit {
	return &solver.Unit{
		Key:    solver.Key{Year: 2023, Day: 4},
		Title:  "Scratchcards",
		Solver: solver.SolverFunc(solve),
	}
}
