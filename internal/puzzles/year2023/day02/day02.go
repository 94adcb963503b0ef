// Package day02 checks cube game records against a bag's contents.
package day02

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"aoc/internal/solver"
)

// Cubes counts cubes by colour.
type Cubes struct {
	Red, Green, Blue int
}

// Contains reports whether every colour in o fits in c.
func (c Cubes) Contains(o Cubes) bool {
	return o.Red <= c.Red && o.Green <= c.Green && o.Blue <= c.Blue
}

// Power is the product of the three counts.
func (c Cubes) Power() int {
	return c.Red * c.Green * c.Blue
}

// Bag is the loaded bag for part one.
var Bag = Cubes{Red: 12, Green: 13, Blue: 14}

// Game is one recorded game: the cubes revealed in each draw.
type Game struct {
	ID    int
	Draws []Cubes
}

// Possible reports whether every draw could have come from bag.
func (g Game) Possible(bag Cubes) bool {
	for _, d := range g.Draws {
		if !bag.Contains(d) {
			return false
		}
	}
	return true
}

// Minimum returns the fewest cubes of each colour that make g possible.
func (g Game) Minimum() Cubes {
	var m Cubes
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

// ParseGame parses a line like "Game 3: 8 green, 6 blue; 5 red".
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("missing ':' in %q", line)
	}
	id, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(head, "Game")))
	if err != nil {
		return Game{}, fmt.Errorf("bad game id in %q: %w", line, err)
	}

	g := Game{ID: id}
	for _, draw := range strings.Split(body, ";") {
		var c Cubes
		for _, part := range strings.Split(draw, ",") {
			fields := strings.Fields(part)
			if len(fields) != 2 {
				return Game{}, fmt.Errorf("bad draw %q in game %d", part, id)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return Game{}, fmt.Errorf("bad count %q in game %d: %w", fields[0], id, err)
			}
			switch fields[1] {
			case "red":
				c.Red += n
			case "green":
				c.Green += n
			case "blue":
				c.Blue += n
			default:
				return Game{}, fmt.Errorf("unknown colour %q in game %d", fields[1], id)
			}
		}
		g.Draws = append(g.Draws, c)
	}
	return g, nil
}

// ParseGames parses one game per line.
func ParseGames(lines []string) ([]Game, error) {
	games := make([]Game, 0, len(lines))
	for _, line := range lines {
		g, err := ParseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// SumPossibleIDs adds the ids of games possible with bag.
func SumPossibleIDs(games []Game, bag Cubes) int {
	sum := 0
	for _, g := range games {
		if g.Possible(bag) {
			sum += g.ID
		}
	}
	return sum
}

// SumPowers adds the power of each game's minimum set.
func SumPowers(games []Game) int {
	sum := 0
	for _, g := range games {
		sum += g.Minimum().Power()
	}
	return sum
}

func solve(_ context.Context, p *solver.Puzzle) error {
	lines, err := p.Lines()
	if err != nil {
		return err
	}
	games, err := ParseGames(lines)
	if err != nil {
		return err
	}

	p.Printf("Sum of IDs of all possible games (Part I): %d\n", SumPossibleIDs(games, Bag))
	p.Printf("Sum of powers of all games (Part II): %d\n", SumPowers(games))
	return nil
}

// Unit returns the registration for 2023 day 2.
func Unit() *solver.Unit {
	return &solver.Unit{
		Key:    solver.Key{Year: 2023, Day: 2},
		Title:  "Cube Conundrum",
		Solver: solver.SolverFunc(solve),
	}
}
