// Package solver defines the contract between the runner and puzzle units,
// and the registry that maps a (year, day) pair to its unit.
//
// Units are registered explicitly at start-up by their year package:
//
//	year2023.RegisterAll(registry) → Registry.Lookup(key) → Unit.Solver.Solve()
package solver

import (
	"context"
	"fmt"

	"aoc/internal/input"
)

// Key identifies a puzzle by year and day.
type Key struct {
	Year int
	Day  int
}

func (k Key) String() string {
	return fmt.Sprintf("%d/%02d", k.Year, k.Day)
}

// Less orders keys by year, then day.
func (k Key) Less(o Key) bool {
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	return k.Day < o.Day
}

// Solver is the entry point every puzzle unit exposes. Solve does all the
// puzzle work (reading input, computing, printing answers to p.Out) and
// returns an error only for defects or missing input.
type Solver interface {
	Solve(ctx context.Context, p *Puzzle) error
}

// SolverFunc adapts a plain function to the Solver interface.
type SolverFunc func(ctx context.Context, p *Puzzle) error

// Solve calls f(ctx, p).
func (f SolverFunc) Solve(ctx context.Context, p *Puzzle) error {
	return f(ctx, p)
}

// Unit is a registered puzzle solution.
type Unit struct {
	// Key is the (year, day) the unit solves.
	Key Key

	// Title is the puzzle's name, shown by `aoc list`.
	Title string

	// Solver runs the puzzle.
	Solver Solver
}

// Validate checks if the unit definition is valid.
func (u *Unit) Validate() error {
	if u.Solver == nil {
		return ErrSolverNil
	}
	if u.Key.Year <= 0 || u.Key.Day < input.MinDay || u.Key.Day > input.MaxDay {
		return fmt.Errorf("%w: %s", ErrInvalidKey, u.Key)
	}
	return nil
}
