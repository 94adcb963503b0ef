package solver

import "errors"

// Solver registry errors.
var (
	// ErrSolverNotFound is returned when no unit is registered for a key.
	ErrSolverNotFound = errors.New("solver not found")

	// ErrSolverNil is returned when a unit has no Solver.
	ErrSolverNil = errors.New("solver cannot be nil")

	// ErrInvalidKey is returned when a unit's day is outside [1, 24] or its year is not positive.
	ErrInvalidKey = errors.New("invalid solver key")

	// ErrAlreadyRegistered is returned when registering a duplicate key.
	ErrAlreadyRegistered = errors.New("solver already registered")
)
