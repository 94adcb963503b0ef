// Package puzzletest runs puzzle units against inline inputs in tests.
package puzzletest

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"aoc/internal/config"
	"aoc/internal/input"
	"aoc/internal/solver"
)

// Solve writes in as the input file for unit, runs it once and returns what
// it printed. The unit must not fail.
func Solve(t *testing.T, unit *solver.Unit, in string) string {
	t.Helper()
	out, err := TrySolve(t, unit, in)
	require.NoError(t, err)
	return out
}

// TrySolve is Solve without the error check.
func TrySolve(t *testing.T, unit *solver.Unit, in string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, input.FileName(unit.Key.Year, unit.Key.Day))
	require.NoError(t, os.WriteFile(path, []byte(in), 0o644))

	var out bytes.Buffer
	p := &solver.Puzzle{
		Key:   unit.Key,
		Out:   &out,
		Input: &input.Store{Dir: dir, Years: config.DefaultConfig().Years},
	}
	err := unit.Solver.Solve(context.Background(), p)
	return out.String(), err
}
