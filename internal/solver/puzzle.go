package solver

import (
	"fmt"
	"io"

	"aoc/internal/input"
)

// Puzzle is what a unit receives when it runs: which puzzle it is solving,
// where to print, and where its input lives.
type Puzzle struct {
	Key   Key
	Out   io.Writer
	Input *input.Store
}

// Lines returns the puzzle's input, one string per line.
func (p *Puzzle) Lines() ([]string, error) {
	return p.Input.Lines(p.Key.Year, p.Key.Day)
}

// Printf writes formatted output for the puzzle.
func (p *Puzzle) Printf(format string, args ...any) {
	fmt.Fprintf(p.Out, format, args...)
}

// Println writes a line of output for the puzzle.
func (p *Puzzle) Println(args ...any) {
	fmt.Fprintln(p.Out, args...)
}
