// Package runner resolves a (year, day) selector to a registered puzzle unit,
// invokes it once and reports how long it took.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"aoc/internal/input"
	"aoc/internal/logging"
	"aoc/internal/solver"
)

// SolverError wraps a failure returned by a puzzle unit.
type SolverError struct {
	Identifier string
	Err        error
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("solver %s failed: %v", e.Identifier, e.Err)
}

func (e *SolverError) Unwrap() error { return e.Err }

// Options configures a Runner. Zero fields get defaults in New.
type Options struct {
	Registry  *solver.Registry
	Namespace string
	Input     *input.Store
	Out       io.Writer
	Logger    *zap.Logger
	Clock     Clock
}

// Runner dispatches selectors to puzzle units.
type Runner struct {
	registry  *solver.Registry
	namespace string
	input     *input.Store
	out       io.Writer
	log       *zap.Logger
	clock     Clock
}

// New creates a Runner. Registry and Input are required.
func New(opts Options) *Runner {
	r := &Runner{
		registry:  opts.Registry,
		namespace: opts.Namespace,
		input:     opts.Input,
		out:       opts.Out,
		log:       opts.Logger,
		clock:     opts.Clock,
	}
	if r.namespace == "" {
		r.namespace = "aoc"
	}
	if r.out == nil {
		r.out = os.Stdout
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	if r.clock == nil {
		r.clock = SystemClock{}
	}
	r.log = logging.Named(r.log, logging.CategoryRunner)
	return r
}

// Run resolves sel and invokes its unit exactly once.
//
// A selector with no registered unit is a user error, not a failure: Run
// prints a diagnostic naming the identifier and returns (nil, nil). An error
// returned by the unit comes back as a *SolverError and no report is printed.
// Panics inside the unit are not recovered.
func (r *Runner) Run(ctx context.Context, sel Selector) (*ExecutionReport, error) {
	id := sel.Identifier(r.namespace)
	log := r.log.With(zap.String("solver", id))

	timer := logging.StartTimer(log, "resolve")
	unit, err := r.registry.Get(sel.Key())
	timer.Stop()
	if errors.Is(err, solver.ErrSolverNotFound) {
		log.Debug("no solver registered")
		_, werr := fmt.Fprintf(r.out, "Cannot find solver for Year %d Day %d: module '%s' does not exist.\n", sel.Year, sel.Day, id)
		return nil, werr
	}
	if err != nil {
		return nil, err
	}

	puzzle := &solver.Puzzle{Key: sel.Key(), Out: r.out, Input: r.input}

	log.Debug("invoking solver", zap.String("title", unit.Title))
	wallStart := r.clock.Now()
	cpuStart := r.cpuTime(log)

	solveErr := unit.Solver.Solve(ctx, puzzle)

	cpuEnd := r.cpuTime(log)
	wallEnd := r.clock.Now()

	if solveErr != nil {
		return nil, &SolverError{Identifier: id, Err: solveErr}
	}

	report := newReport(cpuStart, cpuEnd, wallStart, wallEnd)
	log.Debug("solver finished",
		zap.Float64("cpu_ms", report.CPUTimeMs),
		zap.Float64("wall_ms", report.WallTimeMs))

	if err := report.Write(r.out); err != nil {
		return &report, fmt.Errorf("failed to write report: %w", err)
	}
	return &report, nil
}

// cpuTime reads the process CPU clock. A platform without one reports zero
// CPU time rather than failing the run.
func (r *Runner) cpuTime(log *zap.Logger) time.Duration {
	d, err := r.clock.CPUTime()
	if err != nil {
		log.Warn("cpu time unavailable", zap.Error(err))
		return 0
	}
	return d
}
