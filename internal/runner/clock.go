package runner

import (
	"errors"
	"time"
)

// ErrCPUTimeUnsupported is returned on platforms without a process CPU clock.
var ErrCPUTimeUnsupported = errors.New("process CPU time not supported on this platform")

// Clock supplies the two timestamps the runner takes around a solver call.
type Clock interface {
	// Now returns the wall-clock time.
	Now() time.Time

	// CPUTime returns the user+system CPU time consumed by the process so far.
	CPUTime() (time.Duration, error)
}

// SystemClock reads the real wall clock and the process CPU counters.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) CPUTime() (time.Duration, error) { return processCPUTime() }
