package runner

import (
	"fmt"
	"io"
	"strconv"
	"time"
)

// ExecutionReport holds the elapsed times of one solver invocation.
type ExecutionReport struct {
	CPUTimeMs  float64
	WallTimeMs float64
}

func newReport(cpuStart, cpuEnd time.Duration, wallStart, wallEnd time.Time) ExecutionReport {
	return ExecutionReport{
		CPUTimeMs:  millis(cpuEnd - cpuStart),
		WallTimeMs: millis(wallEnd.Sub(wallStart)),
	}
}

func millis(d time.Duration) float64 {
	return d.Seconds() * 1000
}

// formatMillis prints v in plain decimal with the fewest digits that
// round-trip.
func formatMillis(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Write prints the report: a blank line, then the CPU and wall times.
func (r ExecutionReport) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "\nExecution time (CPU): %s ms\nExecution time (Total): %s ms\n",
		formatMillis(r.CPUTimeMs), formatMillis(r.WallTimeMs))
	return err
}
