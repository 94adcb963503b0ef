//go:build !unix && !windows

package runner

import "time"

func processCPUTime() (time.Duration, error) {
	return 0, ErrCPUTimeUnsupported
}
