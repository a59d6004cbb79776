//go:build !windows
// +build !windows

package hrtime

import (
	"time"

	"github.com/samber/lo"
	"golang.org/x/sys/unix"
)

var (
	appStartTime         time.Time
	unixMonotonicStartTs int64
)

func init() {
	appStartTime = time.Now()

	ts := unix.Timespec{}
	lo.Must0(unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts))
	unixMonotonicStartTs = ts.Nano()
}

// MonotonicElapsed is the time passed since process start, read from
// the OS monotonic clock so wall-clock adjustments never skew it.
func MonotonicElapsed() time.Duration {
	ts := unix.Timespec{}
	lo.Must0(unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts))
	return time.Duration(ts.Nano() - unixMonotonicStartTs)
}

func Since(beginTime time.Time) time.Duration {
	return time.Since(beginTime)
}
