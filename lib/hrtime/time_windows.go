//go:build windows
// +build windows

package hrtime

import "time"

var appStartTime time.Time

func init() {
	appStartTime = time.Now()
}

// MonotonicElapsed falls back to the Go runtime monotonic reading on
// windows.
func MonotonicElapsed() time.Duration {
	return time.Since(appStartTime)
}

func Since(beginTime time.Time) time.Duration {
	return time.Since(beginTime)
}
