// Package motion moves the tracked cursor along a timed, eased path.
package motion

import "time"

// Clock provides monotonic timestamps and a blocking sleep.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the process clock. time.Now carries a monotonic reading, so
// elapsed times survive wall-clock adjustments.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for d.
func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
