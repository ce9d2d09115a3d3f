//go:build !windows

package monitor

import "errors"

// ErrUnsupported reports that monitor enumeration needs Windows.
var ErrUnsupported = errors.New("monitor enumeration is only supported on Windows")

// ListMonitors returns an error on non-Windows platforms.
func ListMonitors() ([]Monitor, error) {
	return nil, ErrUnsupported
}

// EnableDPIAwareness is a no-op; other platforms report physical pixels already.
func EnableDPIAwareness() Level {
	return LevelUnaware
}

// ScaleAt returns 1.0; callers with a platform scale source override it.
func ScaleAt(x, y int) float64 {
	return 1
}
