// Package monitor describes display geometry, DPI scale and awareness.
package monitor

import "fmt"

// BaseDPI is the DPI that maps to a scale of 1.0.
const BaseDPI = 96

// Monitor describes a display, its bounds in physical pixels and its scale.
type Monitor struct {
	Index   int
	X       int
	Y       int
	W       int
	H       int
	Primary bool
	Scale   float64
}

// Contains reports whether the physical point lies inside the monitor.
func (m Monitor) Contains(x, y int) bool {
	return x >= m.X && x < m.X+m.W && y >= m.Y && y < m.Y+m.H
}

// String renders bounds and scale for verbose output.
func (m Monitor) String() string {
	primary := ""
	if m.Primary {
		primary = " primary"
	}
	return fmt.Sprintf("#%d %dx%d@(%d,%d) scale=%.2f%s", m.Index, m.W, m.H, m.X, m.Y, m.Scale, primary)
}

// FindContaining returns the monitor holding the point.
func FindContaining(list []Monitor, x, y int) (Monitor, bool) {
	for _, m := range list {
		if m.Contains(x, y) {
			return m, true
		}
	}
	return Monitor{}, false
}

// ScaleFromDPI converts a DPI reading to a scale factor; zero reads as 1.0.
func ScaleFromDPI(dpi int) float64 {
	if dpi <= 0 {
		return 1
	}
	return float64(dpi) / BaseDPI
}

// Level is the DPI awareness the process ended up with.
type Level int

const (
	// LevelUnaware means no awareness call succeeded.
	LevelUnaware Level = iota
	// LevelLegacy is SetProcessDPIAware (system aware, pre-8.1).
	LevelLegacy
	// LevelSystem is PROCESS_SYSTEM_DPI_AWARE.
	LevelSystem
	// LevelPerMonitor is PROCESS_PER_MONITOR_DPI_AWARE.
	LevelPerMonitor
	// LevelPerMonitorV2 is DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2.
	LevelPerMonitorV2
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelLegacy:
		return "legacy"
	case LevelSystem:
		return "system"
	case LevelPerMonitor:
		return "per_monitor"
	case LevelPerMonitorV2:
		return "per_monitor_v2"
	default:
		return "unaware"
	}
}
