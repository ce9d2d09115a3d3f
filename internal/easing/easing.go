// Package easing maps normalized time to normalized motion progress.
package easing

import "strings"

// Mode selects the curve applied to motion progress.
type Mode string

const (
	// Linear maps progress one to one.
	Linear Mode = "linear"
	// Ease is a symmetric cubic ease-in/ease-out curve.
	Ease Mode = "ease"
)

// ParseMode maps a name to a Mode. Unknown names fall back to Linear.
func ParseMode(name string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(name))) {
	case Ease:
		return Ease
	default:
		return Linear
	}
}

// Apply returns eased progress for t, clamped to [0..1].
func Apply(t float64, mode Mode) float64 {
	t = clamp01(t)
	switch mode {
	case Ease:
		return cubic(t)
	default:
		return t
	}
}

// cubic is 4t^3 on the first half and its point reflection on the second.
func cubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := t - 1
	return 1 + 4*f*f*f
}

// clamp01 bounds a float to the [0..1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
