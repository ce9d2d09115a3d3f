//go:build !windows

// Package input injects OS-level mouse and keyboard events.
package input

import (
	"time"

	"github.com/frudas24/mousesim/internal/keys"
)

// NoopInjector is a placeholder injector for builds without a native backend.
type NoopInjector struct{}

// NewInjector returns an injector whose every event reports ErrUnsupported.
func NewInjector() (Injector, error) {
	return &NoopInjector{}, nil
}

// CursorPos returns ErrUnsupported.
func (n *NoopInjector) CursorPos() (int, int, error) {
	return 0, 0, ErrUnsupported
}

// MoveAbs returns ErrUnsupported.
func (n *NoopInjector) MoveAbs(x, y int) error {
	_ = x
	_ = y
	return ErrUnsupported
}

// ButtonDown returns ErrUnsupported.
func (n *NoopInjector) ButtonDown(b Button) error {
	_ = b
	return ErrUnsupported
}

// ButtonUp returns ErrUnsupported.
func (n *NoopInjector) ButtonUp(b Button) error {
	_ = b
	return ErrUnsupported
}

// Wheel returns ErrUnsupported.
func (n *NoopInjector) Wheel(delta int) error {
	_ = delta
	return ErrUnsupported
}

// KeyDown returns ErrUnsupported.
func (n *NoopInjector) KeyDown(k keys.Key) error {
	_ = k
	return ErrUnsupported
}

// KeyUp returns ErrUnsupported.
func (n *NoopInjector) KeyUp(k keys.Key) error {
	_ = k
	return ErrUnsupported
}

// SwitchFocus returns ErrUnsupported.
func (n *NoopInjector) SwitchFocus(hold time.Duration) error {
	_ = hold
	return ErrUnsupported
}
