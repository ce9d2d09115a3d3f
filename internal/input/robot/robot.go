//go:build !windows && cgo

// Package robot injects input through robotgo on macOS and X11.
package robot

import (
	"fmt"
	"time"

	"github.com/go-vgo/robotgo"

	"github.com/frudas24/mousesim/internal/input"
	"github.com/frudas24/mousesim/internal/keys"
)

// Injector implements input.Injector with robotgo.
type Injector struct{}

// Ensure Injector implements the interface.
var _ input.Injector = (*Injector)(nil)

// New returns a robotgo-backed injector.
func New() *Injector {
	return &Injector{}
}

// CursorPos returns the live cursor position.
func (r *Injector) CursorPos() (int, int, error) {
	x, y := robotgo.Location()
	return x, y, nil
}

// MoveAbs moves the cursor to an absolute screen coordinate.
func (r *Injector) MoveAbs(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

// ButtonDown presses a mouse button.
func (r *Injector) ButtonDown(b input.Button) error {
	name, err := robotButton(b)
	if err != nil {
		return err
	}
	return robotgo.Toggle(name)
}

// ButtonUp releases a mouse button.
func (r *Injector) ButtonUp(b input.Button) error {
	name, err := robotButton(b)
	if err != nil {
		return err
	}
	return robotgo.Toggle(name, "up")
}

// Wheel scrolls vertically by delta, in input.WheelDelta units per notch.
func (r *Injector) Wheel(delta int) error {
	notches := delta / input.WheelDelta
	if notches == 0 && delta != 0 {
		notches = 1
		if delta < 0 {
			notches = -1
		}
	}
	robotgo.Scroll(0, notches)
	return nil
}

// KeyDown presses a keyboard key.
func (r *Injector) KeyDown(k keys.Key) error {
	return robotgo.KeyToggle(k.Robot, "down")
}

// KeyUp releases a keyboard key.
func (r *Injector) KeyUp(k keys.Key) error {
	return robotgo.KeyToggle(k.Robot, "up")
}

// SwitchFocus returns input.ErrUnsupported.
func (r *Injector) SwitchFocus(time.Duration) error {
	return input.ErrUnsupported
}

// robotButton returns the robotgo name for b.
func robotButton(b input.Button) (string, error) {
	switch b {
	case input.ButtonLeft:
		return "left", nil
	case input.ButtonRight:
		return "right", nil
	case input.ButtonMiddle:
		return "center", nil
	default:
		return "", fmt.Errorf("unknown mouse button %d", int(b))
	}
}

// Scale returns the display scale robotgo reports for the main display.
func Scale() float64 {
	if s := robotgo.ScaleF(); s > 0 {
		return s
	}
	return 1
}
