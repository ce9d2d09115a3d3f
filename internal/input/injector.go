// Package input injects OS-level mouse and keyboard events.
package input

import (
	"errors"
	"time"

	"github.com/frudas24/mousesim/internal/keys"
)

// ErrUnsupported indicates the operation is not available on this platform.
var ErrUnsupported = errors.New("input injection is not supported on this platform")

// WheelDelta is one wheel notch.
const WheelDelta = 120

// Button identifies a mouse button.
type Button int

const (
	// ButtonLeft is the primary button.
	ButtonLeft Button = iota + 1
	// ButtonRight is the secondary button.
	ButtonRight
	// ButtonMiddle is the wheel button.
	ButtonMiddle
)

// String returns the lowercase button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// Injector defines the input operations used by the executor.
type Injector interface {
	CursorPos() (x, y int, err error)
	MoveAbs(x, y int) error
	ButtonDown(b Button) error
	ButtonUp(b Button) error
	Wheel(delta int) error
	KeyDown(k keys.Key) error
	KeyUp(k keys.Key) error
	SwitchFocus(hold time.Duration) error
}
