// Package command parses simulator command lines and batch files.
package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/frudas24/mousesim/internal/cursor"
	"github.com/frudas24/mousesim/internal/easing"
	"github.com/frudas24/mousesim/internal/input"
	"github.com/frudas24/mousesim/internal/keys"
)

// Input names that are not keyboard keys.
const (
	KeyNone        = "none"
	KeyMouseLeft   = "mouse_left"
	KeyMouseRight  = "mouse_right"
	KeyMouseMiddle = "mouse_middle"
	KeyMouseMove   = "mouse_move"
	KeyWheelUp     = "wheel_up"
	KeyWheelDown   = "wheel_down"
	KeySwitchFocus = "switch_focus"
)

// Action is what to do with the selected input.
type Action string

const (
	// ActNone performs no button or key event.
	ActNone Action = "none"
	// ActClick presses and releases.
	ActClick Action = "click"
	// ActDoubleClick clicks twice with a short gap.
	ActDoubleClick Action = "doubleclick"
	// ActKeyDown only presses.
	ActKeyDown Action = "keydown"
	// ActKeyUp only releases.
	ActKeyUp Action = "keyup"
)

// Mode controls what happens after the action.
type Mode string

const (
	// ModeNone leaves the cursor at the target.
	ModeNone Mode = "none"
	// ModeBack returns the cursor to where it started.
	ModeBack Mode = "back"
)

// SmoothNone disables smooth movement.
const SmoothNone = "none"

// Kind classifies the input a command drives.
type Kind int

const (
	// KindNone drives nothing; the command may still sleep.
	KindNone Kind = iota
	// KindMouseButton moves and then presses a mouse button.
	KindMouseButton
	// KindMouseMove only moves the cursor.
	KindMouseMove
	// KindWheel moves and then scrolls.
	KindWheel
	// KindKeyboard presses a keyboard key.
	KindKeyboard
	// KindSwitchFocus briefly steals keyboard focus.
	KindSwitchFocus
)

// Command is one validated simulator invocation.
type Command struct {
	Key        string
	Action     Action
	X          int
	Y          int
	Mode       Mode
	Smooth     string
	SmoothTime time.Duration
	Sleep      time.Duration
	File       string
	Listen     string
	Consistent bool
	Quiet      bool
	Verbose    bool
	Help       bool
}

// Defaults holds values a command starts from before flags apply.
type Defaults struct {
	SmoothTime time.Duration
}

// DefaultSmoothTime is the smooth move duration when none is configured.
const DefaultSmoothTime = 200 * time.Millisecond

// New returns a command holding only defaults.
func New(d Defaults) Command {
	smooth := d.SmoothTime
	if smooth <= 0 {
		smooth = DefaultSmoothTime
	}
	return Command{
		Key:        KeyNone,
		Action:     ActNone,
		X:          cursor.Unset,
		Y:          cursor.Unset,
		Mode:       ModeNone,
		Smooth:     SmoothNone,
		SmoothTime: smooth,
	}
}

// Kind returns the input class of the command key.
func (c Command) Kind() Kind {
	switch c.Key {
	case KeyMouseLeft, KeyMouseRight, KeyMouseMiddle:
		return KindMouseButton
	case KeyMouseMove:
		return KindMouseMove
	case KeyWheelUp, KeyWheelDown:
		return KindWheel
	case KeySwitchFocus:
		return KindSwitchFocus
	}
	if _, ok := keys.Lookup(c.Key); ok {
		return KindKeyboard
	}
	return KindNone
}

// IsMouse reports whether the command positions the cursor.
func (c Command) IsMouse() bool {
	switch c.Kind() {
	case KindMouseButton, KindMouseMove, KindWheel:
		return true
	default:
		return false
	}
}

// Button returns the mouse button for mouse_* keys.
func (c Command) Button() (input.Button, bool) {
	switch c.Key {
	case KeyMouseLeft:
		return input.ButtonLeft, true
	case KeyMouseRight:
		return input.ButtonRight, true
	case KeyMouseMiddle:
		return input.ButtonMiddle, true
	default:
		return 0, false
	}
}

// Target returns the requested position; axes may be cursor.Unset.
func (c Command) Target() cursor.Position {
	return cursor.Position{X: c.X, Y: c.Y}
}

// Smoothed reports whether movement is interpolated.
func (c Command) Smoothed() bool {
	return c.Smooth != SmoothNone
}

// Easing returns the curve for smooth movement.
func (c Command) Easing() easing.Mode {
	return easing.ParseMode(c.Smooth)
}

// Runnable reports whether the command has anything to execute.
func (c Command) Runnable() bool {
	return !c.Help && (c.Sleep > 0 || c.Key != KeyNone || c.File != "")
}

// String renders the command the way verbose traces show it.
func (c Command) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%s, %s) @ (%d, %d)", c.Key, c.Action, c.X, c.Y)
	fmt.Fprintf(&b, " mode=%s sleep=%dms smooth=(%s, %dms)", c.Mode, c.Sleep.Milliseconds(), c.Smooth, c.SmoothTime.Milliseconds())
	return b.String()
}

// validKey reports whether name is a known input name.
func validKey(name string) bool {
	switch name {
	case KeyNone, KeyMouseLeft, KeyMouseRight, KeyMouseMiddle, KeyMouseMove,
		KeyWheelUp, KeyWheelDown, KeySwitchFocus:
		return true
	}
	_, ok := keys.Lookup(name)
	return ok
}
