// Package testutil provides fakes shared by package tests.
package testutil

import (
	"time"

	"github.com/frudas24/mousesim/internal/input"
	"github.com/frudas24/mousesim/internal/keys"
)

// Call records a single injected action.
type Call struct {
	Name   string
	X      int
	Y      int
	Button input.Button
	Key    string
	Delta  int
	Hold   time.Duration
}

// FakeInjector implements input.Injector and records calls for tests.
// CursorPos does not count as a call.
type FakeInjector struct {
	Calls []Call
	// X and Y are the simulated OS cursor position.
	X int
	Y int
	// MoveErr, when set, is returned by MoveAbs; the cursor still moves.
	MoveErr error
	// EventErr, when set, is returned by button, wheel, and key events.
	EventErr error
	// Queries counts CursorPos calls.
	Queries int
}

// Ensure FakeInjector implements the interface.
var _ input.Injector = (*FakeInjector)(nil)

// CursorPos returns the simulated OS cursor position.
func (f *FakeInjector) CursorPos() (int, int, error) {
	f.Queries++
	return f.X, f.Y, nil
}

// MoveAbs records an absolute move.
func (f *FakeInjector) MoveAbs(x, y int) error {
	f.Calls = append(f.Calls, Call{Name: "MoveAbs", X: x, Y: y})
	f.X, f.Y = x, y
	return f.MoveErr
}

// ButtonDown records a button press.
func (f *FakeInjector) ButtonDown(b input.Button) error {
	f.Calls = append(f.Calls, Call{Name: "ButtonDown", Button: b})
	return f.EventErr
}

// ButtonUp records a button release.
func (f *FakeInjector) ButtonUp(b input.Button) error {
	f.Calls = append(f.Calls, Call{Name: "ButtonUp", Button: b})
	return f.EventErr
}

// Wheel records a wheel delta.
func (f *FakeInjector) Wheel(delta int) error {
	f.Calls = append(f.Calls, Call{Name: "Wheel", Delta: delta})
	return f.EventErr
}

// KeyDown records a key press.
func (f *FakeInjector) KeyDown(k keys.Key) error {
	f.Calls = append(f.Calls, Call{Name: "KeyDown", Key: k.Name})
	return f.EventErr
}

// KeyUp records a key release.
func (f *FakeInjector) KeyUp(k keys.Key) error {
	f.Calls = append(f.Calls, Call{Name: "KeyUp", Key: k.Name})
	return f.EventErr
}

// SwitchFocus records a focus switch.
func (f *FakeInjector) SwitchFocus(hold time.Duration) error {
	f.Calls = append(f.Calls, Call{Name: "SwitchFocus", Hold: hold})
	return f.EventErr
}

// Names returns the recorded call names in order.
func (f *FakeInjector) Names() []string {
	out := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		out[i] = c.Name
	}
	return out
}

// Moves returns the recorded MoveAbs calls.
func (f *FakeInjector) Moves() []Call {
	var out []Call
	for _, c := range f.Calls {
		if c.Name == "MoveAbs" {
			out = append(out, c)
		}
	}
	return out
}
