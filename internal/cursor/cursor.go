// Package cursor tracks the simulator's notion of the pointer position.
package cursor

import "fmt"

// Unset marks an axis that should keep its current value.
const Unset = -1

// Position is a point in physical screen pixels.
type Position struct {
	X int
	Y int
}

// String formats the position as (x, y).
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Backend queries and moves the real OS cursor.
type Backend interface {
	CursorPos() (x, y int, err error)
	MoveAbs(x, y int) error
}

// Tracker owns the last known position for one execution session.
//
// In consistent mode reads return the tracked value instead of the live OS
// position, so chained commands are not perturbed when the real mouse is moved
// by someone else mid-sequence. Not safe for concurrent use.
type Tracker struct {
	backend    Backend
	consistent bool
	last       Position
}

// NewTracker returns a tracker bound to backend.
func NewTracker(backend Backend, consistent bool) *Tracker {
	return &Tracker{backend: backend, consistent: consistent}
}

// Initialize stores the live OS position as the tracked position.
func (t *Tracker) Initialize() error {
	x, y, err := t.backend.CursorPos()
	if err != nil {
		return fmt.Errorf("query cursor position: %w", err)
	}
	t.last = Position{X: x, Y: y}
	return nil
}

// Consistent reports whether tracked reads are enabled.
func (t *Tracker) Consistent() bool {
	return t.consistent
}

// Get returns the tracked position in consistent mode, else the live OS position.
func (t *Tracker) Get() (Position, error) {
	if t.consistent {
		return t.last, nil
	}
	x, y, err := t.backend.CursorPos()
	if err != nil {
		return Position{}, fmt.Errorf("query cursor position: %w", err)
	}
	return Position{X: x, Y: y}, nil
}

// Set moves the OS cursor to p. In consistent mode p becomes the tracked
// position even when the OS call fails.
func (t *Tracker) Set(p Position) error {
	if t.consistent {
		t.last = p
	}
	if err := t.backend.MoveAbs(p.X, p.Y); err != nil {
		return fmt.Errorf("set cursor position %s: %w", p, err)
	}
	return nil
}

// Resolve replaces Unset axes of p with the matching axes of from.
func Resolve(p, from Position) Position {
	if p.X == Unset {
		p.X = from.X
	}
	if p.Y == Unset {
		p.Y = from.Y
	}
	return p
}
