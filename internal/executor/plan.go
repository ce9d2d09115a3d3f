// Package executor turns parsed commands into ordered input actions.
package executor

import (
	"fmt"
	"time"

	"github.com/frudas24/mousesim/internal/command"
	"github.com/frudas24/mousesim/internal/cursor"
	"github.com/frudas24/mousesim/internal/easing"
	"github.com/frudas24/mousesim/internal/input"
	"github.com/frudas24/mousesim/internal/keys"
)

// Op identifies the kind of action to apply.
type Op string

const (
	// OpMove sets the cursor instantly.
	OpMove Op = "move"
	// OpSmoothMove interpolates the cursor to a target.
	OpSmoothMove Op = "smooth_move"
	// OpButtonDown presses a mouse button.
	OpButtonDown Op = "button_down"
	// OpButtonUp releases a mouse button.
	OpButtonUp Op = "button_up"
	// OpWheel scrolls the vertical wheel.
	OpWheel Op = "wheel"
	// OpKeyDown presses a keyboard key.
	OpKeyDown Op = "key_down"
	// OpKeyUp releases a keyboard key.
	OpKeyUp Op = "key_up"
	// OpSwitchFocus moves focus to a temporary window and back.
	OpSwitchFocus Op = "switch_focus"
	// OpPause waits between events of one command.
	OpPause Op = "pause"
	// OpSleep is the trailing sleep a command asked for.
	OpSleep Op = "sleep"
)

// Action describes a normalized input operation to apply.
type Action struct {
	Op       Op
	Target   cursor.Position
	Duration time.Duration
	Ease     easing.Mode
	Button   input.Button
	Key      keys.Key
	Delta    int
}

// String renders the action for traces.
func (a Action) String() string {
	switch a.Op {
	case OpMove:
		return fmt.Sprintf("move %s", a.Target)
	case OpSmoothMove:
		return fmt.Sprintf("smooth move %s %s %dms", a.Target, a.Ease, a.Duration.Milliseconds())
	case OpButtonDown, OpButtonUp:
		return fmt.Sprintf("%s %s", a.Op, a.Button)
	case OpWheel:
		return fmt.Sprintf("wheel %d", a.Delta)
	case OpKeyDown, OpKeyUp:
		return fmt.Sprintf("%s %s", a.Op, a.Key.Name)
	default:
		return fmt.Sprintf("%s %dms", a.Op, a.Duration.Milliseconds())
	}
}

// Options tune the fixed delays of execution.
type Options struct {
	DoubleClickGap time.Duration
	BackDelay      time.Duration
	WheelDelta     int
}

// DefaultOptions returns the stock delays.
func DefaultOptions() Options {
	return Options{
		DoubleClickGap: 10 * time.Millisecond,
		BackDelay:      50 * time.Millisecond,
		WheelDelta:     input.WheelDelta,
	}
}

// Plan builds the ordered actions for cmd. original is the cursor position
// when the command starts; it fills sentinel axes and is the back target.
func Plan(cmd command.Command, original cursor.Position, opts Options) []Action {
	var out []Action

	switch cmd.Kind() {
	case command.KindMouseButton, command.KindMouseMove, command.KindWheel:
		target := cursor.Resolve(cmd.Target(), original)
		out = append(out, moveTo(cmd, target))

		if b, ok := cmd.Button(); ok {
			out = append(out, pressActions(cmd.Action, opts.DoubleClickGap,
				Action{Op: OpButtonDown, Button: b}, Action{Op: OpButtonUp, Button: b})...)
		}
		if cmd.Kind() == command.KindWheel {
			delta := opts.WheelDelta
			if cmd.Key == command.KeyWheelDown {
				delta = -delta
			}
			out = append(out, Action{Op: OpWheel, Delta: delta})
		}

		if cmd.Mode == command.ModeBack {
			if cmd.Smoothed() {
				out = append(out, Action{Op: OpPause, Duration: opts.BackDelay})
			}
			out = append(out, moveTo(cmd, original))
		}

	case command.KindKeyboard:
		k, _ := keys.Lookup(cmd.Key)
		out = append(out, pressActions(cmd.Action, opts.DoubleClickGap,
			Action{Op: OpKeyDown, Key: k}, Action{Op: OpKeyUp, Key: k})...)

	case command.KindSwitchFocus:
		out = append(out, Action{Op: OpSwitchFocus, Duration: max(cmd.SmoothTime, 0)})
	}

	if cmd.Sleep > 0 {
		out = append(out, Action{Op: OpSleep, Duration: cmd.Sleep})
	}
	return out
}

// moveTo returns an instant or smooth move depending on the command.
func moveTo(cmd command.Command, target cursor.Position) Action {
	if cmd.Smoothed() {
		return Action{Op: OpSmoothMove, Target: target, Duration: cmd.SmoothTime, Ease: cmd.Easing()}
	}
	return Action{Op: OpMove, Target: target}
}

// pressActions expands a press action into down/up events.
func pressActions(act command.Action, gap time.Duration, down, up Action) []Action {
	switch act {
	case command.ActClick:
		return []Action{down, up}
	case command.ActDoubleClick:
		return []Action{down, up, {Op: OpPause, Duration: gap}, down, up}
	case command.ActKeyDown:
		return []Action{down}
	case command.ActKeyUp:
		return []Action{up}
	default:
		return nil
	}
}
