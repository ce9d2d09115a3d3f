// Package motion moves the tracked cursor along a timed, eased path.
package motion

import (
	"errors"
	"time"

	"github.com/frudas24/mousesim/internal/cursor"
	"github.com/frudas24/mousesim/internal/easing"
)

const (
	// longMoveThreshold switches to the coarser frame interval above it.
	longMoveThreshold = 500 * time.Millisecond
	// frameLong is the 60 fps interval used for long moves.
	frameLong = time.Duration(1000/60) * time.Millisecond
	// frameShort is the 120 fps interval used for short moves.
	frameShort = time.Duration(1000/120) * time.Millisecond
)

// Request describes one smooth move.
type Request struct {
	Target   cursor.Position
	Duration time.Duration
	Mode     easing.Mode
}

// Sample is one intermediate position emitted during a move.
type Sample struct {
	Elapsed  time.Duration
	Progress float64
	Position cursor.Position
}

// Result summarizes a finished move.
type Result struct {
	Start   cursor.Position
	Target  cursor.Position
	Samples int
	Skipped bool
	Err     error
}

// Engine drives timed interpolation through a cursor tracker.
type Engine struct {
	tracker  *cursor.Tracker
	clock    Clock
	observer func(Sample)
}

// NewEngine returns an engine bound to tracker and clock.
func NewEngine(tracker *cursor.Tracker, clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Engine{tracker: tracker, clock: clock}
}

// SetObserver registers fn to receive every intermediate sample.
func (e *Engine) SetObserver(fn func(Sample)) {
	e.observer = fn
}

// FrameInterval returns the sleep between samples for a move of duration d.
func FrameInterval(d time.Duration) time.Duration {
	if d > longMoveThreshold {
		return frameLong
	}
	return frameShort
}

// Move moves the cursor from its current position to req.Target over
// req.Duration and always finishes with an exact set to the target.
// Set failures are collected in Result.Err and never stop the motion.
func (e *Engine) Move(req Request) Result {
	start, err := e.tracker.Get()
	if err != nil {
		return Result{Err: err, Skipped: true}
	}
	target := cursor.Resolve(req.Target, start)
	res := Result{Start: start, Target: target}
	if start == target {
		res.Skipped = true
		return res
	}

	duration := req.Duration
	if duration < 0 {
		duration = 0
	}
	frame := FrameInterval(duration)
	began := e.clock.Now()
	deadline := began.Add(duration)

	var errs []error
	for {
		now := e.clock.Now()
		if !now.Before(deadline) {
			break
		}
		elapsed := now.Sub(began)
		t := float64(elapsed) / float64(duration)
		if t > 1 {
			t = 1
		}
		eased := easing.Apply(t, req.Mode)
		p := cursor.Position{
			X: start.X + int(float64(target.X-start.X)*eased),
			Y: start.Y + int(float64(target.Y-start.Y)*eased),
		}
		if err := e.tracker.Set(p); err != nil {
			errs = append(errs, err)
		}
		res.Samples++
		if e.observer != nil {
			e.observer(Sample{Elapsed: elapsed, Progress: eased, Position: p})
		}
		e.clock.Sleep(frame)
	}

	if err := e.tracker.Set(target); err != nil {
		errs = append(errs, err)
	}
	res.Err = errors.Join(errs...)
	return res
}
