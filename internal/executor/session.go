package executor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/frudas24/mousesim/internal/command"
	"github.com/frudas24/mousesim/internal/cursor"
	"github.com/frudas24/mousesim/internal/input"
	"github.com/frudas24/mousesim/internal/logging"
	"github.com/frudas24/mousesim/internal/motion"
)

// Session executes commands against one injector and cursor tracker.
// It is not safe for concurrent use.
type Session struct {
	injector input.Injector
	tracker  *cursor.Tracker
	engine   *motion.Engine
	clock    motion.Clock
	logger   *slog.Logger
	opts     Options
}

// NewSession wires an executor. A nil clock uses the system clock and a nil
// logger discards output.
func NewSession(injector input.Injector, tracker *cursor.Tracker, clock motion.Clock, logger *slog.Logger, opts Options) *Session {
	if clock == nil {
		clock = motion.SystemClock{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	if opts.WheelDelta <= 0 {
		opts.WheelDelta = input.WheelDelta
	}
	return &Session{
		injector: injector,
		tracker:  tracker,
		engine:   motion.NewEngine(tracker, clock),
		clock:    clock,
		logger:   logger,
		opts:     opts,
	}
}

// Run executes commands strictly in order. A failing command does not stop
// the ones after it; all failures are returned joined.
func (s *Session) Run(cmds []command.Command) error {
	var errs []error
	for i, cmd := range cmds {
		if err := s.Execute(cmd); err != nil {
			errs = append(errs, fmt.Errorf("command %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

// Execute applies one command. Event failures are logged and joined; the
// remaining actions still run.
func (s *Session) Execute(cmd command.Command) error {
	s.logger.Debug("execute", "command", cmd.String())

	original, err := s.tracker.Get()
	if err != nil {
		if cmd.IsMouse() {
			return fmt.Errorf("read cursor position: %w", err)
		}
		original = cursor.Position{}
	}
	if cmd.IsMouse() {
		s.logger.Debug("original position", "pos", original.String())
	}

	var errs []error
	for _, action := range Plan(cmd, original, s.opts) {
		if err := s.apply(action); err != nil {
			s.logger.Warn("action failed", "action", action.String(), "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", action.Op, err))
		}
	}
	return errors.Join(errs...)
}

// apply executes a single action.
func (s *Session) apply(action Action) error {
	switch action.Op {
	case OpMove:
		s.logger.Debug("move", "to", action.Target.String())
		return s.tracker.Set(action.Target)
	case OpSmoothMove:
		res := s.engine.Move(motion.Request{Target: action.Target, Duration: action.Duration, Mode: action.Ease})
		s.logger.Debug("smooth move", "from", res.Start.String(), "to", res.Target.String(),
			"mode", string(action.Ease), "ms", action.Duration.Milliseconds(), "samples", res.Samples, "skipped", res.Skipped)
		return res.Err
	case OpButtonDown:
		s.logger.Debug("mouse button", "button", action.Button.String(), "state", "down")
		return s.injector.ButtonDown(action.Button)
	case OpButtonUp:
		s.logger.Debug("mouse button", "button", action.Button.String(), "state", "up")
		return s.injector.ButtonUp(action.Button)
	case OpWheel:
		s.logger.Debug("mouse wheel", "delta", action.Delta)
		return s.injector.Wheel(action.Delta)
	case OpKeyDown:
		s.logger.Debug("key", "key", action.Key.Name, "state", "down")
		return s.injector.KeyDown(action.Key)
	case OpKeyUp:
		s.logger.Debug("key", "key", action.Key.Name, "state", "up")
		return s.injector.KeyUp(action.Key)
	case OpSwitchFocus:
		s.logger.Debug("switch focus", "hold_ms", action.Duration.Milliseconds())
		return s.injector.SwitchFocus(action.Duration)
	case OpPause:
		s.clock.Sleep(action.Duration)
		return nil
	case OpSleep:
		s.logger.Debug("sleep", "ms", action.Duration.Milliseconds())
		s.clock.Sleep(action.Duration)
		return nil
	default:
		return fmt.Errorf("unknown action %q", action.Op)
	}
}
