// Package app wires configuration, logging, input and the executor together.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"

	"github.com/frudas24/mousesim/internal/command"
	"github.com/frudas24/mousesim/internal/config"
	"github.com/frudas24/mousesim/internal/cursor"
	"github.com/frudas24/mousesim/internal/executor"
	"github.com/frudas24/mousesim/internal/input"
	"github.com/frudas24/mousesim/internal/logging"
	"github.com/frudas24/mousesim/internal/monitor"
	"github.com/frudas24/mousesim/internal/motion"
	"github.com/frudas24/mousesim/internal/remote"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Platform supplies the OS-specific pieces.
type Platform struct {
	NewInjector func() (input.Injector, error)
	// Scale reports the DPI scale at a point; nil uses monitor.ScaleAt.
	Scale func(x, y int) float64
	// EnableDPI opts into DPI awareness; nil uses monitor.EnableDPIAwareness.
	EnableDPI func() monitor.Level
	// Monitors lists displays; nil uses monitor.ListMonitors.
	Monitors func() ([]monitor.Monitor, error)
	// Clock drives sleeps and motion; nil uses the system clock.
	Clock motion.Clock
}

// IO holds the streams the app writes to.
type IO struct {
	Stdout io.Writer
	Stderr io.Writer
}

// App is one configured invocation.
type App struct {
	cfg      config.Config
	cmd      command.Command
	logger   *slog.Logger
	streams  IO
	platform Platform
}

// Run loads configuration, parses args and executes them. It returns the
// process exit code.
func Run(ctx context.Context, args []string, streams IO, platform Platform) int {
	cfg, err := config.Load()
	if err != nil {
		if early, _ := command.Parse(args, command.Defaults{}); !early.Quiet {
			fmt.Fprintf(streams.Stderr, "Error: config: %v\n", err)
		}
		return ExitFailure
	}

	defaults := command.Defaults{SmoothTime: cfg.SmoothTime}
	cmd, err := command.Parse(args, defaults)
	if err != nil {
		if !cmd.Quiet {
			fmt.Fprintf(streams.Stderr, "Error: %v\nUse -h or --help for usage information.\n", err)
		}
		return ExitUsage
	}

	logger, err := logging.New(logging.Options{
		Level:  logging.LevelFor(cfg.LogLevel, cmd.Verbose, cmd.Quiet),
		Format: cfg.LogFormat,
		Output: streams.Stderr,
	})
	if err != nil {
		fmt.Fprintf(streams.Stderr, "Error: logging: %v\n", err)
		return ExitFailure
	}

	a := &App{cfg: cfg, cmd: cmd, logger: logger, streams: streams, platform: platform}
	return a.run(ctx)
}

// run dispatches to help, a single command, a batch file, or serve mode.
func (a *App) run(ctx context.Context) int {
	if a.cmd.Help {
		if err := command.WriteHelp(a.streams.Stdout, a.defaults()); err != nil {
			return ExitFailure
		}
		return ExitOK
	}

	listen := a.listenAddr()
	if !a.cmd.Runnable() && listen == "" {
		a.errorf("Error: nothing to execute\nUse -h or --help for usage information.\n")
		return ExitUsage
	}

	var cmds []command.Command
	if a.cmd.File != "" {
		loaded, err := command.ReadFile(a.cmd.File, a.defaults())
		if err != nil {
			a.errorf("Error: %v\n", err)
			var usage *command.UsageError
			if errors.As(err, &usage) {
				return ExitUsage
			}
			return ExitFailure
		}
		cmds = loaded
	} else if a.cmd.Runnable() {
		cmds = []command.Command{a.cmd}
	}

	sess, err := a.newSession(cmds)
	if err != nil {
		a.logger.Error("startup failed", "err", err)
		return ExitFailure
	}

	code := ExitOK
	if len(cmds) > 0 {
		if err := sess.Run(cmds); err != nil {
			a.logger.Error("execution failed", "err", err)
			code = ExitFailure
		}
	}

	if listen != "" {
		if err := a.serve(ctx, sess, listen); err != nil {
			a.logger.Error("serve failed", "err", err)
			return ExitFailure
		}
	}
	return code
}

// newSession prepares DPI awareness, the injector and the cursor tracker.
func (a *App) newSession(cmds []command.Command) (*executor.Session, error) {
	enable := a.platform.EnableDPI
	if enable == nil {
		enable = monitor.EnableDPIAwareness
	}
	a.logger.Debug("dpi awareness", "level", enable().String())

	if a.platform.NewInjector == nil {
		return nil, errors.New("no input backend configured")
	}
	inj, err := a.platform.NewInjector()
	if err != nil {
		return nil, fmt.Errorf("input backend: %w", err)
	}

	consistent := a.cfg.Consistent || a.cmd.Consistent
	for _, c := range cmds {
		consistent = consistent || c.Consistent
	}
	tracker := cursor.NewTracker(inj, consistent)
	if err := tracker.Initialize(); err != nil {
		a.logger.Warn("cursor position unavailable", "err", err)
	}

	if pos, err := tracker.Get(); err == nil && a.logger.Enabled(context.Background(), slog.LevelDebug) {
		a.traceDisplay(pos, tracker.Consistent())
	}

	return executor.NewSession(inj, tracker, a.platform.Clock, a.logger, executor.Options{
		DoubleClickGap: a.cfg.DoubleClickGap,
		BackDelay:      a.cfg.BackDelay,
		WheelDelta:     a.cfg.WheelDelta,
	}), nil
}

// traceDisplay logs the DPI scale and the monitor under the cursor.
func (a *App) traceDisplay(pos cursor.Position, consistent bool) {
	scale := a.platform.Scale
	if scale == nil {
		scale = monitor.ScaleAt
	}
	attrs := []any{"scale", scale(pos.X, pos.Y), "pos", pos.String(), "consistent", consistent}
	if list, err := a.monitors()(); err == nil {
		if m, ok := monitor.FindContaining(list, pos.X, pos.Y); ok {
			attrs = append(attrs, "monitor", m.String())
		}
	}
	a.logger.Debug("dpi scaling factor", attrs...)
}

// monitors returns the platform monitor lister.
func (a *App) monitors() func() ([]monitor.Monitor, error) {
	if a.platform.Monitors != nil {
		return a.platform.Monitors
	}
	return monitor.ListMonitors
}

// errorf writes a user-facing error line unless quiet was requested.
func (a *App) errorf(format string, args ...any) {
	if a.cmd.Quiet {
		return
	}
	fmt.Fprintf(a.streams.Stderr, format, args...)
}

// serve runs the websocket command channel until ctx ends.
func (a *App) serve(ctx context.Context, sess *executor.Session, addr string) error {
	logListenStatus(a.logger, addr)
	srv := remote.NewServer(sess, remote.Options{
		Defaults: a.defaults(),
		Token:    a.cfg.Token,
		Monitors: a.monitors(),
		Logger:   a.logger,
	})
	return srv.ListenAndServe(ctx, addr)
}

// listenAddr prefers the flag over configuration.
func (a *App) listenAddr() string {
	if a.cmd.Listen != "" {
		return a.cmd.Listen
	}
	if !a.cmd.Runnable() {
		return a.cfg.ListenAddr
	}
	return ""
}

// defaults returns the command defaults derived from configuration.
func (a *App) defaults() command.Defaults {
	return command.Defaults{SmoothTime: a.cfg.SmoothTime}
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(logger *slog.Logger, addr string) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
		logger.Warn("command channel reachable from the network", "addr", addr)
	}
	logger.Info("command channel", "url", "ws://"+net.JoinHostPort(host, port)+"/ws/command")
}
