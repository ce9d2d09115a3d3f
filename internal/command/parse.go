package command

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/frudas24/mousesim/internal/easing"
)

// UsageError reports an invalid command line.
type UsageError struct {
	Err error
}

// Error returns the usage problem.
func (e *UsageError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *UsageError) Unwrap() error {
	return e.Err
}

// usagef builds a UsageError from a format string.
func usagef(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// Parse builds a Command from arguments (without the program name).
// An empty argument list asks for help.
func Parse(args []string, d Defaults) (Command, error) {
	cmd := New(d)
	if len(args) == 0 {
		cmd.Help = true
		return cmd, nil
	}

	var (
		key, action, mode, smooth string
		smoothMs, sleepMs         int
	)
	fs := flag.NewFlagSet("mousesim", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	stringFlag(fs, &key, cmd.Key, "k", "key")
	stringFlag(fs, &action, string(cmd.Action), "a", "action")
	intFlag(fs, &cmd.X, cmd.X, "x")
	intFlag(fs, &cmd.Y, cmd.Y, "y")
	stringFlag(fs, &mode, string(cmd.Mode), "m", "mode")
	stringFlag(fs, &smooth, cmd.Smooth, "sm", "smooth")
	intFlag(fs, &smoothMs, int(cmd.SmoothTime.Milliseconds()), "smt", "smooth_time")
	intFlag(fs, &sleepMs, 0, "s", "sleep")
	stringFlag(fs, &cmd.File, "", "f", "file")
	stringFlag(fs, &cmd.Listen, "", "l", "listen")
	boolFlag(fs, &cmd.Consistent, "c", "consistent")
	boolFlag(fs, &cmd.Quiet, "q", "quiet")
	boolFlag(fs, &cmd.Verbose, "v", "verbose")
	boolFlag(fs, &cmd.Help, "h", "help")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cmd.Help = true
			return cmd, nil
		}
		return cmd, &UsageError{Err: err}
	}
	if rest := fs.Args(); len(rest) > 0 {
		return cmd, usagef("unknown option %q", rest[0])
	}

	if !validKey(key) {
		return cmd, usagef("invalid key type %q", key)
	}
	cmd.Key = key

	switch a := Action(action); a {
	case ActNone, ActClick, ActDoubleClick, ActKeyDown, ActKeyUp:
		cmd.Action = a
	default:
		return cmd, usagef("invalid action %q: must be none, click, doubleclick, keydown, or keyup", action)
	}

	switch m := Mode(mode); m {
	case ModeNone, ModeBack:
		cmd.Mode = m
	default:
		return cmd, usagef("invalid mode %q: must be none or back", mode)
	}

	switch smooth {
	case SmoothNone, string(easing.Linear), string(easing.Ease):
		cmd.Smooth = smooth
	default:
		return cmd, usagef("invalid smooth mode %q: must be none, linear, or ease", smooth)
	}

	if smoothMs < 0 {
		return cmd, usagef("smooth time must be non-negative")
	}
	cmd.SmoothTime = time.Duration(smoothMs) * time.Millisecond
	if sleepMs < 0 {
		return cmd, usagef("sleep time must be non-negative")
	}
	cmd.Sleep = time.Duration(sleepMs) * time.Millisecond

	if cmd.Verbose && cmd.Quiet {
		cmd.Verbose = false
	}
	if cmd.Action == ActNone && cmd.Kind() != KindNone && cmd.Kind() != KindSwitchFocus {
		cmd.Action = ActClick
	}
	return cmd, nil
}

// stringFlag registers one string flag under several names.
func stringFlag(fs *flag.FlagSet, p *string, def string, names ...string) {
	for _, name := range names {
		fs.StringVar(p, name, def, "")
	}
}

// intFlag registers one int flag under several names.
func intFlag(fs *flag.FlagSet, p *int, def int, names ...string) {
	for _, name := range names {
		fs.IntVar(p, name, def, "")
	}
}

// boolFlag registers one bool flag under several names.
func boolFlag(fs *flag.FlagSet, p *bool, names ...string) {
	for _, name := range names {
		fs.BoolVar(p, name, false, "")
	}
}

// Split breaks a batch-file line into arguments. Spaces separate arguments
// and a double quote toggles quoting; quotes themselves are dropped.
func Split(line string) []string {
	var (
		args     []string
		cur      strings.Builder
		inQuotes bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ' ' && !inQuotes:
			if cur.Len() > 0 {
				args = append(args, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		args = append(args, cur.String())
	}
	return args
}
