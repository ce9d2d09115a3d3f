package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoCommands indicates a batch file held nothing to execute.
var ErrNoCommands = errors.New("no valid commands found in file")

// LineError reports the batch-file line that failed to parse.
type LineError struct {
	Line int
	Text string
	Err  error
}

// Error returns the failing line number and cause.
func (e *LineError) Error() string {
	return fmt.Sprintf("invalid arguments in line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *LineError) Unwrap() error {
	return e.Err
}

// ReadFile opens path and parses it with Load.
func ReadFile(path string, d Defaults) ([]Command, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open command file: %w", err)
	}
	defer f.Close()
	return Load(f, d)
}

// Load parses one command per line. Empty lines and lines starting with '#'
// are skipped. The first invalid line aborts the whole file, so nothing from
// a broken file is ever executed.
func Load(r io.Reader, d Defaults) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args := Split(line)
		if len(args) == 0 {
			continue
		}
		cmd, err := ParseLine(args, d)
		if err != nil {
			return nil, &LineError{Line: lineNo, Text: line, Err: err}
		}
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read command file: %w", err)
	}
	if len(cmds) == 0 {
		return nil, ErrNoCommands
	}
	return cmds, nil
}

// ParseLine parses arguments that come from a batch file or a remote client.
// Such commands must be runnable and must not reference another file.
func ParseLine(args []string, d Defaults) (Command, error) {
	cmd, err := Parse(args, d)
	if err != nil {
		return cmd, err
	}
	if cmd.File != "" {
		return cmd, usagef("nested command files are not supported")
	}
	if cmd.Listen != "" {
		return cmd, usagef("listen is only valid on the command line")
	}
	if !cmd.Runnable() {
		return cmd, usagef("nothing to execute")
	}
	return cmd, nil
}
