package command

import (
	"fmt"
	"io"
)

const helpText = `Mouse and Keyboard Simulator - Simulates mouse and keyboard events at specified screen coordinates

Usage: mousesim [OPTIONS]

Options:
    -k, --key           Input type (none, mouse_left, mouse_right, mouse_middle,
                        mouse_move, wheel_up, wheel_down, key_a, key_b, key_enter,
                        switch_focus, etc.) [default: none]
    -a, --action        Action to perform (none, click, doubleclick, keydown, keyup)
                        [default: none for key=none, click for mouse_* and key_* types]
    -x                  X coordinate (-1: keep current position)
    -y                  Y coordinate (-1: keep current position)
    -m, --mode          Mode of operation (none, back) [default: none]
    -sm, --smooth       Smooth movement mode (none, linear, ease) [default: none]
    -smt, --smooth_time Duration of smooth movement in milliseconds. If key is switch_focus,
                        this is the time to hold focus [default: %d]
    -s, --sleep         Sleep time in milliseconds after action [default: 0]
    -f, --file          Path to a text file containing commands (one per line)
    -l, --listen        Serve a websocket command channel on this address (e.g. 127.0.0.1:8788)
    -c, --consistent    Use consistent coordinates, ignoring external mouse movement
    -q, --quiet         Suppress all output except errors
    -v, --verbose       Enable verbose output
    -h, --help          Display this help message and exit

Environment:
    MOUSESIM_CONSISTENT, MOUSESIM_LOG_LEVEL, MOUSESIM_LOG_FORMAT, MOUSESIM_SMOOTH_TIME_MS,
    MOUSESIM_DOUBLE_CLICK_GAP_MS, MOUSESIM_BACK_DELAY_MS, MOUSESIM_WHEEL_DELTA,
    MOUSESIM_LISTEN_ADDR, MOUSESIM_CONFIG, MOUSESIM_ENV_FILE

Examples:
    mousesim -k mouse_move -x 500 -y 500                (just move mouse)
    mousesim -k mouse_left -x 500 -y 500                (left click)
    mousesim -k key_enter -a click                      (press Enter key)
    mousesim -k none -s 1000                            (just sleep for 1 second)
    mousesim -k mouse_right -a doubleclick -x 800 -y 600 -m back -sm ease -smt 300
`

// WriteHelp renders usage information.
func WriteHelp(w io.Writer, d Defaults) error {
	cmd := New(d)
	_, err := fmt.Fprintf(w, helpText, cmd.SmoothTime.Milliseconds())
	return err
}
