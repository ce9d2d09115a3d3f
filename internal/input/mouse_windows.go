//go:build windows

// Package input injects OS-level mouse and keyboard events.
package input

import (
	"fmt"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

// CursorPos returns the live cursor position in physical pixels.
func (w *WinInjector) CursorPos() (int, int, error) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return 0, 0, lastError("GetCursorPos")
	}
	return int(pt.X), int(pt.Y), nil
}

// MoveAbs moves the cursor to an absolute screen coordinate.
func (w *WinInjector) MoveAbs(x, y int) error {
	if !win.SetCursorPos(int32(x), int32(y)) {
		return lastError("SetCursorPos")
	}
	return nil
}

// ButtonDown presses a mouse button.
func (w *WinInjector) ButtonDown(b Button) error {
	down, _, err := buttonFlags(b)
	if err != nil {
		return err
	}
	return sendMouseInput(down, 0)
}

// ButtonUp releases a mouse button.
func (w *WinInjector) ButtonUp(b Button) error {
	_, up, err := buttonFlags(b)
	if err != nil {
		return err
	}
	return sendMouseInput(up, 0)
}

// Wheel scrolls by the provided delta; positive is away from the user.
func (w *WinInjector) Wheel(delta int) error {
	return sendMouseInput(win.MOUSEEVENTF_WHEEL, int32(delta))
}

// buttonFlags returns the down and up event flags for b.
func buttonFlags(b Button) (uint32, uint32, error) {
	switch b {
	case ButtonLeft:
		return win.MOUSEEVENTF_LEFTDOWN, win.MOUSEEVENTF_LEFTUP, nil
	case ButtonRight:
		return win.MOUSEEVENTF_RIGHTDOWN, win.MOUSEEVENTF_RIGHTUP, nil
	case ButtonMiddle:
		return win.MOUSEEVENTF_MIDDLEDOWN, win.MOUSEEVENTF_MIDDLEUP, nil
	default:
		return 0, 0, fmt.Errorf("unknown mouse button %d", int(b))
	}
}

// lastError wraps the thread's last Win32 error with the failing call name.
func lastError(op string) error {
	if err := windows.GetLastError(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s failed", op)
}
