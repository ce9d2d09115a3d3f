//go:build windows

// Package input injects OS-level mouse and keyboard events.
package input

import (
	"github.com/lxn/win"

	"github.com/frudas24/mousesim/internal/keys"
)

// KeyDown presses a keyboard key by virtual-key code.
func (w *WinInjector) KeyDown(k keys.Key) error {
	return sendKeyboardInput(win.KEYBDINPUT{WVk: k.VK})
}

// KeyUp releases a keyboard key by virtual-key code.
func (w *WinInjector) KeyUp(k keys.Key) error {
	return sendKeyboardInput(win.KEYBDINPUT{WVk: k.VK, DwFlags: win.KEYEVENTF_KEYUP})
}
