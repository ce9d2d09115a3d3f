//go:build windows

// Package input injects OS-level mouse and keyboard events.
package input

import (
	"unsafe"

	"github.com/lxn/win"
)

// WinInjector injects mouse and keyboard input using WinAPI.
type WinInjector struct{}

// NewInjector returns a Windows input injector.
func NewInjector() (Injector, error) {
	return &WinInjector{}, nil
}

// keyboardInput pads KEYBD_INPUT to the size SendInput expects for INPUT.
type keyboardInput struct {
	win.KEYBD_INPUT
	_ [8]byte
}

// sizeofInput is sizeof(INPUT), the largest union member being MOUSEINPUT.
var sizeofInput = int32(unsafe.Sizeof(win.MOUSE_INPUT{}))

// sendMouseInput dispatches a single mouse input event.
func sendMouseInput(flags uint32, data int32) error {
	input := win.MOUSE_INPUT{
		Type: win.INPUT_MOUSE,
		Mi: win.MOUSEINPUT{
			MouseData: uint32(data),
			DwFlags:   flags,
		},
	}
	if win.SendInput(1, unsafe.Pointer(&input), sizeofInput) != 1 {
		return lastError("SendInput")
	}
	return nil
}

// sendKeyboardInput dispatches a single keyboard input event.
func sendKeyboardInput(key win.KEYBDINPUT) error {
	input := keyboardInput{
		KEYBD_INPUT: win.KEYBD_INPUT{
			Type: win.INPUT_KEYBOARD,
			Ki:   key,
		},
	}
	if win.SendInput(1, unsafe.Pointer(&input), sizeofInput) != 1 {
		return lastError("SendInput")
	}
	return nil
}
