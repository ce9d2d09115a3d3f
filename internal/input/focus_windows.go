//go:build windows

// Package input injects OS-level mouse and keyboard events.
package input

import (
	"fmt"
	"runtime"
	"sync"
	"syscall"
	"time"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

const focusClassName = "MousesimTempFocusWindow"

var (
	user32                = windows.NewLazySystemDLL("user32.dll")
	procAttachThreadInput = user32.NewProc("AttachThreadInput")

	focusClassOnce sync.Once
	focusClassErr  error
	focusClassPtr  *uint16
)

// SwitchFocus steals the foreground with a hidden tool window for hold, then
// hands focus back to the previous foreground window.
func (w *WinInjector) SwitchFocus(hold time.Duration) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	original := win.GetForegroundWindow()
	if original == 0 {
		return fmt.Errorf("switch focus: no foreground window")
	}
	originalThread := win.GetWindowThreadProcessId(original, nil)
	currentThread := windows.GetCurrentThreadId()

	if err := registerFocusClass(); err != nil {
		return err
	}
	instance := win.GetModuleHandle(nil)
	title, _ := syscall.UTF16PtrFromString("Temporary Focus Window")
	temp := win.CreateWindowEx(win.WS_EX_TOOLWINDOW, focusClassPtr, title, win.WS_POPUP,
		0, 0, 0, 0, 0, 0, instance, nil)
	if temp == 0 {
		return lastError("CreateWindowEx")
	}

	win.ShowWindow(temp, win.SW_SHOW)
	win.SetForegroundWindow(temp)
	time.Sleep(hold)

	var restoreErr error
	if attachThreadInput(currentThread, originalThread, true) {
		win.SetForegroundWindow(original)
		attachThreadInput(currentThread, originalThread, false)
	} else {
		win.SetForegroundWindow(original)
		restoreErr = lastError("AttachThreadInput")
	}

	win.DestroyWindow(temp)
	pumpMessages()
	return restoreErr
}

// registerFocusClass registers the temporary window class once per process.
func registerFocusClass() error {
	focusClassOnce.Do(func() {
		name, err := syscall.UTF16PtrFromString(focusClassName)
		if err != nil {
			focusClassErr = err
			return
		}
		var wc win.WNDCLASSEX
		wc.CbSize = uint32(unsafe.Sizeof(wc))
		wc.LpfnWndProc = syscall.NewCallback(focusWndProc)
		wc.HInstance = win.GetModuleHandle(nil)
		wc.LpszClassName = name
		if win.RegisterClassEx(&wc) == 0 {
			focusClassErr = lastError("RegisterClassEx")
			return
		}
		focusClassPtr = name
	})
	return focusClassErr
}

// focusWndProc handles messages for the temporary window.
func focusWndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case win.WM_CLOSE:
		win.DestroyWindow(hwnd)
		return 0
	case win.WM_DESTROY:
		return 0
	default:
		return win.DefWindowProc(hwnd, msg, wParam, lParam)
	}
}

// attachThreadInput shares input state between two threads.
func attachThreadInput(from, to uint32, attach bool) bool {
	flag := uintptr(0)
	if attach {
		flag = 1
	}
	ret, _, _ := procAttachThreadInput.Call(uintptr(from), uintptr(to), flag)
	return ret != 0
}

// pumpMessages drains pending messages for this thread.
func pumpMessages() {
	var msg win.MSG
	for win.PeekMessage(&msg, 0, 0, 0, win.PM_REMOVE) {
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}
}
