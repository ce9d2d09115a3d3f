//go:build windows

package monitor

import (
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

const (
	// dpiAwarenessContextPerMonitorV2 is DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2 ((HANDLE)-4).
	dpiAwarenessContextPerMonitorV2 = ^uintptr(3)

	processSystemDPIAware     = 1
	processPerMonitorDPIAware = 2

	mdtEffectiveDPI         = 0
	monitorDefaultToNearest = 2
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	shcore = windows.NewLazySystemDLL("shcore.dll")

	procSetProcessDpiAwarenessContext = user32.NewProc("SetProcessDpiAwarenessContext")
	procSetProcessDPIAware            = user32.NewProc("SetProcessDPIAware")
	procMonitorFromRect               = user32.NewProc("MonitorFromRect")
	procSetProcessDpiAwareness        = shcore.NewProc("SetProcessDpiAwareness")
	procGetDpiForMonitor              = shcore.NewProc("GetDpiForMonitor")
)

// EnableDPIAwareness opts the process into the strongest DPI awareness the OS
// offers, so coordinates are physical pixels on every monitor.
func EnableDPIAwareness() Level {
	if procSetProcessDpiAwarenessContext.Find() == nil {
		if r, _, _ := procSetProcessDpiAwarenessContext.Call(dpiAwarenessContextPerMonitorV2); r != 0 {
			return LevelPerMonitorV2
		}
	}
	if procSetProcessDpiAwareness.Find() == nil {
		if r, _, _ := procSetProcessDpiAwareness.Call(processPerMonitorDPIAware); r == 0 {
			return LevelPerMonitor
		}
		if r, _, _ := procSetProcessDpiAwareness.Call(processSystemDPIAware); r == 0 {
			return LevelSystem
		}
	}
	if procSetProcessDPIAware.Find() == nil {
		if r, _, _ := procSetProcessDPIAware.Call(); r != 0 {
			return LevelLegacy
		}
	}
	return LevelUnaware
}

// ScaleAt returns the effective DPI scale of the monitor nearest the point.
func ScaleAt(x, y int) float64 {
	if procMonitorFromRect.Find() == nil {
		rect := win.RECT{Left: int32(x), Top: int32(y), Right: int32(x) + 1, Bottom: int32(y) + 1}
		h, _, _ := procMonitorFromRect.Call(uintptr(unsafe.Pointer(&rect)), monitorDefaultToNearest)
		if h != 0 {
			return monitorScale(win.HMONITOR(h))
		}
	}
	return primaryScale()
}

// monitorScale reads the effective DPI of a monitor, falling back to the primary DC.
func monitorScale(h win.HMONITOR) float64 {
	if procGetDpiForMonitor.Find() == nil {
		var dpiX, dpiY uint32
		r, _, _ := procGetDpiForMonitor.Call(uintptr(h), mdtEffectiveDPI,
			uintptr(unsafe.Pointer(&dpiX)), uintptr(unsafe.Pointer(&dpiY)))
		if r == 0 && dpiX != 0 {
			return ScaleFromDPI(int(dpiX))
		}
	}
	return primaryScale()
}

// primaryScale reads LOGPIXELSX from the screen DC.
func primaryScale() float64 {
	hdc := win.GetDC(0)
	if hdc == 0 {
		return 1
	}
	defer win.ReleaseDC(0, hdc)
	return ScaleFromDPI(int(win.GetDeviceCaps(hdc, win.LOGPIXELSX)))
}
