// Package keys maps keyboard key names to platform key codes.
package keys

import (
	"sort"
	"strconv"
	"strings"
)

// Prefix introduces every keyboard key name.
const Prefix = "key_"

// Key identifies one keyboard key.
type Key struct {
	// Name is the table name without the key_ prefix.
	Name string
	// VK is the Windows virtual-key code.
	VK uint16
	// Robot is the robotgo key name.
	Robot string
}

// Windows virtual-key codes not covered by plain ASCII letters and digits.
const (
	vkBack       = 0x08
	vkTab        = 0x09
	vkReturn     = 0x0D
	vkShift      = 0x10
	vkControl    = 0x11
	vkMenu       = 0x12
	vkCapital    = 0x14
	vkEscape     = 0x1B
	vkSpace      = 0x20
	vkPrior      = 0x21
	vkNext       = 0x22
	vkEnd        = 0x23
	vkHome       = 0x24
	vkLeft       = 0x25
	vkUp         = 0x26
	vkRight      = 0x27
	vkDown       = 0x28
	vkSnapshot   = 0x2C
	vkInsert     = 0x2D
	vkDelete     = 0x2E
	vkLWin       = 0x5B
	vkNumpad0    = 0x60
	vkF1         = 0x70
	vkOEM1       = 0xBA
	vkOEMPlus    = 0xBB
	vkOEMComma   = 0xBC
	vkOEMMinus   = 0xBD
	vkOEMPeriod  = 0xBE
	vkOEM2       = 0xBF
	vkOEM3       = 0xC0
	vkOEM4       = 0xDB
	vkOEM5       = 0xDC
	vkOEM6       = 0xDD
	vkOEM7       = 0xDE
	functionKeys = 12
)

var table = buildTable()

// buildTable assembles the name to key mapping.
func buildTable() map[string]Key {
	t := map[string]Key{}
	add := func(name string, vk uint16, robot string) {
		t[name] = Key{Name: name, VK: vk, Robot: robot}
	}

	for i := 1; i <= functionKeys; i++ {
		name := "f" + strconv.Itoa(i)
		add(name, uint16(vkF1+i-1), name)
	}

	add("ctrl", vkControl, "ctrl")
	add("shift", vkShift, "shift")
	add("alt", vkMenu, "alt")
	add("win", vkLWin, "cmd")
	add("escape", vkEscape, "esc")
	add("enter", vkReturn, "enter")
	add("space", vkSpace, "space")
	add("tab", vkTab, "tab")
	add("backspace", vkBack, "backspace")
	add("delete", vkDelete, "delete")
	add("insert", vkInsert, "insert")
	add("capslock", vkCapital, "capslock")
	add("printscreen", vkSnapshot, "printscreen")

	add("home", vkHome, "home")
	add("end", vkEnd, "end")
	add("pgup", vkPrior, "pageup")
	add("pgdn", vkNext, "pagedown")
	add("left", vkLeft, "left")
	add("right", vkRight, "right")
	add("up", vkUp, "up")
	add("down", vkDown, "down")

	for c := 'a'; c <= 'z'; c++ {
		add(string(c), uint16(c-'a'+'A'), string(c))
	}
	for d := 0; d <= 9; d++ {
		name := strconv.Itoa(d)
		add(name, uint16('0'+d), name)
		add("num"+name, uint16(vkNumpad0+d), "num"+name)
	}

	add("minus", vkOEMMinus, "-")
	add("plus", vkOEMPlus, "=")
	add("comma", vkOEMComma, ",")
	add("period", vkOEMPeriod, ".")
	add("slash", vkOEM2, "/")
	add("semicolon", vkOEM1, ";")
	add("quote", vkOEM7, "'")
	add("lbracket", vkOEM4, "[")
	add("rbracket", vkOEM6, "]")
	add("backslash", vkOEM5, "\\")
	add("tilde", vkOEM3, "`")
	add("backtick", vkOEM3, "`")
	return t
}

// Lookup resolves a key_ prefixed name.
func Lookup(name string) (Key, bool) {
	if !strings.HasPrefix(name, Prefix) {
		return Key{}, false
	}
	k, ok := table[strings.TrimPrefix(name, Prefix)]
	return k, ok
}

// Names returns every key_ prefixed name in sorted order.
func Names() []string {
	out := make([]string, 0, len(table))
	for name := range table {
		out = append(out, Prefix+name)
	}
	sort.Strings(out)
	return out
}
