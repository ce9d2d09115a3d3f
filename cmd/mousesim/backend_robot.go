//go:build !windows && cgo

package main

import (
	"github.com/frudas24/mousesim/internal/app"
	"github.com/frudas24/mousesim/internal/input"
	"github.com/frudas24/mousesim/internal/input/robot"
)

// platform returns the robotgo backend for macOS and X11.
func platform() app.Platform {
	return app.Platform{
		NewInjector: func() (input.Injector, error) { return robot.New(), nil },
		Scale:       func(int, int) float64 { return robot.Scale() },
	}
}
