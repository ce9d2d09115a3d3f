//go:build windows

package main

import (
	"github.com/frudas24/mousesim/internal/app"
	"github.com/frudas24/mousesim/internal/input"
)

// platform returns the SendInput backend.
func platform() app.Platform {
	return app.Platform{NewInjector: input.NewInjector}
}
