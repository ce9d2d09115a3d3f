//go:build !windows && !cgo

package main

import (
	"github.com/frudas24/mousesim/internal/app"
	"github.com/frudas24/mousesim/internal/input"
)

// platform returns the stub backend; every event reports input.ErrUnsupported.
func platform() app.Platform {
	return app.Platform{NewInjector: input.NewInjector}
}
