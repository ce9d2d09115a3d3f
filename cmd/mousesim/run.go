package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/frudas24/mousesim/internal/app"
)

// run wires the platform backend and blocks until the work is done or the
// process is interrupted.
func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return app.Run(ctx, args, app.IO{Stdout: os.Stdout, Stderr: os.Stderr}, platform())
}
