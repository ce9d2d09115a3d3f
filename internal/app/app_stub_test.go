//go:build !windows

package app

import (
	"context"
	"testing"
	"time"

	"github.com/frudas24/mousesim/internal/input"
)

// TestRun_StubBackendRunsSleep verifies a backend without input still runs sleeps.
func TestRun_StubBackendRunsSleep(t *testing.T) {
	h := newHarness(t)
	h.override = &input.NoopInjector{}
	if code := h.run(context.Background(), "-s", "5", "-q"); code != ExitOK {
		t.Fatalf("expected exit 0, got %d (%s)", code, h.stderr.String())
	}
	if h.clock.Slept() != 5*time.Millisecond {
		t.Fatalf("expected 5ms sleep, got %v", h.clock.Slept())
	}

	h = newHarness(t)
	h.override = &input.NoopInjector{}
	if code := h.run(context.Background(), "-k", "key_a", "-q"); code != ExitFailure {
		t.Fatalf("expected event failure, got %d", code)
	}
}
