package easing

import (
	"math"
	"testing"
)

// TestApply_Endpoints verifies both curves start at 0 and end at 1.
func TestApply_Endpoints(t *testing.T) {
	for _, mode := range []Mode{Linear, Ease} {
		if got := Apply(0, mode); got != 0 {
			t.Fatalf("%s: expected f(0)=0, got %v", mode, got)
		}
		if got := Apply(1, mode); got != 1 {
			t.Fatalf("%s: expected f(1)=1, got %v", mode, got)
		}
	}
}

// TestApply_Monotonic verifies the curves never move backwards.
func TestApply_Monotonic(t *testing.T) {
	for _, mode := range []Mode{Linear, Ease} {
		prev := Apply(0, mode)
		for i := 1; i <= 1000; i++ {
			cur := Apply(float64(i)/1000, mode)
			if cur < prev {
				t.Fatalf("%s: f decreased at step %d: %v < %v", mode, i, cur, prev)
			}
			if cur < 0 || cur > 1 {
				t.Fatalf("%s: f out of range at step %d: %v", mode, i, cur)
			}
			prev = cur
		}
	}
}

// TestApply_EaseMidpoint verifies the cubic curve is symmetric around 0.5.
func TestApply_EaseMidpoint(t *testing.T) {
	if got := Apply(0.5, Ease); got != 0.5 {
		t.Fatalf("expected f(0.5)=0.5, got %v", got)
	}
	for _, x := range []float64{0.1, 0.25, 0.4} {
		sum := Apply(x, Ease) + Apply(1-x, Ease)
		if math.Abs(sum-1) > 1e-12 {
			t.Fatalf("expected f(%v)+f(%v)=1, got %v", x, 1-x, sum)
		}
	}
}

// TestApply_EaseSlopeContinuous verifies both halves meet with the same slope.
func TestApply_EaseSlopeContinuous(t *testing.T) {
	const h = 1e-6
	left := (Apply(0.5, Ease) - Apply(0.5-h, Ease)) / h
	right := (Apply(0.5+h, Ease) - Apply(0.5, Ease)) / h
	if math.Abs(left-right) > 1e-3 {
		t.Fatalf("slope mismatch at 0.5: left=%v right=%v", left, right)
	}
}

// TestApply_EaseShape verifies the curve is slow at the ends and fast in the middle.
func TestApply_EaseShape(t *testing.T) {
	const step = 0.05
	head := Apply(step, Ease) - Apply(0, Ease)
	mid := Apply(0.5+step/2, Ease) - Apply(0.5-step/2, Ease)
	tail := Apply(1, Ease) - Apply(1-step, Ease)
	if !(mid > head && mid > tail) {
		t.Fatalf("expected middle step to dominate: head=%v mid=%v tail=%v", head, mid, tail)
	}
}

// TestApply_ClampsInput verifies out-of-range input is clamped.
func TestApply_ClampsInput(t *testing.T) {
	if got := Apply(-0.5, Ease); got != 0 {
		t.Fatalf("expected clamp to 0, got %v", got)
	}
	if got := Apply(2, Linear); got != 1 {
		t.Fatalf("expected clamp to 1, got %v", got)
	}
}

// TestParseMode_UnknownFallsBackToLinear verifies unknown names fail closed.
func TestParseMode_UnknownFallsBackToLinear(t *testing.T) {
	cases := map[string]Mode{
		"ease":   Ease,
		" EASE ": Ease,
		"linear": Linear,
		"bounce": Linear,
		"":       Linear,
		"none":   Linear,
	}
	for in, want := range cases {
		if got := ParseMode(in); got != want {
			t.Fatalf("ParseMode(%q): expected %q, got %q", in, want, got)
		}
	}
}

// TestApply_UnknownModeIsIdentity verifies an unrecognized tag behaves as linear.
func TestApply_UnknownModeIsIdentity(t *testing.T) {
	if got := Apply(0.3, Mode("zigzag")); got != 0.3 {
		t.Fatalf("expected identity 0.3, got %v", got)
	}
}
