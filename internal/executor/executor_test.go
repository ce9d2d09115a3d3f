package executor

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/frudas24/mousesim/internal/command"
	"github.com/frudas24/mousesim/internal/cursor"
	"github.com/frudas24/mousesim/internal/input"
	"github.com/frudas24/mousesim/internal/testutil"
)

// mustParse builds a command from a space separated line.
func mustParse(t *testing.T, line string) command.Command {
	t.Helper()
	cmd, err := command.Parse(strings.Fields(line), command.Defaults{})
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", line, err)
	}
	return cmd
}

// ops returns the op sequence of a plan.
func ops(plan []Action) []Op {
	out := make([]Op, len(plan))
	for i, a := range plan {
		out[i] = a.Op
	}
	return out
}

// equalOps compares op sequences.
func equalOps(got, want []Op) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// newTestSession returns a session over fakes with the cursor at (x, y).
func newTestSession(t *testing.T, x, y int, consistent bool) (*Session, *testutil.FakeInjector, *testutil.FakeClock) {
	t.Helper()
	inj := &testutil.FakeInjector{X: x, Y: y}
	tr := cursor.NewTracker(inj, consistent)
	if err := tr.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	clock := testutil.NewFakeClock()
	return NewSession(inj, tr, clock, nil, DefaultOptions()), inj, clock
}

// TestPlan_MouseClick verifies a click moves first and then presses and releases.
func TestPlan_MouseClick(t *testing.T) {
	plan := Plan(mustParse(t, "-k mouse_left -x 100 -y 200"), cursor.Position{X: 10, Y: 20}, DefaultOptions())
	want := []Op{OpMove, OpButtonDown, OpButtonUp}
	if !equalOps(ops(plan), want) {
		t.Fatalf("expected %v, got %v", want, ops(plan))
	}
	if plan[0].Target != (cursor.Position{X: 100, Y: 200}) || plan[1].Button != input.ButtonLeft {
		t.Fatalf("unexpected plan: %+v", plan)
	}
}

// TestPlan_DoubleClickHasGap verifies the configured pause sits between both clicks.
func TestPlan_DoubleClickHasGap(t *testing.T) {
	opts := DefaultOptions()
	opts.DoubleClickGap = 15 * time.Millisecond
	plan := Plan(mustParse(t, "-k mouse_right -a doubleclick"), cursor.Position{}, opts)
	want := []Op{OpMove, OpButtonDown, OpButtonUp, OpPause, OpButtonDown, OpButtonUp}
	if !equalOps(ops(plan), want) {
		t.Fatalf("expected %v, got %v", want, ops(plan))
	}
	if plan[3].Duration != 15*time.Millisecond || plan[4].Button != input.ButtonRight {
		t.Fatalf("unexpected plan: %+v", plan)
	}
}

// TestPlan_SentinelAxes verifies unset axes keep the original coordinate.
func TestPlan_SentinelAxes(t *testing.T) {
	plan := Plan(mustParse(t, "-k mouse_move -y 300"), cursor.Position{X: 10, Y: 20}, DefaultOptions())
	if len(plan) != 1 || plan[0].Target != (cursor.Position{X: 10, Y: 300}) {
		t.Fatalf("expected move to (10, 300), got %+v", plan)
	}
}

// TestPlan_BackMode verifies the return trip and the pause before a smooth return.
func TestPlan_BackMode(t *testing.T) {
	orig := cursor.Position{X: 5, Y: 6}
	plain := Plan(mustParse(t, "-k mouse_middle -x 50 -y 60 -m back"), orig, DefaultOptions())
	if want := []Op{OpMove, OpButtonDown, OpButtonUp, OpMove}; !equalOps(ops(plain), want) {
		t.Fatalf("expected %v, got %v", want, ops(plain))
	}
	if plain[3].Target != orig {
		t.Fatalf("expected return to %s, got %s", orig, plain[3].Target)
	}

	smooth := Plan(mustParse(t, "-k mouse_left -x 50 -y 60 -m back -sm ease -smt 300"), orig, DefaultOptions())
	want := []Op{OpSmoothMove, OpButtonDown, OpButtonUp, OpPause, OpSmoothMove}
	if !equalOps(ops(smooth), want) {
		t.Fatalf("expected %v, got %v", want, ops(smooth))
	}
	if smooth[3].Duration != 50*time.Millisecond || smooth[4].Target != orig || smooth[4].Duration != 300*time.Millisecond {
		t.Fatalf("unexpected smooth plan: %+v", smooth)
	}
}

// TestPlan_Wheel verifies wheel direction and configured delta.
func TestPlan_Wheel(t *testing.T) {
	opts := DefaultOptions()
	up := Plan(mustParse(t, "-k wheel_up"), cursor.Position{}, opts)
	down := Plan(mustParse(t, "-k wheel_down"), cursor.Position{}, opts)
	if up[1].Op != OpWheel || up[1].Delta != 120 || down[1].Delta != -120 {
		t.Fatalf("unexpected wheel plans: %+v %+v", up, down)
	}
	opts.WheelDelta = 240
	if got := Plan(mustParse(t, "-k wheel_down"), cursor.Position{}, opts); got[1].Delta != -240 {
		t.Fatalf("expected -240, got %d", got[1].Delta)
	}
}

// TestPlan_Keyboard verifies key actions never move the cursor.
func TestPlan_Keyboard(t *testing.T) {
	cases := map[string][]Op{
		"-k key_a":                {OpKeyDown, OpKeyUp},
		"-k key_a -a keydown":     {OpKeyDown},
		"-k key_a -a keyup":       {OpKeyUp},
		"-k key_a -a doubleclick": {OpKeyDown, OpKeyUp, OpPause, OpKeyDown, OpKeyUp},
		"-k key_enter -x 5 -s 20": {OpKeyDown, OpKeyUp, OpSleep},
	}
	for line, want := range cases {
		plan := Plan(mustParse(t, line), cursor.Position{}, DefaultOptions())
		if !equalOps(ops(plan), want) {
			t.Fatalf("%q: expected %v, got %v", line, want, ops(plan))
		}
	}
}

// TestPlan_SwitchFocusAndSleep verifies the hold time and a sleep-only command.
func TestPlan_SwitchFocusAndSleep(t *testing.T) {
	plan := Plan(mustParse(t, "-k switch_focus -smt 75"), cursor.Position{}, DefaultOptions())
	if len(plan) != 1 || plan[0].Op != OpSwitchFocus || plan[0].Duration != 75*time.Millisecond {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	plan = Plan(mustParse(t, "-k none -s 1000"), cursor.Position{}, DefaultOptions())
	if len(plan) != 1 || plan[0].Op != OpSleep || plan[0].Duration != time.Second {
		t.Fatalf("unexpected plan: %+v", plan)
	}
}

// TestPlan_MoveIgnoresAction verifies mouse_move never presses a button.
func TestPlan_MoveIgnoresAction(t *testing.T) {
	plan := Plan(mustParse(t, "-k mouse_move -a doubleclick -x 1 -y 1"), cursor.Position{}, DefaultOptions())
	if !equalOps(ops(plan), []Op{OpMove}) {
		t.Fatalf("expected only a move, got %v", ops(plan))
	}
}

// TestExecute_ClickSequence verifies the injector sees move, down, up and the sleep.
func TestExecute_ClickSequence(t *testing.T) {
	s, inj, clock := newTestSession(t, 0, 0, false)
	if err := s.Execute(mustParse(t, "-k mouse_left -x 100 -y 200 -s 30")); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	want := []string{"MoveAbs", "ButtonDown", "ButtonUp"}
	got := inj.Names()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if clock.Slept() != 30*time.Millisecond {
		t.Fatalf("expected 30ms sleep, got %v", clock.Slept())
	}
}

// TestExecute_SmoothBackConsistent verifies a smooth round trip ends at the start.
func TestExecute_SmoothBackConsistent(t *testing.T) {
	s, inj, clock := newTestSession(t, 0, 0, true)
	if err := s.Execute(mustParse(t, "-k mouse_left -x 100 -y 0 -sm linear -smt 80 -m back")); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	moves := inj.Moves()
	if last := moves[len(moves)-1]; last.X != 0 || last.Y != 0 {
		t.Fatalf("expected to end at (0,0), got %+v", last)
	}
	foundTarget := false
	for _, m := range moves {
		if m.X == 100 {
			foundTarget = true
		}
	}
	if !foundTarget {
		t.Fatalf("expected a move to the target, got %+v", moves)
	}
	foundPause := false
	for _, d := range clock.Sleeps {
		if d == 50*time.Millisecond {
			foundPause = true
		}
	}
	if !foundPause {
		t.Fatalf("expected back delay, got %v", clock.Sleeps)
	}
}

// TestExecute_FailuresDoNotStop verifies failing events are joined and later events still run.
func TestExecute_FailuresDoNotStop(t *testing.T) {
	s, inj, clock := newTestSession(t, 0, 0, false)
	inj.EventErr = errors.New("blocked")
	err := s.Execute(mustParse(t, "-k key_a -a doubleclick -s 5"))
	if err == nil || !strings.Contains(err.Error(), "blocked") {
		t.Fatalf("expected joined error, got %v", err)
	}
	if len(inj.Calls) != 4 {
		t.Fatalf("expected all 4 key events, got %v", inj.Names())
	}
	if clock.Slept() != 15*time.Millisecond {
		t.Fatalf("expected gap and sleep to run, got %v", clock.Slept())
	}
}

// TestRun_ContinuesAfterFailure verifies later commands run after an error.
func TestRun_ContinuesAfterFailure(t *testing.T) {
	s, inj, _ := newTestSession(t, 0, 0, false)
	inj.EventErr = input.ErrUnsupported
	err := s.Run([]command.Command{
		mustParse(t, "-k switch_focus"),
		mustParse(t, "-k mouse_move -x 9 -y 9"),
	})
	if !errors.Is(err, input.ErrUnsupported) || !strings.Contains(err.Error(), "command 1") {
		t.Fatalf("expected command 1 failure, got %v", err)
	}
	if inj.X != 9 || inj.Y != 9 {
		t.Fatalf("expected second command to move, got (%d, %d)", inj.X, inj.Y)
	}
	if inj.Calls[0].Hold != command.DefaultSmoothTime {
		t.Fatalf("expected default hold, got %v", inj.Calls[0].Hold)
	}
}
