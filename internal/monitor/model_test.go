package monitor

import "testing"

// TestFindContaining_NegativeLayout verifies monitors left of the primary are matched.
func TestFindContaining_NegativeLayout(t *testing.T) {
	list := []Monitor{
		{Index: 1, X: 0, Y: 0, W: 2560, H: 1440, Primary: true, Scale: 1.5},
		{Index: 2, X: -1920, Y: 0, W: 1920, H: 1080, Scale: 1},
	}
	m, ok := FindContaining(list, -1, 500)
	if !ok || m.Index != 2 {
		t.Fatalf("expected monitor 2, got ok=%v monitor=%+v", ok, m)
	}
	m, ok = FindContaining(list, 2559, 1439)
	if !ok || m.Index != 1 {
		t.Fatalf("expected monitor 1, got ok=%v monitor=%+v", ok, m)
	}
	if _, ok := FindContaining(list, 2560, 0); ok {
		t.Fatalf("expected right edge to be outside")
	}
}

// TestMonitor_String verifies the trace rendering of a monitor.
func TestMonitor_String(t *testing.T) {
	m := Monitor{Index: 2, X: -1920, W: 1920, H: 1080, Primary: true, Scale: 1.25}
	if got := m.String(); got != "#2 1920x1080@(-1920,0) scale=1.25 primary" {
		t.Fatalf("unexpected string %q", got)
	}
}

// TestScaleFromDPI_Values verifies common DPI readings.
func TestScaleFromDPI_Values(t *testing.T) {
	cases := map[int]float64{0: 1, 96: 1, 120: 1.25, 144: 1.5, 192: 2}
	for dpi, want := range cases {
		if got := ScaleFromDPI(dpi); got != want {
			t.Fatalf("dpi %d: expected %v, got %v", dpi, want, got)
		}
	}
}

// TestLevel_String verifies awareness names.
func TestLevel_String(t *testing.T) {
	if LevelPerMonitorV2.String() != "per_monitor_v2" || LevelUnaware.String() != "unaware" {
		t.Fatalf("unexpected level names")
	}
}
