package scroll

import (
	"math"
	"testing"
)

// TestTriggerStartOffsetsMonotonic verifies start offsets never decrease with index
func TestTriggerStartOffsetsMonotonic(t *testing.T) {
	panels := RegisterPanels(Heights{400, 1200, 0, 800, 50})
	triggers := ComputeTriggers(panels, 800)

	if len(triggers) != len(panels) {
		t.Fatalf("Expected %d triggers, got %d", len(panels), len(triggers))
	}
	for i := 1; i < len(triggers); i++ {
		if triggers[i].StartOffset < triggers[i-1].StartOffset {
			t.Errorf("Expected start %d (%f) >= start %d (%f)", i, triggers[i].StartOffset, i-1, triggers[i-1].StartOffset)
		}
	}
}

// TestTriggerStartIsCumulativeHeight verifies pinning reserves no extra page length
func TestTriggerStartIsCumulativeHeight(t *testing.T) {
	triggers := ComputeTriggers(RegisterPanels(Heights{400, 1200, 800}), 800)

	want := []float64{0, 400, 1600}
	for i, w := range want {
		if triggers[i].StartOffset != w {
			t.Errorf("Expected trigger %d to start at %f, got %f", i, w, triggers[i].StartOffset)
		}
	}
}

// TestShortPanelWindow verifies a panel shorter than the viewport has a zero-length window
func TestShortPanelWindow(t *testing.T) {
	tr := ComputeTriggers([]Panel{{Index: 0, Height: 400}}, 800)[0]

	if tr.WindowLength() != 0 {
		t.Errorf("Expected window length 0, got %f", tr.WindowLength())
	}
	if tr.Mode != PinTop {
		t.Errorf("Expected mode %s, got %s", PinTop, tr.Mode)
	}
	if tr.ReleaseOffset != 400 {
		t.Errorf("Expected release at 400, got %f", tr.ReleaseOffset)
	}
	if tr.PinY != 0 {
		t.Errorf("Expected pin row 0, got %f", tr.PinY)
	}
}

// TestTallPanelWindow verifies a taller panel pins for its excess height
func TestTallPanelWindow(t *testing.T) {
	tr := ComputeTriggers([]Panel{{Index: 0, Height: 1200}}, 800)[0]

	if tr.WindowLength() != 400 {
		t.Errorf("Expected window length 400, got %f", tr.WindowLength())
	}
	if tr.Mode != PinBottom {
		t.Errorf("Expected mode %s, got %s", PinBottom, tr.Mode)
	}
	if tr.PinY != -400 {
		t.Errorf("Expected pin row -400, got %f", tr.PinY)
	}
}

// TestPanelEqualToViewport verifies the boundary case takes the tall branch with no excess
func TestPanelEqualToViewport(t *testing.T) {
	tr := ComputeTriggers([]Panel{{Index: 0, Height: 800}}, 800)[0]

	if tr.Mode != PinBottom {
		t.Errorf("Expected mode %s, got %s", PinBottom, tr.Mode)
	}
	if tr.WindowLength() != 0 {
		t.Errorf("Expected window length 0, got %f", tr.WindowLength())
	}
}

// TestDegenerateViewport verifies non-positive viewports give finite zero-width windows
func TestDegenerateViewport(t *testing.T) {
	for _, vh := range []float64{0, -50, math.NaN()} {
		triggers := ComputeTriggers(RegisterPanels(Heights{400, 1200}), vh)
		for _, tr := range triggers {
			for _, v := range []float64{tr.StartOffset, tr.EndOffset, tr.ReleaseOffset, tr.PinY} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("Expected finite offsets for vh=%f, got %+v", vh, tr)
				}
			}
			if tr.WindowLength() != 0 {
				t.Errorf("Expected zero-width window for vh=%f, got %f", vh, tr.WindowLength())
			}
			if tr.ReleaseOffset != tr.StartOffset {
				t.Errorf("Expected no pin range for vh=%f, got %+v", vh, tr)
			}
		}
	}
}

// TestRegisterPanelsEmpty verifies an empty deck registers nothing without failing
func TestRegisterPanelsEmpty(t *testing.T) {
	if got := RegisterPanels(nil); len(got) != 0 {
		t.Errorf("Expected no panels from nil measurer, got %d", len(got))
	}
	if got := RegisterPanels(Heights{}); len(got) != 0 {
		t.Errorf("Expected no panels from empty measurer, got %d", len(got))
	}
	if got := ComputeTriggers(nil, 800); got != nil {
		t.Errorf("Expected nil triggers, got %v", got)
	}
}

// TestRegisterPanelsSanitizesHeights verifies bad measurements become zero
func TestRegisterPanelsSanitizesHeights(t *testing.T) {
	panels := RegisterPanels(Heights{-3, math.Inf(1), 12})

	want := []float64{0, 0, 12}
	for i, w := range want {
		if panels[i].Height != w {
			t.Errorf("Expected panel %d height %f, got %f", i, w, panels[i].Height)
		}
		if panels[i].Index != i {
			t.Errorf("Expected panel index %d, got %d", i, panels[i].Index)
		}
	}
}

// TestBuildLayout verifies snap targets, total height and max scroll
func TestBuildLayout(t *testing.T) {
	l := BuildLayout(RegisterPanels(Heights{800, 1600, 800}), 800)

	if len(l.SnapTargets) != 3 {
		t.Fatalf("Expected 3 snap targets, got %d", len(l.SnapTargets))
	}
	want := []float64{0, 800, 2400}
	for i, w := range want {
		if l.SnapTargets[i] != w {
			t.Errorf("Expected target %d = %f, got %f", i, w, l.SnapTargets[i])
		}
	}
	if l.TotalHeight != 3200 {
		t.Errorf("Expected total height 3200, got %f", l.TotalHeight)
	}
	if l.MaxScroll != 2400 {
		t.Errorf("Expected max scroll 2400, got %f", l.MaxScroll)
	}
}

// TestBuildLayoutShorterThanViewport verifies max scroll never goes negative
func TestBuildLayoutShorterThanViewport(t *testing.T) {
	l := BuildLayout(RegisterPanels(Heights{100, 100}), 800)

	if l.MaxScroll != 0 {
		t.Errorf("Expected max scroll 0, got %f", l.MaxScroll)
	}
	if l.ClampOffset(50) != 0 {
		t.Errorf("Expected offset clamped to 0, got %f", l.ClampOffset(50))
	}
}

// TestActiveIndex verifies the active panel follows the last passed start
func TestActiveIndex(t *testing.T) {
	l := BuildLayout(RegisterPanels(Heights{800, 1600, 800}), 800)

	cases := map[float64]int{0: 0, 799: 0, 800: 1, 2399: 1, 2400: 2}
	for offset, want := range cases {
		if got := l.ActiveIndex(offset); got != want {
			t.Errorf("Expected active %d at offset %f, got %d", want, offset, got)
		}
	}
	if got := (Layout{}).ActiveIndex(10); got != -1 {
		t.Errorf("Expected -1 for empty layout, got %d", got)
	}
}
