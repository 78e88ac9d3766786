package scroll

import "testing"

const epsilon = 1e-9

// TestPinBoundary verifies the transition happens exactly at the start offset
func TestPinBoundary(t *testing.T) {
	tr := ComputeTriggers(RegisterPanels(Heights{800, 400}), 800)[1]

	if got := StateAt(tr, tr.StartOffset-epsilon); got != Free {
		t.Errorf("Expected free just before start, got %s", got)
	}
	if got := StateAt(tr, tr.StartOffset); got != Pinned {
		t.Errorf("Expected pinned at start, got %s", got)
	}
	if got := StateAt(tr, tr.ReleaseOffset); got != Free {
		t.Errorf("Expected free at release, got %s", got)
	}
	if got := StateAt(tr, tr.ReleaseOffset-epsilon); got != Pinned {
		t.Errorf("Expected pinned just before release, got %s", got)
	}
}

// TestShortPanelHoldsAtTop verifies a pinned short panel stays on the viewport top
func TestShortPanelHoldsAtTop(t *testing.T) {
	tr := ComputeTriggers(RegisterPanels(Heights{400}), 800)[0]

	for _, offset := range []float64{0, 100, 399} {
		state, y := PlacementAt(tr, offset)
		if state != Pinned || y != 0 {
			t.Errorf("Expected pinned at row 0 for offset %f, got %s at %f", offset, state, y)
		}
	}
}

// TestTallPanelScrollsThenHolds verifies a tall panel tracks its window then holds its bottom
func TestTallPanelScrollsThenHolds(t *testing.T) {
	tr := ComputeTriggers(RegisterPanels(Heights{1200}), 800)[0]

	_, y := PlacementAt(tr, 200)
	if y != -200 {
		t.Errorf("Expected row -200 inside the window, got %f", y)
	}
	_, y = PlacementAt(tr, 400)
	if y != -400 {
		t.Errorf("Expected row -400 at the window end, got %f", y)
	}
	state, y := PlacementAt(tr, 1000)
	if state != Pinned || y != -400 {
		t.Errorf("Expected pinned at row -400 past the window, got %s at %f", state, y)
	}
}

// TestFreePanelFollowsLayout verifies free panels sit at their natural row
func TestFreePanelFollowsLayout(t *testing.T) {
	tr := ComputeTriggers(RegisterPanels(Heights{800, 800}), 800)[1]

	state, y := PlacementAt(tr, 300)
	if state != Free || y != 500 {
		t.Errorf("Expected free at row 500, got %s at %f", state, y)
	}
}

// TestPinControllerTransitions verifies transitions are reported once per change
func TestPinControllerTransitions(t *testing.T) {
	c := NewPinController(ComputeTriggers(RegisterPanels(Heights{800, 800}), 800))

	_, tr := c.Apply(0)
	if len(tr) != 1 || tr[0].Index != 0 || tr[0].To != Pinned {
		t.Fatalf("Expected panel 0 to pin, got %+v", tr)
	}
	_, tr = c.Apply(10)
	if len(tr) != 0 {
		t.Errorf("Expected no transitions, got %+v", tr)
	}
	// Jumping straight past panel 0 must still unpin it.
	overrides, tr := c.Apply(1000)
	if len(tr) != 2 {
		t.Fatalf("Expected two transitions, got %+v", tr)
	}
	if overrides[0].State != Free || overrides[1].State != Pinned {
		t.Errorf("Expected [free pinned], got [%s %s]", overrides[0].State, overrides[1].State)
	}
	states := c.States()
	if states[0] != Free || states[1] != Pinned {
		t.Errorf("Expected stored states [free pinned], got %v", states)
	}
}

// TestPinControllerEmpty verifies an empty deck is a no-op
func TestPinControllerEmpty(t *testing.T) {
	overrides, tr := NewPinController(nil).Apply(100)
	if overrides != nil || tr != nil {
		t.Errorf("Expected no output, got %v %v", overrides, tr)
	}
}
