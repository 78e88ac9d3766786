package scroll

// PinState is the per-panel pin state.
type PinState int

const (
	Free PinState = iota
	Pinned
)

func (s PinState) String() string {
	if s == Pinned {
		return "pinned"
	}
	return "free"
}

// PinOverride is the visual placement of one panel for a tick. Y is the
// panel's top row in viewport coordinates.
type PinOverride struct {
	Index int
	State PinState
	Y     float64
}

// Transition records a panel changing pin state between two ticks.
type Transition struct {
	Index int
	From  PinState
	To    PinState
}

// PinController tracks pin state per panel. Overrides are recomputed for
// every panel on every tick so a fast scroll that skips a boundary frame
// still lands in the right state.
type PinController struct {
	triggers []Trigger
	states   []PinState
}

// NewPinController starts with every panel free.
func NewPinController(triggers []Trigger) *PinController {
	return &PinController{
		triggers: triggers,
		states:   make([]PinState, len(triggers)),
	}
}

// StateAt is the pin state of t at offset. The window is half-open:
// pinned from StartOffset up to, not including, ReleaseOffset.
func StateAt(t Trigger, offset float64) PinState {
	if offset >= t.StartOffset && offset < t.ReleaseOffset {
		return Pinned
	}
	return Free
}

// PlacementAt is the top row of t at offset, with the pin clamp applied.
func PlacementAt(t Trigger, offset float64) (PinState, float64) {
	natural := t.StartOffset - offset
	state := StateAt(t, offset)
	if state == Free {
		return Free, natural
	}
	floor := t.PinY
	if floor > 0 {
		floor = 0
	}
	if natural < floor {
		return Pinned, floor
	}
	return Pinned, natural
}

// Apply computes the overrides for offset and returns any state changes
// since the previous call.
func (c *PinController) Apply(offset float64) ([]PinOverride, []Transition) {
	if len(c.triggers) == 0 {
		return nil, nil
	}
	overrides := make([]PinOverride, len(c.triggers))
	var transitions []Transition
	for i, t := range c.triggers {
		state, y := PlacementAt(t, offset)
		overrides[i] = PinOverride{Index: i, State: state, Y: y}
		if state != c.states[i] {
			transitions = append(transitions, Transition{Index: i, From: c.states[i], To: state})
			c.states[i] = state
		}
	}
	return overrides, transitions
}

// States returns a copy of the current pin states.
func (c *PinController) States() []PinState {
	return append([]PinState(nil), c.states...)
}
