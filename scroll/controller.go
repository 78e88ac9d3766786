package scroll

import (
	"math"
	"time"
)

// snapEpsilon is how close to a target counts as already resting on it.
const snapEpsilon = 1e-6

// ScrollState is the scroll offset for one tick. It is passed into each
// call rather than held by the controller.
type ScrollState struct {
	Offset float64
}

// Frame is everything the host needs to paint one tick.
type Frame struct {
	Offset      float64
	Pins        []PinOverride
	Transitions []Transition
	Opacities   []float64
	Active      int
	SnapTarget  float64
}

// Controller ties the registry, trigger computer, pin controller, snap
// engine, fade scrubber and resize reconciler together around one Layout
// snapshot.
type Controller struct {
	cfg    Config
	layout Layout
	pins   *PinController
	snap   Snapper
	resize Reconciler

	settleGen uint64
}

// New returns a controller with an empty layout. Until Reconcile is called
// every operation is a no-op.
func New(cfg Config) *Controller {
	cfg = cfg.WithDefaults()
	return &Controller{
		cfg:    cfg,
		pins:   NewPinController(nil),
		snap:   Snapper{Duration: cfg.SnapDuration},
		resize: Reconciler{Quiet: cfg.ResizeQuiet},
	}
}

// Config returns the effective timings.
func (c *Controller) Config() Config { return c.cfg }

// Layout returns the current snapshot.
func (c *Controller) Layout() Layout { return c.layout }

// Reconcile re-registers panels from m, rebuilds the layout for
// viewportHeight and swaps it in. Pin state restarts from free and any
// in-flight snap is dropped, since both refer to the old geometry.
func (c *Controller) Reconcile(m Measurer, viewportHeight float64) Layout {
	panels := RegisterPanels(m)
	c.layout = BuildLayout(panels, viewportHeight)
	c.pins = NewPinController(c.layout.Triggers)
	c.snap.Cancel()
	return c.layout
}

// Tick computes one frame. The pin clamp runs before the snap decision so
// the decision sees the pinned layout for this offset.
func (c *Controller) Tick(state ScrollState) Frame {
	offset := c.layout.ClampOffset(state.Offset)
	f := Frame{Offset: offset, Active: -1}
	if c.layout.Empty() {
		return f
	}
	f.Pins, f.Transitions = c.pins.Apply(offset)
	f.SnapTarget = NextSnapOffset(offset, c.layout.SnapTargets, c.layout.MaxScroll)
	f.Opacities = Fades(c.layout, offset)
	f.Active = c.layout.ActiveIndex(offset)
	return f
}

// ScrollInput records user scroll input. Any snap in flight is cancelled
// and the returned generation should be scheduled after SettleDelay.
func (c *Controller) ScrollInput() uint64 {
	c.snap.Cancel()
	c.settleGen++
	return c.settleGen
}

// Settle starts a snap once input tagged gen has settled. It returns false
// when gen is stale, the deck is empty, or the offset already rests on the
// nearest target.
func (c *Controller) Settle(gen uint64, state ScrollState, now time.Time) (Motion, bool) {
	if gen != c.settleGen || c.layout.Empty() {
		return Motion{}, false
	}
	from := c.layout.ClampOffset(state.Offset)
	to := NextSnapOffset(from, c.layout.SnapTargets, c.layout.MaxScroll)
	if math.Abs(to-from) < snapEpsilon {
		return Motion{}, false
	}
	return c.snap.Start(from, to, c.layout.MaxScroll, now), true
}

// SnapTo starts a snap straight to the start of panel index, bypassing the
// settle wait. Used for explicit navigation.
func (c *Controller) SnapTo(index int, state ScrollState, now time.Time) (Motion, bool) {
	if index < 0 || index >= len(c.layout.SnapTargets) {
		return Motion{}, false
	}
	c.settleGen++
	from := c.layout.ClampOffset(state.Offset)
	to := c.layout.ClampOffset(c.layout.SnapTargets[index])
	return c.snap.Start(from, to, c.layout.MaxScroll, now), true
}

// Step advances the snap motion tagged gen.
func (c *Controller) Step(gen uint64, now time.Time) (offset float64, done bool, ok bool) {
	return c.snap.Step(gen, now)
}

// Snapping reports whether a snap motion is in flight.
func (c *Controller) Snapping() bool { return c.snap.Active() }

// Resize records a viewport resize signal and returns the generation to
// schedule after ResizeQuiet.
func (c *Controller) Resize() uint64 {
	return c.resize.Signal()
}

// ResizeDue reports whether the resize timer tagged gen should reconcile.
func (c *Controller) ResizeDue(gen uint64) bool {
	return c.resize.Fire(gen)
}
