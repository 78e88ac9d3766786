package scroll

import "math"

// Layout is an immutable snapshot of every trigger and snap target for one
// viewport geometry. It is rebuilt wholesale on every reconciliation.
type Layout struct {
	ViewportHeight float64
	Triggers       []Trigger
	SnapTargets    []float64
	TotalHeight    float64
	MaxScroll      float64
}

// BuildLayout measures nothing itself: it derives triggers from panels and
// packs them with their snap targets.
func BuildLayout(panels []Panel, viewportHeight float64) Layout {
	triggers := ComputeTriggers(panels, viewportHeight)
	vh := sanitize(viewportHeight)

	l := Layout{
		ViewportHeight: vh,
		Triggers:       triggers,
		SnapTargets:    make([]float64, len(triggers)),
	}
	for i, t := range triggers {
		// StartOffset is non-decreasing, so the targets come out sorted.
		l.SnapTargets[i] = t.StartOffset
		l.TotalHeight += t.Height
	}
	if l.TotalHeight > vh {
		l.MaxScroll = l.TotalHeight - vh
	}
	return l
}

// Empty reports whether the layout has no panels.
func (l Layout) Empty() bool {
	return len(l.Triggers) == 0
}

// ClampOffset limits offset to [0, MaxScroll].
func (l Layout) ClampOffset(offset float64) float64 {
	return clamp(offset, 0, l.MaxScroll)
}

// ActiveIndex returns the panel whose start is the last one at or above the
// offset, or -1 for an empty layout.
func (l Layout) ActiveIndex(offset float64) int {
	idx := -1
	for i, s := range l.SnapTargets {
		if s > offset {
			break
		}
		idx = i
	}
	if idx < 0 && len(l.SnapTargets) > 0 {
		return 0
	}
	return idx
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
