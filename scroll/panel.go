package scroll

import "math"

// Panel is one full-viewport surface of the deck. Identity is positional.
type Panel struct {
	Index  int
	Height float64
}

// Measurer reports live panel geometry for the current layout pass.
type Measurer interface {
	PanelCount() int
	PanelHeight(i int) float64
}

// RegisterPanels reads the ordered panel set from m. Heights are captured at
// call time and must be re-read after every resize.
func RegisterPanels(m Measurer) []Panel {
	if m == nil {
		return nil
	}
	n := m.PanelCount()
	if n <= 0 {
		return nil
	}
	panels := make([]Panel, n)
	for i := range panels {
		panels[i] = Panel{Index: i, Height: sanitize(m.PanelHeight(i))}
	}
	return panels
}

// Heights is a Measurer over a fixed slice of heights.
type Heights []float64

func (h Heights) PanelCount() int           { return len(h) }
func (h Heights) PanelHeight(i int) float64 { return h[i] }

// sanitize maps negative, NaN and infinite measurements to zero.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
