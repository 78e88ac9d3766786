package scroll

// Opacity is the scrubbed opacity of the panel behind t. The entry window
// runs from "top of panel reaches viewport bottom" to "top of panel reaches
// viewport top". The first panel is always opaque.
func Opacity(t Trigger, offset, viewportHeight float64) float64 {
	if t.Index == 0 {
		return 1
	}
	end := t.StartOffset
	if viewportHeight <= 0 {
		if offset >= end {
			return 1
		}
		return 0
	}
	start := end - viewportHeight
	return clamp((offset-start)/viewportHeight, 0, 1)
}

// Fades returns the opacity of every panel at offset, index-aligned.
func Fades(l Layout, offset float64) []float64 {
	if l.Empty() {
		return nil
	}
	out := make([]float64, len(l.Triggers))
	for i, t := range l.Triggers {
		out[i] = Opacity(t, offset, l.ViewportHeight)
	}
	return out
}
