package scroll

// PinMode says how a panel is held once its trigger fires.
type PinMode int

const (
	// PinTop holds a panel shorter than the viewport with its top on the
	// viewport top.
	PinTop PinMode = iota
	// PinBottom lets a tall panel scroll its excess height, then holds it
	// with its bottom on the viewport bottom.
	PinBottom
)

func (m PinMode) String() string {
	switch m {
	case PinBottom:
		return "bottom"
	default:
		return "top"
	}
}

// Trigger is the derived scroll geometry of one panel. Triggers are never
// mutated; a resize produces a new set.
type Trigger struct {
	Index  int
	Height float64
	Mode   PinMode

	// StartOffset is the offset at which the panel's top reaches the
	// viewport top. Pinning reserves no spacing, so this is the summed
	// height of every earlier panel.
	StartOffset float64
	// EndOffset closes the active window: the panel's bottom reaches the
	// viewport bottom. Equal to StartOffset for panels shorter than the
	// viewport.
	EndOffset float64
	// ReleaseOffset is where the panel has been scrolled fully past and
	// stops being pinned.
	ReleaseOffset float64
	// PinY is the lowest top row the panel may take while pinned: 0 for
	// short panels, viewportHeight-Height for tall ones.
	PinY float64
}

// WindowLength is the scroll distance of the active window.
func (t Trigger) WindowLength() float64 {
	return t.EndOffset - t.StartOffset
}

// ComputeTriggers derives one trigger per panel, index-aligned. A
// non-positive viewport yields zero-width windows.
func ComputeTriggers(panels []Panel, viewportHeight float64) []Trigger {
	if len(panels) == 0 {
		return nil
	}
	vh := sanitize(viewportHeight)
	triggers := make([]Trigger, len(panels))

	var cursor float64
	for i, p := range panels {
		h := sanitize(p.Height)
		t := Trigger{
			Index:       i,
			Height:      h,
			StartOffset: cursor,
			Mode:        PinTop,
		}
		switch {
		case vh <= 0:
			t.EndOffset = cursor
			t.ReleaseOffset = cursor
		case h < vh:
			t.EndOffset = cursor
			t.ReleaseOffset = cursor + h
		default:
			t.Mode = PinBottom
			t.EndOffset = cursor + (h - vh)
			t.ReleaseOffset = cursor + h
			t.PinY = vh - h
		}
		triggers[i] = t
		cursor += h
	}
	return triggers
}
