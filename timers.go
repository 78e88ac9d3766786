package main

import (
	"time"

	"github.com/andareed/sfdeck/logging"
	"github.com/andareed/sfdeck/scroll"
	tea "github.com/charmbracelet/bubbletea"
)

// Every timer message carries the generation it was scheduled for. The
// controller rejects stale generations, which is how timers are cancelled.
type (
	settleMsg    struct{ gen uint64 }
	snapFrameMsg struct{ gen uint64 }
	resizeMsg    struct{ gen uint64 }
)

func (m *model) settleAfter(gen uint64) tea.Cmd {
	return tea.Tick(m.ctrl.Config().SettleDelay, func(time.Time) tea.Msg { return settleMsg{gen: gen} })
}

func (m *model) frameAfter(gen uint64) tea.Cmd {
	return tea.Tick(m.data.deck.Config.FrameInterval, func(time.Time) tea.Msg { return snapFrameMsg{gen: gen} })
}

func (m *model) resizeAfter(gen uint64) tea.Cmd {
	return tea.Tick(m.ctrl.Config().ResizeQuiet, func(time.Time) tea.Msg { return resizeMsg{gen: gen} })
}

// scrollBy applies user scroll input. Any snap in flight is cancelled and a
// fresh settle timer is started.
func (m *model) scrollBy(delta float64) tea.Cmd {
	if !m.hasPanels() {
		return nil
	}
	m.offset = m.ctrl.Layout().ClampOffset(m.offset + delta)
	gen := m.ctrl.ScrollInput()
	m.refresh()
	return m.settleAfter(gen)
}

func (m *model) handleSettle(gen uint64) tea.Cmd {
	motion, ok := m.ctrl.Settle(gen, m.scrollState(), m.now())
	if !ok {
		return nil
	}
	logging.Debugf("snap: %.1f -> %.1f (progress %.3f)", motion.From, motion.To, motion.Progress)
	return m.frameAfter(motion.Gen)
}

func (m *model) handleSnapFrame(gen uint64) tea.Cmd {
	offset, done, ok := m.ctrl.Step(gen, m.now())
	if !ok {
		return nil
	}
	m.offset = offset
	m.refresh()
	if done {
		logging.Debugf("snap: settled at %.1f", offset)
		return nil
	}
	return m.frameAfter(gen)
}

// snapToPanel starts an eased scroll to the start of panel idx.
func (m *model) snapToPanel(idx int) tea.Cmd {
	motion, ok := m.ctrl.SnapTo(idx, m.scrollState(), m.now())
	if !ok {
		return nil
	}
	logging.Debugf("snap to panel %d: %.1f -> %.1f", idx+1, motion.From, motion.To)
	return m.frameAfter(motion.Gen)
}

// handleWindowSize applies the new terminal size at once so the frame fits,
// but defers re-measuring panels until the resize storm has settled.
func (m *model) handleWindowSize(msg tea.WindowSizeMsg) tea.Cmd {
	m.terminalWidth, m.terminalHeight = msg.Width, msg.Height
	w, h := viewportSize(msg.Width, msg.Height)
	m.viewport.Width = w
	m.viewport.Height = h

	if !m.ready {
		m.ready = true
		m.reconcile()
		return nil
	}
	gen := m.ctrl.Resize()
	m.refresh()
	return m.resizeAfter(gen)
}

func (m *model) handleResizeDue(gen uint64) tea.Cmd {
	if !m.ctrl.ResizeDue(gen) {
		return nil
	}
	m.reconcile()
	// The old offset may now sit between panels.
	return m.settleAfter(m.ctrl.ScrollInput())
}

// reconcile re-measures every panel against the current viewport, swaps in
// a fresh layout and repaints, which also drops stale pin overrides.
func (m *model) reconcile() {
	for i := range m.data.panels {
		m.data.panels[i].Layout(m.viewport.Width, m.viewport.Height)
	}
	layout := m.ctrl.Reconcile(m.data.panels, float64(m.viewport.Height))
	m.offset = layout.ClampOffset(m.offset)
	logging.Debugf("reconcile: vp=%dx%d panels=%d total=%.0f max=%.0f",
		m.viewport.Width, m.viewport.Height, len(layout.Triggers), layout.TotalHeight, layout.MaxScroll)
	m.refresh()
}

// refresh runs one controller tick for the current offset and repaints.
func (m *model) refresh() {
	m.frame = m.ctrl.Tick(m.scrollState())
	m.offset = m.frame.Offset
	for _, t := range m.frame.Transitions {
		logging.Debugf("pin: panel %d %s -> %s at %.1f", t.Index+1, t.From, t.To, m.offset)
	}
	m.viewport.SetContent(m.compose())
}

func (m *model) scrollState() scroll.ScrollState {
	return scroll.ScrollState{Offset: m.offset}
}
