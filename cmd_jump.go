package main

import (
	"fmt"

	"github.com/andareed/sfdeck/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) jumpToStart() tea.Cmd {
	logging.Debug("jumpToStart called")
	return m.snapToPanel(0)
}

func (m *model) jumpToEnd() tea.Cmd {
	logging.Debug("jumpToEnd called")
	return m.snapToPanel(len(m.data.panels) - 1)
}

func (m *model) jumpRelative(delta int) tea.Cmd {
	if !m.hasPanels() {
		return nil
	}
	target := m.frame.Active + delta
	if target < 0 || target >= len(m.data.panels) {
		return nil
	}
	return m.snapToPanel(target)
}

// jumpToPanelNumber takes the 1-based number shown in the footer.
func (m *model) jumpToPanelNumber(n int) tea.Cmd {
	logging.Debugf("jumpToPanelNumber %d", n)
	if !m.hasPanels() {
		return m.startNotice("Deck has no panels", "warn", noticeDuration)
	}
	if n <= 0 || n > len(m.data.panels) {
		return m.startNotice(fmt.Sprintf("Panel %d out of bounds", n), "warn", noticeDuration)
	}
	return m.snapToPanel(n - 1)
}

func (m *model) hasPanels() bool {
	return len(m.data.panels) > 0 && !m.ctrl.Layout().Empty()
}
