package main

import (
	"fmt"

	"github.com/andareed/sfdeck/clipboard"
	"github.com/andareed/sfdeck/logging"
	tea "github.com/charmbracelet/bubbletea"
)

// copyPanelText is swapped out in tests.
var copyPanelText = clipboard.Copy

func (m *model) copyActivePanel() tea.Cmd {
	a := m.frame.Active
	if a < 0 || a >= len(m.data.panels) {
		return m.startNotice("Nothing to copy", "warn", noticeDuration)
	}
	if err := copyPanelText(m.data.panels[a].String()); err != nil {
		logging.Warnf("copy panel %d: %v", a+1, err)
		return m.startNotice("Copy failed: "+err.Error(), "error", noticeDuration)
	}
	return m.startNotice(fmt.Sprintf("Panel %d copied", a+1), "success", noticeDuration)
}
