package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// searchOnce snaps to the first panel after the active one whose text
// contains query, wrapping around the deck.
func (m *model) searchOnce(query string) tea.Cmd {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	m.ui.searchQuery = query
	return m.searchNext()
}

func (m *model) searchNext() tea.Cmd {
	if m.ui.searchQuery == "" || !m.hasPanels() {
		return nil
	}
	idx := findPanel(m.data.panels, m.ui.searchQuery, m.frame.Active)
	if idx < 0 {
		return m.startNotice(fmt.Sprintf("No panel matches %q", m.ui.searchQuery), "warn", noticeDuration)
	}
	return m.snapToPanel(idx)
}

func findPanel(panels panelSet, query string, after int) int {
	n := len(panels)
	if n == 0 {
		return -1
	}
	q := strings.ToLower(query)
	for step := 1; step <= n; step++ {
		i := ((after+step)%n + n) % n
		if strings.Contains(strings.ToLower(panels[i].String()), q) {
			return i
		}
	}
	return -1
}
