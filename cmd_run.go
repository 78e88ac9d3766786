package main

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) runCommand() tea.Cmd {
	switch m.ui.command.cmd {
	case CmdJump:
		if n, err := strconv.Atoi(strings.TrimSpace(m.ui.command.buf)); err == nil {
			return m.jumpToPanelNumber(n)
		}
		return m.startNotice("Invalid panel number", "warn", noticeDuration)

	case CmdSearch:
		return m.searchOnce(m.ui.command.buf)
	}
	return nil
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// universal cancel
	if msg.Type == tea.KeyEsc {
		m.exitCommandMode()
		return m, nil
	}

	// commit
	if msg.Type == tea.KeyEnter {
		cmd := m.runCommand()
		m.exitCommandMode()
		return m, cmd
	}

	// editing
	switch msg.Type {
	case tea.KeyBackspace:
		if r := []rune(m.ui.command.buf); len(r) > 0 {
			m.ui.command.buf = string(r[:len(r)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.ui.command.buf += " "
		return m, nil
	}

	// append printable runes
	if msg.Type == tea.KeyRunes {
		m.ui.command.buf += string(msg.Runes)
	}
	return m, nil
}
