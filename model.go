package main

import (
	"time"

	"github.com/andareed/sfdeck/dialogs"
	"github.com/andareed/sfdeck/logging"
	"github.com/andareed/sfdeck/scroll"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type model struct {
	data dataState
	ui   uiState

	ctrl     *scroll.Controller
	viewport viewport.Model
	ready    bool
	offset   float64
	frame    scroll.Frame

	terminalWidth  int
	terminalHeight int

	activeDialog dialogs.Dialog
	now          func() time.Time
}

func newModel(d *deck) *model {
	return &model{
		data:     newDataState(d),
		ctrl:     scroll.New(d.Config.Scroll),
		viewport: viewport.New(0, 0),
		now:      time.Now,
		frame:    scroll.Frame{Active: -1},
	}
}

func (m *model) Init() tea.Cmd {
	logging.Infof("sfdeck: initialised with %d panels", len(m.data.panels))
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.handleWindowSize(msg)
	case resizeMsg:
		return m, m.handleResizeDue(msg.gen)
	case settleMsg:
		return m, m.handleSettle(msg.gen)
	case snapFrameMsg:
		return m, m.handleSnapFrame(msg.gen)
	case clearNoticeMsg:
		m.clearNotice(msg.id)
		return m, nil

	case dialogs.ExportConfirmedMsg:
		m.closeDialog()
		if err := ExportLayout(m, msg.Path); err != nil {
			logging.Warnf("export %q failed: %v", msg.Path, err)
			return m, m.startNotice("Export failed: "+err.Error(), "error", noticeDuration)
		}
		logging.Infof("layout exported to %q", msg.Path)
		return m, m.startNotice("Layout exported to "+msg.Path, "success", noticeDuration)
	case dialogs.ExportCanceledMsg:
		m.closeDialog()
		return m, nil
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		d, cmd := m.activeDialog.Update(msg)
		m.activeDialog = d
		if !d.IsVisible() {
			m.closeDialog()
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ui.mode {
	case modeCommand:
		return m.handleCommandKey(msg)
	default:
		return m.handleViewModeKey(msg)
	}
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	half := float64(m.viewport.Height) / 2
	if half < 1 {
		half = 1
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.LineDown):
		return m, m.scrollBy(1)
	case key.Matches(msg, Keys.LineUp):
		return m, m.scrollBy(-1)
	case key.Matches(msg, Keys.HalfPageDown):
		return m, m.scrollBy(half)
	case key.Matches(msg, Keys.HalfPageUp):
		return m, m.scrollBy(-half)
	case key.Matches(msg, Keys.NextPanel):
		return m, m.jumpRelative(1)
	case key.Matches(msg, Keys.PrevPanel):
		return m, m.jumpRelative(-1)
	case key.Matches(msg, Keys.FirstPanel):
		return m, m.jumpToStart()
	case key.Matches(msg, Keys.LastPanel):
		return m, m.jumpToEnd()
	case key.Matches(msg, Keys.Jump):
		m.enterCommandMode(CmdJump)
	case key.Matches(msg, Keys.Search):
		m.enterCommandMode(CmdSearch)
	case key.Matches(msg, Keys.SearchNext):
		return m, m.searchNext()
	case key.Matches(msg, Keys.CopyPanel):
		return m, m.copyActivePanel()
	case key.Matches(msg, Keys.ExportLayout):
		return m, m.openDialog(dialogs.NewExportDialog(defaultExportName(m), ""))
	case key.Matches(msg, Keys.OpenHelp):
		return m, m.openDialog(dialogs.NewHelpDialog(Keys.Legend()))
	}
	return m, nil
}

const wheelStep = 3

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		return m.scrollBy(wheelStep)
	case tea.MouseButtonWheelUp:
		return m.scrollBy(-wheelStep)
	}
	return nil
}

func (m *model) openDialog(d dialogs.Dialog) tea.Cmd {
	m.activeDialog = d
	d.Show()
	return d.Focus()
}

func (m *model) closeDialog() {
	if m.activeDialog != nil {
		m.activeDialog.Hide()
	}
	m.activeDialog = nil
}
