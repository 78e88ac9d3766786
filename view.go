package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/andareed/sfdeck/dialogs"
	"github.com/andareed/sfdeck/logging"
	"github.com/andareed/sfdeck/scroll"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return dialogs.Overlay(m.terminalWidth, m.terminalHeight, m.activeDialog.View())
	}

	framed := frameStyle.Render(m.viewport.View())
	contentW := lipgloss.Width(framed)
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(contentW),
		framed,
		m.footerView(contentW),
	))
}

// headerView shows the deck title and a progress rule scaled to the
// normalised scroll position.
func (m *model) headerView(width int) string {
	title := m.data.deck.Title
	if title == "" {
		title = deckName(m)
	}
	title = titleStyle.Render(title)

	layout := m.ctrl.Layout()
	progress := scroll.Normalize(m.offset, layout.MaxScroll)
	ruleW := width - lipgloss.Width(title) - 4
	if ruleW < 0 {
		ruleW = 0
	}
	filled := int(math.Round(progress * float64(ruleW)))
	rule := strings.Repeat(progressFilled, filled) + dimStyle.Render(strings.Repeat(progressEmpty, ruleW-filled))
	return headerStyle.Render(title + "  " + rule)
}

func (m *model) footerView(width int) string {
	logging.Debugf("footerView mode=%d cmd=%d", m.ui.mode, m.ui.command.cmd)
	styles := DefaultFooterStyles()

	layout := m.ctrl.Layout()
	st := FooterState{
		Mode:        CmdNone,
		DeckName:    deckName(m),
		Panel:       m.frame.Active + 1,
		TotalPanels: len(layout.Triggers),
		PinLabel:    "-",
		SnapLabel:   "-",
		Snapping:    m.ctrl.Snapping(),
		Legend:      "(? help · space next · : jump · / search · e export · y copy)",
	}
	if m.ui.mode == modeCommand {
		st.Mode = m.ui.command.cmd
		st.ModeInput = m.activeCommandLine()
	}
	if a := m.frame.Active; a >= 0 && a < len(m.frame.Pins) {
		st.PinLabel = m.frame.Pins[a].State.String()
		st.SnapLabel = fmt.Sprintf("%.0f", m.frame.SnapTarget)
	}
	if m.ui.noticeMsg != "" {
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}
	if st.StatusMessage == "" && !layout.Empty() {
		st.StatusMessage = fmt.Sprintf("offset %.0f/%.0f (%.0f%%)",
			m.offset, layout.MaxScroll, 100*scroll.Normalize(m.offset, layout.MaxScroll))
	}
	if layout.Empty() {
		st.StatusMessage = "deck has no panels"
	}

	if logging.IsDebugMode() {
		debug := fmt.Sprintf(" dbg term=%dx%d vp=%dx%d off=%.2f snap=%v",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height,
			m.offset, m.ctrl.Snapping(),
		)
		st.Legend = st.Legend + " |" + debug
	}

	return RenderFooter(width, st, styles)
}

// compose paints one viewport frame. Panels are drawn in deck order, so a
// later panel scrolls over a pinned earlier one. Rows nothing covers keep
// the deck background.
func (m *model) compose() string {
	width, height := m.viewport.Width, m.viewport.Height
	if width <= 0 || height <= 0 {
		return ""
	}
	theme := m.data.deck.Theme
	blank := rowPrefix(theme.Background, theme.Background) + strings.Repeat(" ", width) + rowSuffix

	rows := make([]string, height)
	for i := range rows {
		rows[i] = blank
	}

	for _, pin := range m.frame.Pins {
		if pin.Index >= len(m.data.panels) {
			continue
		}
		p := &m.data.panels[pin.Index]
		opacity := 1.0
		if pin.Index < len(m.frame.Opacities) {
			opacity = m.frame.Opacities[pin.Index]
		}
		if opacity <= 0 {
			continue
		}
		top := int(math.Round(pin.Y))
		if top >= height || top+len(p.lines) <= 0 {
			continue
		}
		for r, line := range p.lines {
			y := top + r
			if y < 0 || y >= height {
				continue
			}
			rows[y] = renderPanelLine(line, p.accent, theme, opacity, width)
		}
	}
	return strings.Join(rows, "\n")
}

// renderPanelLine draws a rail in the panel accent and the line text, both
// blended toward the background by opacity.
func renderPanelLine(line panelLine, accent colorful.Color, theme deckTheme, opacity float64, width int) string {
	fg := theme.Foreground
	if line.accent {
		fg = accent
	}
	textFG := fade(theme.Background, fg, opacity)
	railFG := fade(theme.Background, accent, opacity)

	railW := runewidth.StringWidth(railGlyph)
	text := strings.Repeat(" ", panelPadX-railW) + line.text
	text = runewidth.Truncate(text, width-railW, "")
	text = runewidth.FillRight(text, width-railW)

	bold := ""
	if line.accent {
		bold = termenv.CSI + termenv.BoldSeq + "m"
	}
	return rowPrefix(theme.Background, railFG) + railGlyph +
		fgSeq(textFG) + bold + text + rowSuffix
}

// fade blends fg toward bg; opacity 0 is invisible, 1 is full colour.
func fade(bg, fg colorful.Color, opacity float64) colorful.Color {
	if opacity >= 1 {
		return fg
	}
	if opacity <= 0 {
		return bg
	}
	return bg.BlendLab(fg, opacity).Clamped()
}

var rowSuffix = termenv.CSI + termenv.ResetSeq + "m"

func rowPrefix(bg, fg colorful.Color) string {
	return bgSeq(bg) + fgSeq(fg)
}

func fgSeq(c colorful.Color) string {
	return colorSeq(c, false)
}

func bgSeq(c colorful.Color) string {
	return colorSeq(c, true)
}

func colorSeq(c colorful.Color, bg bool) string {
	profile := lipgloss.ColorProfile()
	tc := profile.Color(c.Hex())
	if _, none := tc.(termenv.NoColor); tc == nil || none {
		return ""
	}
	return termenv.CSI + tc.Sequence(bg) + "m"
}
