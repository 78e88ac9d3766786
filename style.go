package main

import "github.com/charmbracelet/lipgloss"

const (
	frameBorderColor = "240"
	headerFGColor    = "#c0c0c0"
	railGlyph        = "▌"
	progressFilled   = "━"
	progressEmpty    = "─"
)

// Chrome around the viewport, in cells. Keep in sync with the styles below.
const (
	chromeMarginX = 2
	chromeMarginY = 1
	chromeBorder  = 1
	headerLines   = 1
	footerLines   = 2
)

var (
	appstyle    = lipgloss.NewStyle().Margin(chromeMarginY, chromeMarginX)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(headerFGColor)).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	frameStyle  = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(frameBorderColor))
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// viewportSize is the panel area left inside a terminal of w x h.
func viewportSize(w, h int) (int, int) {
	vw := w - 2*chromeMarginX - 2*chromeBorder
	vh := h - 2*chromeMarginY - 2*chromeBorder - headerLines - footerLines
	if vw < 0 {
		vw = 0
	}
	if vh < 0 {
		vh = 0
	}
	return vw, vh
}
