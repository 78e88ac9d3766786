package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type FooterState struct {
	Mode      Command
	ModeInput string
	Snapping  bool

	DeckName string

	PinLabel  string
	SnapLabel string

	Panel       int
	TotalPanels int

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	SnapPillBG lipgloss.Color
	DeckNameFG lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		SnapPillBG: lipgloss.Color("#2ec4b6"),
		DeckNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.PinLabel == "" {
		st.PinLabel = "-"
	}
	if st.SnapLabel == "" {
		st.SnapLabel = "-"
	}
	if st.Legend == "" {
		st.Legend = "(? help · space next panel)"
	}
	if st.Panel < 0 {
		st.Panel = 0
	}
	if st.TotalPanels < 0 {
		st.TotalPanels = 0
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	gapW := 1
	pinValW := 6
	snapValW := 7
	statusFixedW := runeWidth(fmt.Sprintf("[PIN: %s] · [SNAP: %s]", strings.Repeat("X", pinValW), strings.Repeat("X", snapValW)))

	rightPlain := fmt.Sprintf(" Panel %d/%d", st.Panel, st.TotalPanels)
	rightPlain = truncatePlain(rightPlain, width)
	rightW := runeWidth(rightPlain)

	leftW := max(0, width-rightW)

	modeColW := clamp(leftW/4, 10, 24)
	statusColW := statusFixedW
	deckColW := leftW - modeColW - statusColW - 2*gapW
	if deckColW < 0 {
		deficit := -deckColW
		if statusColW > 10 {
			shrink := min(deficit, statusColW-10)
			statusColW -= shrink
			deficit -= shrink
		}
		if deficit > 0 && modeColW > 6 {
			shrink := min(deficit, modeColW-6)
			modeColW -= shrink
		}
		deckColW = leftW - modeColW - statusColW - 2*gapW
		if deckColW < 0 {
			modeColW = max(0, modeColW+deckColW)
			deckColW = 0
		}
	}

	modeText := footerModeLabel(st)
	modePillW := modeColW
	if runeWidth(modeText)+2 <= modeColW {
		modePillW = runeWidth(modeText) + 2
	}
	if slack := modeColW - modePillW; slack > 0 {
		modeColW = modePillW
		deckColW += slack
	}

	modeSeg := renderModeSegment(modeColW, st, styles)
	deckSeg := renderDeckSegment(deckColW, st, styles)
	statusSeg := renderPinSnapSegment(statusColW, st, styles, pinValW, snapValW)

	left := modeSeg + strings.Repeat(" ", gapW) + deckSeg + strings.Repeat(" ", gapW) + statusSeg
	if actual := modeColW + deckColW + statusColW + 2*gapW; actual < leftW {
		left += strings.Repeat(" ", leftW-actual)
	}

	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	leftW := max(0, width-runeWidth(legendPlain))

	msgPlain := truncatePlain(st.StatusMessage, leftW)
	msgPlain = padRightPlain(msgPlain, leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func footerModeLabel(st FooterState) string {
	if st.Mode == CmdNone && st.Snapping {
		return "SNAP"
	}
	return commandLabel(st.Mode)
}

func renderModeSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	content := truncatePlain(footerModeLabel(st), max(0, colW-2))
	pillPlain := truncatePlain(" "+content+" ", colW)
	pad := strings.Repeat(" ", colW-runeWidth(pillPlain))

	bg := styles.ModePillBG
	if st.Mode == CmdNone && st.Snapping {
		bg = styles.SnapPillBG
	}
	pill := ansiBg(bg) + ansiFg(styles.ModePillFG) + pillPlain
	pill += ansiBg(styles.BarBG) + ansiFg(styles.TextFG) + pad
	return pill
}

func renderDeckSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	name := strings.TrimSpace(st.DeckName)
	if name == "" {
		name = "(untitled deck)"
	}
	remaining := colW
	namePlain := truncatePlain("▸ "+name, remaining)
	remaining -= runeWidth(namePlain)

	inputPlain := ""
	if input := strings.TrimSpace(st.ModeInput); input != "" && remaining > 0 {
		inputPlain = truncatePlain(" ▸ "+input, remaining)
		remaining -= runeWidth(inputPlain)
	}
	pad := strings.Repeat(" ", max(0, remaining))
	return applyFG(namePlain, styles.DeckNameFG, styles.TextFG) + inputPlain + pad
}

func renderPinSnapSegment(colW int, st FooterState, styles FooterStyles, pinValW, snapValW int) string {
	if colW <= 0 {
		return ""
	}
	pin := truncatePlain(strings.TrimSpace(st.PinLabel), pinValW)
	snap := truncatePlain(strings.TrimSpace(st.SnapLabel), snapValW)

	plain := fmt.Sprintf("[PIN: %s] · [SNAP: %s]", pin, snap)
	plain = padRightPlain(truncatePlain(plain, colW), colW)
	return applyFG(plain, styles.DimFG, styles.TextFG)
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + "\x1b[0m"
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "JUMP"
	case CmdSearch:
		return "SEARCH"
	default:
		return "NORMAL"
	}
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return "\x1b[49m"
		}
		return "\x1b[39m"
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		r, _ := strconv.ParseInt(s[1:3], 16, 0)
		g, _ := strconv.ParseInt(s[3:5], 16, 0)
		b, _ := strconv.ParseInt(s[5:7], 16, 0)
		code := 38
		if isBg {
			code = 48
		}
		return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", code, r, g, b)
	}
	return ""
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(s, w)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}

func runeWidth(s string) int {
	return runewidth.StringWidth(s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
