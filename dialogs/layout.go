package dialogs

import "github.com/charmbracelet/lipgloss"

const overlayBG = "236"

// Overlay centres a dialog over a dimmed w x h screen.
func Overlay(width, height int, dialog string) string {
	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		dialog,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(overlayBG)),
	)
}

func boxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color(overlayBG)).
		Padding(1, 2).
		Width(60)
}
