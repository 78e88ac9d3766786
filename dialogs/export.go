package dialogs

import (
	"fmt"
	"path/filepath"

	"github.com/andareed/sfdeck/logging"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// --- Messages ---------------------------------------------------------------

type (
	ExportConfirmedMsg struct{ Path string }
	ExportCanceledMsg  struct{}
)

// Export asks for the file the deck layout is written to.
type Export struct {
	input   textinput.Model
	visible bool
	// relative names land in lastDir when set
	lastDir string
}

func (d Export) Init() tea.Cmd { return d.input.Focus() }

func NewExportDialog(defaultName, lastDir string) *Export {
	ti := textinput.New()
	ti.Placeholder = defaultName
	ti.Prompt = "Export layout as: "
	ti.CharLimit = 256
	ti.Width = 40
	if defaultName != "" {
		ti.SetValue(defaultName)
	}
	return &Export{input: ti, visible: true, lastDir: lastDir}
}

func (d *Export) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			path := d.resolvePath()
			if path == "" {
				return d, nil
			}
			logging.Debugf("ExportDialog: confirmed %q", path)
			return d, func() tea.Msg { return ExportConfirmedMsg{Path: path} }
		case "esc":
			logging.Debug("ExportDialog: cancelled")
			return d, func() tea.Msg { return ExportCanceledMsg{} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

// resolvePath falls back to the placeholder for a blank input and places
// bare file names in lastDir.
func (d *Export) resolvePath() string {
	path := d.input.Value()
	if path == "" {
		path = d.input.Placeholder
	}
	if path == "" {
		return ""
	}
	if d.lastDir != "" && !filepath.IsAbs(path) && filepath.Dir(path) == "." {
		path = filepath.Join(d.lastDir, filepath.Base(path))
	}
	return path
}

func (d Export) View() string {
	if !d.visible {
		return ""
	}
	help := lipgloss.NewStyle().
		Faint(true).
		Render("enter to export (.csv or .json) • esc to cancel")

	content := fmt.Sprintf("%s\n\n%s", d.input.View(), help)
	return boxStyle().Render(content)
}

func (d *Export) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Export) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Export) Focus() tea.Cmd { return d.input.Focus() }
func (d *Export) Blur()          { d.input.Blur() }
func (d Export) IsVisible() bool { return d.visible }
