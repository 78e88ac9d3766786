package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/andareed/sfdeck/scroll"
)

// --- Wire format ---

const layoutExportVersion = 1

type layoutPanelDTO struct {
	Index        int     `json:"index"`
	Title        string  `json:"title"`
	Height       float64 `json:"height"`
	Start        float64 `json:"start"`
	End          float64 `json:"end"`
	Release      float64 `json:"release"`
	Mode         string  `json:"mode"`
	SnapFraction float64 `json:"snapFraction"`
}

type layoutDTO struct {
	Version        int              `json:"version"`
	Deck           string           `json:"deck"`
	ViewportWidth  int              `json:"viewportWidth"`
	ViewportHeight float64          `json:"viewportHeight"`
	TotalHeight    float64          `json:"totalHeight"`
	MaxScroll      float64          `json:"maxScroll"`
	Panels         []layoutPanelDTO `json:"panels"`
}

var layoutCSVHeader = []string{"index", "title", "height", "start", "end", "release", "mode", "snap_fraction"}

func toLayoutDTO(m *model) layoutDTO {
	l := m.ctrl.Layout()
	dto := layoutDTO{
		Version:        layoutExportVersion,
		Deck:           deckName(m),
		ViewportWidth:  m.viewport.Width,
		ViewportHeight: l.ViewportHeight,
		TotalHeight:    l.TotalHeight,
		MaxScroll:      l.MaxScroll,
		Panels:         make([]layoutPanelDTO, 0, len(l.Triggers)),
	}
	for i, t := range l.Triggers {
		title := ""
		if i < len(m.data.panels) {
			title = m.data.panels[i].src.Title
		}
		dto.Panels = append(dto.Panels, layoutPanelDTO{
			Index:        t.Index + 1,
			Title:        title,
			Height:       t.Height,
			Start:        t.StartOffset,
			End:          t.EndOffset,
			Release:      t.ReleaseOffset,
			Mode:         t.Mode.String(),
			SnapFraction: scroll.Normalize(l.SnapTargets[i], l.MaxScroll),
		})
	}
	return dto
}

// --- Public API ---

// ExportLayout writes the current trigger and snap layout to path, as JSON
// for a .json extension and CSV otherwise.
func ExportLayout(m *model, path string) error {
	dto := toLayoutDTO(m)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := json.MarshalIndent(dto, "", "  ")
		if err != nil {
			return fmt.Errorf("encode layout: %w", err)
		}
		return os.WriteFile(path, data, 0o600)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(layoutCSVHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range dto.Panels {
		rec := []string{
			strconv.Itoa(p.Index),
			p.Title,
			formatFloat(p.Height),
			formatFloat(p.Start),
			formatFloat(p.End),
			formatFloat(p.Release),
			p.Mode,
			strconv.FormatFloat(p.SnapFraction, 'f', 4, 64),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write panel %d: %w", p.Index, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// deckName is the deck file's base name without extension, falling back to
// the deck title.
func deckName(m *model) string {
	if p := m.data.deck.Path; p != "" {
		base := filepath.Base(p)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	if t := strings.TrimSpace(m.data.deck.Title); t != "" {
		return t
	}
	return "deck"
}

func defaultExportName(m *model) string {
	return deckName(m) + "-layout.csv"
}
