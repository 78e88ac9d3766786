package main

import (
	"regexp"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plainRows(s string) []string {
	rows := strings.Split(ansiSeq.ReplaceAllString(s, ""), "\n")
	for i := range rows {
		rows[i] = strings.TrimSpace(rows[i])
	}
	return rows
}

// TestComposeLaterPanelCoversPinned verifies the next panel scrolls over a pinned one
func TestComposeLaterPanelCoversPinned(t *testing.T) {
	m, _ := newTestModel(t, testDeck("One", "Two"))
	m.offset = 5
	m.refresh()

	rows := plainRows(m.compose())
	if len(rows) != 10 {
		t.Fatalf("Expected 10 rows, got %d", len(rows))
	}
	if !strings.Contains(rows[1], "One") {
		t.Errorf("Expected pinned title on row 1, got %q", rows[1])
	}
	if !strings.Contains(rows[6], "Two") {
		t.Errorf("Expected next title on row 6, got %q", rows[6])
	}
	if !strings.Contains(rows[8], "body of Two") {
		t.Errorf("Expected next body on row 8, got %q", rows[8])
	}
}

// TestComposeSkipsInvisiblePanels verifies a panel at opacity 0 is not drawn
func TestComposeSkipsInvisiblePanels(t *testing.T) {
	m, _ := newTestModel(t, testDeck("One", "Two"))
	m.offset = 5
	m.refresh()
	m.frame.Opacities[1] = 0

	rows := plainRows(m.compose())
	for i, row := range rows {
		if strings.Contains(row, "Two") {
			t.Errorf("Expected hidden panel, found it on row %d", i)
		}
	}
}

// TestComposeRowWidth verifies every row fills the viewport width
func TestComposeRowWidth(t *testing.T) {
	m, _ := newTestModel(t, testDeck("One", "Two"))
	m.offset = 3
	m.refresh()

	for i, row := range strings.Split(ansiSeq.ReplaceAllString(m.compose(), ""), "\n") {
		if w := runewidth.StringWidth(row); w != m.viewport.Width {
			t.Errorf("Expected row %d width %d, got %d", i, m.viewport.Width, w)
		}
	}
}

// TestFade verifies blending endpoints
func TestFade(t *testing.T) {
	bg, _ := colorful.Hex("#000000")
	fg, _ := colorful.Hex("#ffffff")

	if got := fade(bg, fg, 1).Hex(); got != "#ffffff" {
		t.Errorf("Expected #ffffff, got %s", got)
	}
	if got := fade(bg, fg, 0).Hex(); got != "#000000" {
		t.Errorf("Expected #000000, got %s", got)
	}
	mid := fade(bg, fg, 0.5)
	if l, _, _ := mid.Lab(); l <= 0.3 || l >= 0.7 {
		t.Errorf("Expected mid lightness, got %f", l)
	}
}
