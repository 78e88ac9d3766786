package main

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

// TestPanelLayoutFullHeight verifies full panels fill at least one viewport
func TestPanelLayoutFullHeight(t *testing.T) {
	p := newRenderedPanel(panelSource{Title: "Intro", Body: "short"}, 0, colorful.Color{})
	p.Layout(40, 12)

	if p.height != 12 {
		t.Errorf("Expected height 12, got %d", p.height)
	}
	if len(p.lines) != p.height {
		t.Errorf("Expected %d lines, got %d", p.height, len(p.lines))
	}
	if !p.lines[panelPadY].accent || p.lines[panelPadY].text != "Intro" {
		t.Errorf("Expected accented title on row %d, got %+v", panelPadY, p.lines[panelPadY])
	}
}

// TestPanelLayoutFit verifies fitted panels take only their content height
func TestPanelLayoutFit(t *testing.T) {
	p := newRenderedPanel(panelSource{Title: "Contact", Body: "hello@example.com", Fit: true}, 0, colorful.Color{})
	p.Layout(40, 12)

	// pad + title + blank + body + pad
	if p.height != 5 {
		t.Errorf("Expected height 5, got %d", p.height)
	}
}

// TestPanelLayoutWraps verifies narrower viewports make panels taller
func TestPanelLayoutWraps(t *testing.T) {
	src := panelSource{Body: "one two three four five six seven eight nine ten", Fit: true}
	wide := newRenderedPanel(src, 0, colorful.Color{})
	narrow := newRenderedPanel(src, 0, colorful.Color{})
	wide.Layout(80, 5)
	narrow.Layout(14, 5)

	if narrow.height <= wide.height {
		t.Errorf("Expected narrow height > wide height, got %d and %d", narrow.height, wide.height)
	}
}

// TestPanelIDStable verifies the id ignores case and surrounding space
func TestPanelIDStable(t *testing.T) {
	a := newRenderedPanel(panelSource{Title: "Work", Body: "Films"}, 0, colorful.Color{})
	b := newRenderedPanel(panelSource{Title: " work ", Body: "films\n"}, 3, colorful.Color{})

	if a.id != b.id {
		t.Errorf("Expected equal ids, got %d and %d", a.id, b.id)
	}
	if a.String() != "Work\n\nFilms" {
		t.Errorf("Expected plain text, got %q", a.String())
	}
}

// TestPanelSetMeasurer verifies the set reports measured heights
func TestPanelSetMeasurer(t *testing.T) {
	set := panelSet{{height: 4}, {height: 9}}
	if set.PanelCount() != 2 || set.PanelHeight(1) != 9 {
		t.Errorf("Expected 2 panels with second height 9, got %d and %f", set.PanelCount(), set.PanelHeight(1))
	}
}
