package main

import (
	"hash/fnv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"
)

const (
	panelPadX = 2
	panelPadY = 1
)

type panelLine struct {
	text   string
	accent bool
}

type renderedPanel struct {
	src    panelSource
	index  int
	id     uint64
	accent colorful.Color
	lines  []panelLine
	height int
}

func newRenderedPanel(src panelSource, index int, fallback colorful.Color) renderedPanel {
	p := renderedPanel{src: src, index: index, accent: fallback}
	if src.Color != "" {
		if c, err := colorful.Hex(src.Color); err == nil {
			p.accent = c
		}
	}
	p.id = p.ComputeID()
	return p
}

// ComputeID hashes the normalised panel text, so the id is stable across
// resizes.
func (p renderedPanel) ComputeID() uint64 {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(p.src.Title))))
	h.Write([]byte{0})
	h.Write([]byte(strings.ToLower(strings.TrimSpace(p.src.Body))))
	return h.Sum64()
}

// String is the plain text of the panel, used for search and copy.
func (p *renderedPanel) String() string {
	title := strings.TrimSpace(p.src.Title)
	body := strings.TrimSpace(p.src.Body)
	switch {
	case title == "":
		return body
	case body == "":
		return title
	}
	return title + "\n\n" + body
}

// Layout wraps the panel to width and sets its height. Full panels are at
// least one viewport tall; fitted panels take only what their text needs.
func (p *renderedPanel) Layout(width, viewportHeight int) {
	inner := width - 2*panelPadX
	if inner < 1 {
		inner = 1
	}

	lines := make([]panelLine, 0, 8)
	for i := 0; i < panelPadY; i++ {
		lines = append(lines, panelLine{})
	}
	if title := strings.TrimSpace(p.src.Title); title != "" {
		for _, l := range strings.Split(wordwrap.String(title, inner), "\n") {
			lines = append(lines, panelLine{text: l, accent: true})
		}
		lines = append(lines, panelLine{})
	}
	if body := strings.TrimRight(p.src.Body, "\n"); body != "" {
		for _, l := range strings.Split(wordwrap.String(body, inner), "\n") {
			lines = append(lines, panelLine{text: l})
		}
	}
	for i := 0; i < panelPadY; i++ {
		lines = append(lines, panelLine{})
	}

	height := len(lines)
	if !p.src.Fit && height < viewportHeight {
		height = viewportHeight
	}
	for len(lines) < height {
		lines = append(lines, panelLine{})
	}
	p.lines = lines
	p.height = height
}

// panelSet adapts the deck's panels to the scroll registry.
type panelSet []renderedPanel

func (s panelSet) PanelCount() int           { return len(s) }
func (s panelSet) PanelHeight(i int) float64 { return float64(s[i].height) }
