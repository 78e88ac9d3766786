package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/andareed/sfdeck/scroll"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const (
	defaultFrameInterval = 16 * time.Millisecond
	defaultBackground    = "#101010"
	defaultForeground    = "#e0e0e0"
	defaultAccent        = "#ff9f1c"
)

// --- File format ---

type timingConfig struct {
	SnapMS           int `yaml:"snap_ms"`
	ResizeDebounceMS int `yaml:"resize_debounce_ms"`
	SettleMS         int `yaml:"settle_ms"`
	FrameMS          int `yaml:"frame_ms"`
}

type themeConfig struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Accent     string `yaml:"accent"`
}

type panelSource struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Color string `yaml:"color"`
	// Fit sizes the panel to its content instead of the full viewport.
	Fit bool `yaml:"fit"`
}

type deckFile struct {
	Title  string        `yaml:"title"`
	Timing timingConfig  `yaml:"timing"`
	Theme  themeConfig   `yaml:"theme"`
	Panels []panelSource `yaml:"panels"`
}

// configFile is the optional --config overlay.
type configFile struct {
	Timing timingConfig `yaml:"timing"`
	Theme  themeConfig  `yaml:"theme"`
}

// --- Resolved deck ---

type deckConfig struct {
	Scroll        scroll.Config
	FrameInterval time.Duration
}

type deckTheme struct {
	Background colorful.Color
	Foreground colorful.Color
	Accent     colorful.Color
}

type deck struct {
	Title  string
	Path   string
	Config deckConfig
	Theme  deckTheme
	Panels []panelSource
}

func defaultDeckConfig() deckConfig {
	return deckConfig{
		Scroll:        scroll.DefaultConfig(),
		FrameInterval: defaultFrameInterval,
	}
}

// apply overrides cfg with every positive timing.
func (t timingConfig) apply(cfg *deckConfig) {
	if t.SnapMS > 0 {
		cfg.Scroll.SnapDuration = time.Duration(t.SnapMS) * time.Millisecond
	}
	if t.ResizeDebounceMS > 0 {
		cfg.Scroll.ResizeQuiet = time.Duration(t.ResizeDebounceMS) * time.Millisecond
	}
	if t.SettleMS > 0 {
		cfg.Scroll.SettleDelay = time.Duration(t.SettleMS) * time.Millisecond
	}
	if t.FrameMS > 0 {
		cfg.FrameInterval = time.Duration(t.FrameMS) * time.Millisecond
	}
}

func (th themeConfig) apply(theme *deckTheme) error {
	set := func(dst *colorful.Color, hex, name string) error {
		if hex == "" {
			return nil
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return fmt.Errorf("theme %s %q: %w", name, hex, err)
		}
		*dst = c
		return nil
	}
	return errors.Join(
		set(&theme.Background, th.Background, "background"),
		set(&theme.Foreground, th.Foreground, "foreground"),
		set(&theme.Accent, th.Accent, "accent"),
	)
}

func defaultTheme() deckTheme {
	bg, _ := colorful.Hex(defaultBackground)
	fg, _ := colorful.Hex(defaultForeground)
	ac, _ := colorful.Hex(defaultAccent)
	return deckTheme{Background: bg, Foreground: fg, Accent: ac}
}

// --- Public API ---

// LoadDeck reads a YAML deck from path.
func LoadDeck(path string) (*deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck: %w", err)
	}
	defer f.Close()

	d, err := decodeDeck(f)
	if err != nil {
		return nil, fmt.Errorf("deck %q: %w", path, err)
	}
	d.Path = path
	return d, nil
}

func decodeDeck(r io.Reader) (*deck, error) {
	var df deckFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&df); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}

	d := &deck{
		Title:  df.Title,
		Config: defaultDeckConfig(),
		Theme:  defaultTheme(),
		Panels: df.Panels,
	}
	df.Timing.apply(&d.Config)
	if err := df.Theme.apply(&d.Theme); err != nil {
		return nil, err
	}
	for i, p := range d.Panels {
		if p.Color == "" {
			continue
		}
		if _, err := colorful.Hex(p.Color); err != nil {
			return nil, fmt.Errorf("panel %d color %q: %w", i+1, p.Color, err)
		}
	}
	return d, nil
}

// ApplyConfigFile overlays the timings and theme from a --config file.
func (d *deck) ApplyConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var cf configFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cf); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config %q: %w", path, err)
	}
	cf.Timing.apply(&d.Config)
	if err := cf.Theme.apply(&d.Theme); err != nil {
		return fmt.Errorf("config %q: %w", path, err)
	}
	return nil
}
