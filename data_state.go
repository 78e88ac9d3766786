package main

type dataState struct {
	deck   *deck
	panels panelSet
}

func newDataState(d *deck) dataState {
	panels := make(panelSet, len(d.Panels))
	for i, src := range d.Panels {
		panels[i] = newRenderedPanel(src, i, d.Theme.Accent)
	}
	return dataState{deck: d, panels: panels}
}
