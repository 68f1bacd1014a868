// Package cadmodel holds the parsed, read-only representation of a CAD
// drawing — layers, blocks, entities, block references — produced by the
// dxf and dwg parsers and consumed by every later pipeline stage.
package cadmodel

import "strings"

// Layer is a DXF LAYER table record.
type Layer struct {
	Name     string
	Color    int
	LineType string
	Frozen   bool
	Locked   bool
	On       bool
}

// Visible reports whether entities on this layer should be considered for
// import absent an explicit override — on and not frozen.
func (l Layer) Visible() bool {
	return l.On && !l.Frozen
}

// LayerTable is the set of layers parsed from a model, looked up
// case-insensitively as required by spec (layer names are unique under a
// case-insensitive comparison).
type LayerTable struct {
	byFold map[string]*Layer
	order  []*Layer
}

// NewLayerTable returns an empty table.
func NewLayerTable() *LayerTable {
	return &LayerTable{byFold: make(map[string]*Layer)}
}

// Add inserts or replaces a layer. Lookup key is the case-folded name.
func (t *LayerTable) Add(l Layer) {
	key := strings.ToLower(l.Name)
	if existing, ok := t.byFold[key]; ok {
		*existing = l
		return
	}
	stored := l
	t.byFold[key] = &stored
	t.order = append(t.order, &stored)
}

// Lookup returns the layer matching name case-insensitively.
func (t *LayerTable) Lookup(name string) (Layer, bool) {
	l, ok := t.byFold[strings.ToLower(name)]
	if !ok {
		return Layer{}, false
	}
	return *l, true
}

// All returns every layer in insertion order.
func (t *LayerTable) All() []Layer {
	out := make([]Layer, 0, len(t.order))
	for _, l := range t.order {
		out = append(out, *l)
	}
	return out
}

// Len reports the number of distinct layers in the table.
func (t *LayerTable) Len() int {
	return len(t.order)
}
