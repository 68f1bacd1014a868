package cadmodel

// Model is the parsed, read-only CAD document. It is built exclusively by
// the dxf and dwg parsers and never mutated afterward — every later
// pipeline stage only reads from it.
type Model struct {
	ACADVersion string
	Units       CADUnits

	Layers *LayerTable
	Blocks *BlockTable

	// Entities holds every entity found in the ENTITIES section, in file
	// order, for stages that need a single linear scan.
	Entities []Entity

	// Fast downstream scans: text, dimension, and block-reference
	// entities also appear here, fanned out at parse time (§4.1).
	Texts            []Text
	Dimensions       []Dimension
	BlockReferences  []BlockReference
}

// NewModel returns an empty model ready for population by a parser.
func NewModel() *Model {
	return &Model{
		Layers: NewLayerTable(),
		Blocks: NewBlockTable(),
		Units:  UnitsUnitless,
	}
}

// AddEntity appends e to the entity list and, for the types that need
// fast downstream access, to the matching fan-out slice.
func (m *Model) AddEntity(e Entity) {
	m.Entities = append(m.Entities, e)
	switch v := e.(type) {
	case Text:
		m.Texts = append(m.Texts, v)
	case Dimension:
		m.Dimensions = append(m.Dimensions, v)
	case BlockReference:
		m.BlockReferences = append(m.BlockReferences, v)
	}
}

// LayerOrDefault returns the named layer, falling back to layer "0" if
// name is empty or unknown, matching the error-handling rule that a
// missing layer defaults an entity to layer "0" before lookup.
func (m *Model) LayerOrDefault(name string) (Layer, bool) {
	if name == "" {
		name = "0"
	}
	if l, ok := m.Layers.Lookup(name); ok {
		return l, true
	}
	if name != "0" {
		return m.Layers.Lookup("0")
	}
	return Layer{}, false
}
