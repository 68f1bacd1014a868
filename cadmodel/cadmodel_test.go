package cadmodel

import (
	"testing"

	"github.com/cadbridge/bimimport/geometry"
	"github.com/stretchr/testify/assert"
)

func TestLayerTableCaseInsensitiveLookup(t *testing.T) {
	table := NewLayerTable()
	table.Add(Layer{Name: "A-WALL", On: true})

	l, ok := table.Lookup("a-wall")
	assert.True(t, ok)
	assert.Equal(t, "A-WALL", l.Name)

	_, ok = table.Lookup("A-DOOR")
	assert.False(t, ok)
}

func TestLayerVisible(t *testing.T) {
	assert.True(t, Layer{On: true, Frozen: false}.Visible())
	assert.False(t, Layer{On: true, Frozen: true}.Visible())
	assert.False(t, Layer{On: false, Frozen: false}.Visible())
}

func TestParseInsUnitsDefaultsUnitless(t *testing.T) {
	assert.Equal(t, UnitsMillimeters, ParseInsUnits(4))
	assert.Equal(t, UnitsUnitless, ParseInsUnits(99))
	assert.Equal(t, UnitsUnitless, ParseInsUnits(0))
}

func TestBlockBoundingBoxIncludesLinesAndCircles(t *testing.T) {
	b := Block{
		Name: "DOOR_1",
		Entities: []Entity{
			Line{Start: geometry.Point3D{X: 0, Y: 0}, End: geometry.Point3D{X: 10, Y: 0}},
			Circle{Center: geometry.Point3D{X: 5, Y: 5}, Radius: 2},
		},
	}
	box := b.BoundingBox()
	assert.InDelta(t, 0.0, box.Min.X, 1e-9)
	assert.InDelta(t, 10.0, box.Max.X, 1e-9)
	assert.InDelta(t, 7.0, box.Max.Y, 1e-9)
}

func TestBlockHasArcHasCircleLineCount(t *testing.T) {
	b := Block{
		Entities: []Entity{
			Line{}, Line{},
			Arc{},
		},
	}
	assert.True(t, b.HasArc())
	assert.False(t, b.HasCircle())
	assert.Equal(t, 2, b.LineCount())
}

func TestModelLayerOrDefaultFallsBackToLayerZero(t *testing.T) {
	m := NewModel()
	m.Layers.Add(Layer{Name: "0", On: true})

	l, ok := m.LayerOrDefault("")
	assert.True(t, ok)
	assert.Equal(t, "0", l.Name)

	l, ok = m.LayerOrDefault("UNKNOWN")
	assert.True(t, ok)
	assert.Equal(t, "0", l.Name)
}

func TestModelAddEntityFansOutTextsDimensionsBlockReferences(t *testing.T) {
	m := NewModel()
	m.AddEntity(Text{Content: "Room 1"})
	m.AddEntity(Dimension{Measurement: 100})
	m.AddEntity(BlockReference{BlockName: "DOOR_1"})
	m.AddEntity(Line{})

	assert.Len(t, m.Entities, 4)
	assert.Len(t, m.Texts, 1)
	assert.Len(t, m.Dimensions, 1)
	assert.Len(t, m.BlockReferences, 1)
}
