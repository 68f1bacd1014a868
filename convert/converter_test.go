package convert

import (
	"encoding/json"
	"testing"

	"github.com/cadbridge/bimimport/blocks"
	"github.com/cadbridge/bimimport/config"
	"github.com/cadbridge/bimimport/geomproc"
	"github.com/cadbridge/bimimport/geometry"
	"github.com/cadbridge/bimimport/textextract"
	"github.com/stretchr/testify/assert"
)

func TestConvertGeometryAllocatesMonotonicIDs(t *testing.T) {
	c := NewElementConverter(config.DefaultImportOptions())
	a := c.ConvertGeometry(geomproc.ProcessedGeometry{TargetCategory: "Walls"})
	b := c.ConvertGeometry(geomproc.ProcessedGeometry{TargetCategory: "Walls"})

	assert.Equal(t, "CAD_IMPORT_000001", a.ID)
	assert.Equal(t, "CAD_IMPORT_000002", b.ID)
}

func TestConvertGeometryWallParametersScenarioS1(t *testing.T) {
	opts := config.DefaultImportOptions()
	c := NewElementConverter(opts)

	pg := geomproc.ProcessedGeometry{
		TargetCategory: "Walls",
		SourceLayer:    "A-WALL",
		Geometry: geomproc.LineGeometry{
			Start: geometry.Point3D{X: 0, Y: 0, Z: 0},
			End:   geometry.Point3D{X: 5000, Y: 0, Z: 0},
		},
	}
	el := c.ConvertGeometry(pg)
	assert.Equal(t, "Walls", el.Category)
	height, ok := el.Parameters.Get("Unconnected Height")
	assert.True(t, ok)
	assert.Equal(t, "3000", height)
}

func TestConvertGeometryFloorsScenarioS2(t *testing.T) {
	c := NewElementConverter(config.DefaultImportOptions())
	el := c.ConvertGeometry(geomproc.ProcessedGeometry{TargetCategory: "Floors"})
	level, ok := el.Parameters.Get("Level")
	assert.True(t, ok)
	assert.Equal(t, "Level 1", level)
}

func TestConvertBlockTypeNameSynthesis(t *testing.T) {
	c := NewElementConverter(config.DefaultImportOptions())
	el := c.ConvertBlock(blocks.RecognizedBlock{
		ElementType: blocks.TypeDoor,
		Width:       900,
		Height:      2100,
	})
	assert.Equal(t, "Doors", el.Category)
	assert.Equal(t, "Door - 900x2100mm", el.TypeName)
}

func TestConvertBlockUnknownTypeMapsToGenericModel(t *testing.T) {
	c := NewElementConverter(config.DefaultImportOptions())
	el := c.ConvertBlock(blocks.RecognizedBlock{ElementType: blocks.BlockElementType("Unmapped")})
	assert.Equal(t, "GenericModel", el.Category)
}

func TestConvertTextParameters(t *testing.T) {
	c := NewElementConverter(config.DefaultImportOptions())
	el := c.ConvertText(textextract.ExtractedText{Kind: textextract.KindRoomLabel, Content: "Kitchen", Height: 250})
	text, _ := el.Parameters.Get("Text")
	size, _ := el.Parameters.Get("Text Size")
	assert.Equal(t, "Kitchen", text)
	assert.Equal(t, "250", size)
}

func TestConvertDimensionParameters(t *testing.T) {
	c := NewElementConverter(config.DefaultImportOptions())
	el := c.ConvertDimension(textextract.ExtractedDimension{Text: "2400", Measurement: 2400})
	value, _ := el.Parameters.Get("Value")
	override, _ := el.Parameters.Get("Override Text")
	assert.Equal(t, "2400", value)
	assert.Equal(t, "2400", override)
}

func TestParameterMapPreservesInsertionOrder(t *testing.T) {
	m := NewParameterMap()
	m.Set("b", "2")
	m.Set("a", "1")
	assert.Equal(t, []string{"b", "a"}, m.Keys())
}

func TestParameterMapMarshalsAsAJSONObject(t *testing.T) {
	m := NewParameterMap()
	m.Set("Unconnected Height", "3000")
	m.Set("Level", "Level 1")

	data, err := json.Marshal(m)
	assert.NoError(t, err)

	var decoded map[string]string
	assert.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, map[string]string{"Unconnected Height": "3000", "Level": "Level 1"}, decoded)
}

func TestConvertedElementCloneDeepCopiesParametersSharesGeometry(t *testing.T) {
	geo := geomproc.LineGeometry{Start: geometry.Point3D{}, End: geometry.Point3D{X: 1}}
	original := ConvertedElement{Parameters: NewParameterMap(), Geometry: geo}
	original.Parameters.Set("k", "v")

	clone := original.Clone()
	clone.Parameters.Set("k", "changed")

	v, _ := original.Parameters.Get("k")
	assert.Equal(t, "v", v)
	assert.Equal(t, original.Geometry, clone.Geometry)
}
