package blocks

import (
	"context"
	"testing"

	"github.com/cadbridge/bimimport/cadmodel"
	"github.com/cadbridge/bimimport/geometry"
	"github.com/stretchr/testify/assert"
)

func TestRecognizeByNamePattern(t *testing.T) {
	blocks := cadmodel.NewBlockTable()
	blocks.Add(cadmodel.Block{Name: "DOOR_1"})
	r := NewRecognizer(blocks)

	rb, ok := r.Recognize(cadmodel.BlockReference{
		BlockName:      "DOOR_1",
		InsertionPoint: geometry.Point3D{X: 1000},
		ScaleX:         1, ScaleY: 1, ScaleZ: 1,
	})
	assert.True(t, ok)
	assert.Equal(t, TypeDoor, rb.ElementType)
}

func TestRecognizeByGeometrySignatureDoor(t *testing.T) {
	// A block with an ARC and two LINEs, aspect ratio 1, no name match.
	blocks := cadmodel.NewBlockTable()
	blocks.Add(cadmodel.Block{
		Name: "SYM_42",
		Entities: []cadmodel.Entity{
			cadmodel.Arc{Center: geometry.Point3D{X: 0, Y: 0}, Radius: 10},
			cadmodel.Line{Start: geometry.Point3D{X: -10, Y: 0}, End: geometry.Point3D{X: 10, Y: 10}},
			cadmodel.Line{Start: geometry.Point3D{X: 10, Y: 10}, End: geometry.Point3D{X: -10, Y: -10}},
		},
	})
	r := NewRecognizer(blocks)

	rb, ok := r.Recognize(cadmodel.BlockReference{BlockName: "SYM_42", ScaleX: 1, ScaleY: 1, ScaleZ: 1})
	assert.True(t, ok)
	assert.Equal(t, TypeDoor, rb.ElementType)
}

func TestRecognizeByGeometrySignatureWindow(t *testing.T) {
	blocks := cadmodel.NewBlockTable()
	blocks.Add(cadmodel.Block{
		Name: "SYM_99",
		Entities: []cadmodel.Entity{
			cadmodel.Line{Start: geometry.Point3D{X: 0, Y: 0}, End: geometry.Point3D{X: 10, Y: 0}},
			cadmodel.Line{Start: geometry.Point3D{X: 10, Y: 0}, End: geometry.Point3D{X: 10, Y: 10}},
			cadmodel.Line{Start: geometry.Point3D{X: 10, Y: 10}, End: geometry.Point3D{X: 0, Y: 10}},
			cadmodel.Line{Start: geometry.Point3D{X: 0, Y: 10}, End: geometry.Point3D{X: 0, Y: 0}},
		},
	})
	r := NewRecognizer(blocks)

	rb, ok := r.Recognize(cadmodel.BlockReference{BlockName: "SYM_99", ScaleX: 1, ScaleY: 1, ScaleZ: 1})
	assert.True(t, ok)
	assert.Equal(t, TypeWindow, rb.ElementType)
}

func TestRecognizeUnrecognizedGeometryReturnsFalse(t *testing.T) {
	blocks := cadmodel.NewBlockTable()
	blocks.Add(cadmodel.Block{
		Name:     "MYSTERY",
		Entities: []cadmodel.Entity{cadmodel.Line{}},
	})
	r := NewRecognizer(blocks)

	_, ok := r.Recognize(cadmodel.BlockReference{BlockName: "MYSTERY"})
	assert.False(t, ok)
}

func TestRecognizeMissingDefinitionReturnsFalse(t *testing.T) {
	r := NewRecognizer(cadmodel.NewBlockTable())
	_, ok := r.Recognize(cadmodel.BlockReference{BlockName: "NOPE"})
	assert.False(t, ok)
}

func TestRecognizeScalesDimensions(t *testing.T) {
	blocks := cadmodel.NewBlockTable()
	blocks.Add(cadmodel.Block{
		Name: "DOOR_STD",
		Entities: []cadmodel.Entity{
			cadmodel.Line{Start: geometry.Point3D{X: 0, Y: 0}, End: geometry.Point3D{X: 1, Y: 0}},
			cadmodel.Line{Start: geometry.Point3D{X: 1, Y: 0}, End: geometry.Point3D{X: 1, Y: 2}},
		},
	})
	r := NewRecognizer(blocks)

	rb, ok := r.Recognize(cadmodel.BlockReference{BlockName: "DOOR_STD", ScaleX: 900, ScaleY: 2100, ScaleZ: 1})
	assert.True(t, ok)
	assert.InDelta(t, 900.0, rb.Width, 1e-9)
	assert.InDelta(t, 4200.0, rb.Height, 1e-9)
}

func TestRecognizeAllRespectsOrderAndCancellation(t *testing.T) {
	blocks := cadmodel.NewBlockTable()
	blocks.Add(cadmodel.Block{Name: "DOOR_1"})

	r := NewRecognizer(blocks)
	refs := []cadmodel.BlockReference{{BlockName: "DOOR_1", ScaleX: 1, ScaleY: 1, ScaleZ: 1}}

	out, err := r.RecognizeAll(context.Background(), refs)
	assert.NoError(t, err)
	assert.Len(t, out, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.RecognizeAll(ctx, refs)
	assert.Error(t, err)
}
