package geomproc

import (
	"context"
	"math"
	"testing"

	"github.com/cadbridge/bimimport/cadmodel"
	"github.com/cadbridge/bimimport/classify"
	"github.com/cadbridge/bimimport/config"
	"github.com/cadbridge/bimimport/geometry"
	"github.com/cadbridge/bimimport/importerr"
	"github.com/stretchr/testify/assert"
)

func TestBulgeToArcRoundTrip(t *testing.T) {
	a := geometry.Point3D{X: 0, Y: 0}
	b := geometry.Point3D{X: 10, Y: 0}
	arc := bulgeToArc(a, b, 1.0)

	assert.Less(t, a.Distance(arc.Start), 1e-6)
	assert.Less(t, b.Distance(arc.End), 1e-6)
	assert.InDelta(t, 5.0, arc.Radius, 1e-6)
	assert.InDelta(t, 5.0, arc.Center.X, 1e-6)
	assert.InDelta(t, 0.0, arc.Center.Y, 1e-6)
}

func TestBulgeToArcHalfCircleIsClockwiseFalse(t *testing.T) {
	// S3: vertices (0,0),(10,0), bulge 1.0 -> theta=pi, radius=5,
	// apothem=radius-sagitta=0, center=(5,0), isClockwise=false.
	a := geometry.Point3D{X: 0, Y: 0}
	b := geometry.Point3D{X: 10, Y: 0}
	arc := bulgeToArc(a, b, 1.0)

	assert.InDelta(t, math.Pi, arc.ArcAngle(), 1e-6)
	assert.True(t, arc.CCW)
}

func TestSegmentForZeroBulgeIsLine(t *testing.T) {
	a := geometry.Point3D{X: 0, Y: 0}
	b := geometry.Point3D{X: 1, Y: 1}
	seg := segmentFor(a, b, 0)
	assert.NotNil(t, seg.Line)
	assert.Nil(t, seg.Arc)
}

func TestConvertPolylineOpenHasNMinusOneSegments(t *testing.T) {
	proc := NewProcessor(config.DefaultImportSettings())
	poly := cadmodel.Polyline{
		Vertices: []geometry.Point3D{{X: 0}, {X: 1}, {X: 2}},
		Bulges:   []float64{0, 0},
		IsClosed: false,
	}
	geo := proc.convertPolyline(poly, 1.0)
	assert.Len(t, geo.Segments, 2)
	assert.False(t, geo.Closed)
}

func TestConvertPolylineClosedHasNSegments(t *testing.T) {
	// S2: closed square, 4 vertices, all-zero bulges -> 4 LineSegments.
	proc := NewProcessor(config.DefaultImportSettings())
	poly := cadmodel.Polyline{
		Vertices: []geometry.Point3D{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}},
		Bulges:   []float64{0, 0, 0, 0},
		IsClosed: true,
	}
	geo := proc.convertPolyline(poly, 1.0)
	assert.Len(t, geo.Segments, 4)
	assert.True(t, geo.Closed)
	for _, seg := range geo.Segments {
		assert.NotNil(t, seg.Line)
	}
}

func TestProcessDropsLineBelowMinLength(t *testing.T) {
	settings := config.DefaultImportSettings()
	settings.MinLineLength = 10
	proc := NewProcessor(settings)

	model := cadmodel.NewModel()
	model.Layers.Add(cadmodel.Layer{Name: "A-WALL", On: true})
	model.AddEntity(cadmodel.Line{
		EntityBase: cadmodel.EntityBase{Layer: "A-WALL"},
		Start:      geometry.Point3D{X: 0, Y: 0},
		End:        geometry.Point3D{X: 1, Y: 0},
	})

	mappings := map[string]classify.LayerMapping{
		"A-WALL": {CADLayerName: "A-WALL", RevitCategory: "Walls", ShouldImport: true},
	}

	out, err := proc.Process(context.Background(), model, mappings)
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestProcessLineScenarioS1(t *testing.T) {
	proc := NewProcessor(config.DefaultImportSettings())

	model := cadmodel.NewModel()
	model.AddEntity(cadmodel.Line{
		EntityBase: cadmodel.EntityBase{Layer: "A-WALL"},
		Start:      geometry.Point3D{X: 0, Y: 0, Z: 0},
		End:        geometry.Point3D{X: 5000, Y: 0, Z: 0},
	})

	mappings := map[string]classify.LayerMapping{
		"A-WALL": {CADLayerName: "A-WALL", RevitCategory: "Walls", ShouldImport: true},
	}

	out, err := proc.Process(context.Background(), model, mappings)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "Walls", out[0].TargetCategory)
	line, ok := out[0].Geometry.(LineGeometry)
	assert.True(t, ok)
	assert.InDelta(t, 5000.0, line.End.X, 1e-9)
}

func TestProcessSkipsEntityWithoutMapping(t *testing.T) {
	proc := NewProcessor(config.DefaultImportSettings())
	model := cadmodel.NewModel()
	model.AddEntity(cadmodel.Line{
		EntityBase: cadmodel.EntityBase{Layer: "UNMAPPED"},
		Start:      geometry.Point3D{X: 0},
		End:        geometry.Point3D{X: 100},
	})

	out, err := proc.Process(context.Background(), model, map[string]classify.LayerMapping{})
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestProcessCancellation(t *testing.T) {
	proc := NewProcessor(config.DefaultImportSettings())
	model := cadmodel.NewModel()
	model.AddEntity(cadmodel.Line{Start: geometry.Point3D{X: 0}, End: geometry.Point3D{X: 100}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := proc.Process(ctx, model, map[string]classify.LayerMapping{})
	assert.ErrorIs(t, err, importerr.ErrCancelled)
}
