package main

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadbridge/bimimport/config"
	"github.com/cadbridge/bimimport/geomproc"
	"github.com/cadbridge/bimimport/geometry"
	"github.com/cadbridge/bimimport/pipeline"
)

func writeTempDXF(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.dxf")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func layerSection(layers ...string) string {
	s := "0\nSECTION\n2\nTABLES\n0\nTABLE\n2\nLAYER\n"
	for _, l := range layers {
		s += l
	}
	s += "0\nENDTAB\n0\nENDSEC\n"
	return s
}

// S1: one LINE on layer "A-WALL" produces one Walls element with the
// default unconnected height parameter.
func TestE2E_S1_SingleWallLine(t *testing.T) {
	body := layerSection("0\nLAYER\n2\nA-WALL\n62\n7\n6\nCONTINUOUS\n70\n0\n") +
		"0\nSECTION\n2\nENTITIES\n" +
		"0\nLINE\n8\nA-WALL\n10\n0.0\n20\n0.0\n30\n0.0\n11\n5000.0\n21\n0.0\n31\n0.0\n" +
		"0\nENDSEC\n0\nEOF\n"
	path := writeTempDXF(t, body)

	result := pipeline.Import(context.Background(), path, config.DefaultImportOptions(), config.DefaultImportSettings(), nil)
	require.True(t, result.Success, result.Errors)

	require.Len(t, result.ConvertedElements, 1)
	el := result.ConvertedElements[0]
	assert.Equal(t, "Walls", el.Category)

	line, ok := el.Geometry.(geomproc.LineGeometry)
	require.True(t, ok)
	assert.Equal(t, geometry.Point3D{X: 0, Y: 0, Z: 0}, line.Start)
	assert.Equal(t, geometry.Point3D{X: 5000, Y: 0, Z: 0}, line.End)

	height, ok := el.Parameters.Get("Unconnected Height")
	require.True(t, ok)
	assert.Equal(t, "3000", height)
}

// S2: a closed 4-vertex polyline on "A-FLOR" produces one Floors element
// made of 4 line segments.
func TestE2E_S2_ClosedPolylineFloor(t *testing.T) {
	body := layerSection("0\nLAYER\n2\nA-FLOR\n62\n7\n6\nCONTINUOUS\n70\n0\n") +
		"0\nSECTION\n2\nENTITIES\n" +
		"0\nLWPOLYLINE\n8\nA-FLOR\n70\n1\n" +
		"10\n0.0\n20\n0.0\n42\n0.0\n" +
		"10\n10.0\n20\n0.0\n42\n0.0\n" +
		"10\n10.0\n20\n10.0\n42\n0.0\n" +
		"10\n0.0\n20\n10.0\n42\n0.0\n" +
		"0\nENDSEC\n0\nEOF\n"
	path := writeTempDXF(t, body)

	result := pipeline.Import(context.Background(), path, config.DefaultImportOptions(), config.DefaultImportSettings(), nil)
	require.True(t, result.Success, result.Errors)

	require.Len(t, result.ConvertedElements, 1)
	el := result.ConvertedElements[0]
	assert.Equal(t, "Floors", el.Category)

	poly, ok := el.Geometry.(geomproc.PolylineGeometry)
	require.True(t, ok)
	assert.Len(t, poly.Segments, 4)
	for _, seg := range poly.Segments {
		assert.NotNil(t, seg.Line)
		assert.Nil(t, seg.Arc)
	}

	level, ok := el.Parameters.Get("Level")
	require.True(t, ok)
	assert.Equal(t, "Level 1", level)
}

// S3: a 2-vertex polyline with a bulge of 1.0 converts to a single
// ArcSegment half-circle.
func TestE2E_S3_BulgeConvertsToArc(t *testing.T) {
	body := layerSection("0\nLAYER\n2\nA-FLOR\n62\n7\n6\nCONTINUOUS\n70\n0\n") +
		"0\nSECTION\n2\nENTITIES\n" +
		"0\nLWPOLYLINE\n8\nA-FLOR\n70\n0\n" +
		"10\n0.0\n20\n0.0\n42\n1.0\n" +
		"10\n10.0\n20\n0.0\n" +
		"0\nENDSEC\n0\nEOF\n"
	path := writeTempDXF(t, body)

	result := pipeline.Import(context.Background(), path, config.DefaultImportOptions(), config.DefaultImportSettings(), nil)
	require.True(t, result.Success, result.Errors)
	require.Len(t, result.ConvertedElements, 1)

	poly, ok := result.ConvertedElements[0].Geometry.(geomproc.PolylineGeometry)
	require.True(t, ok)
	require.Len(t, poly.Segments, 1)
	arc := poly.Segments[0].Arc
	require.NotNil(t, arc)
	assert.InDelta(t, 5.0, arc.Radius, 1e-6)
	assert.InDelta(t, 5.0, arc.Center.X, 1e-6)
	assert.InDelta(t, 0.0, arc.Center.Y, 1e-6)
	assert.InDelta(t, math.Pi, arc.ArcAngle(), 1e-6)
}

// S4: two collinear LINE entities on "A-WALL" join into one wall when
// JoinWalls is enabled.
func TestE2E_S4_CollinearWallsJoin(t *testing.T) {
	body := layerSection("0\nLAYER\n2\nA-WALL\n62\n7\n6\nCONTINUOUS\n70\n0\n") +
		"0\nSECTION\n2\nENTITIES\n" +
		"0\nLINE\n8\nA-WALL\n10\n0.0\n20\n0.0\n11\n100.0\n21\n0.0\n" +
		"0\nLINE\n8\nA-WALL\n10\n100.0\n20\n0.0\n11\n300.0\n21\n0.0\n" +
		"0\nENDSEC\n0\nEOF\n"
	path := writeTempDXF(t, body)

	opts := config.DefaultImportOptions()
	opts.JoinWalls = true
	result := pipeline.Import(context.Background(), path, opts, config.DefaultImportSettings(), nil)
	require.True(t, result.Success, result.Errors)

	require.Len(t, result.ConvertedElements, 1)
	line, ok := result.ConvertedElements[0].Geometry.(geomproc.LineGeometry)
	require.True(t, ok)
	assert.Equal(t, geometry.Point3D{X: 0, Y: 0, Z: 0}, line.Start)
	assert.Equal(t, geometry.Point3D{X: 300, Y: 0, Z: 0}, line.End)
	assert.Equal(t, 1, result.Statistics.WallsJoined)
}

// S5: a wall with an inserted door block hosts the door once
// InsertOpeningsIntoWalls runs.
func TestE2E_S5_DoorHostedByWall(t *testing.T) {
	body := layerSection(
		"0\nLAYER\n2\nA-WALL\n62\n7\n6\nCONTINUOUS\n70\n0\n",
		"0\nLAYER\n2\nA-DOOR\n62\n7\n6\nCONTINUOUS\n70\n0\n",
	) +
		"0\nSECTION\n2\nBLOCKS\n" +
		"0\nBLOCK\n8\n0\n2\nDOOR_1\n70\n0\n10\n0.0\n20\n0.0\n30\n0.0\n3\nDOOR_1\n" +
		"0\nLINE\n8\n0\n10\n0.0\n20\n0.0\n11\n0.0\n21\n30.0\n" +
		"0\nLINE\n8\n0\n10\n0.0\n20\n0.0\n11\n30.0\n21\n0.0\n" +
		"0\nARC\n8\n0\n10\n0.0\n20\n0.0\n40\n30.0\n50\n0.0\n51\n90.0\n" +
		"0\nENDBLK\n8\n0\n" +
		"0\nENDSEC\n" +
		"0\nSECTION\n2\nENTITIES\n" +
		"0\nLINE\n8\nA-WALL\n10\n0.0\n20\n0.0\n11\n5000.0\n21\n0.0\n" +
		"0\nINSERT\n8\nA-DOOR\n2\nDOOR_1\n10\n1000.0\n20\n0.0\n41\n1.0\n42\n1.0\n" +
		"0\nENDSEC\n0\nEOF\n"
	path := writeTempDXF(t, body)

	result := pipeline.Import(context.Background(), path, config.DefaultImportOptions(), config.DefaultImportSettings(), nil)
	require.True(t, result.Success, result.Errors)

	var wallID, doorHost string
	for _, el := range result.ConvertedElements {
		switch el.Category {
		case "Walls":
			wallID = el.ID
		case "Doors":
			doorHost = el.HostElementID
		}
	}
	require.NotEmpty(t, wallID, "expected a Walls element")
	require.NotEmpty(t, doorHost, "expected the door to be hosted")
	assert.Equal(t, wallID, doorHost)
}

// S6: a frozen layer with ImportInvisibleLayers=false produces no
// element from entities on that layer.
func TestE2E_S6_FrozenLayerExcluded(t *testing.T) {
	body := layerSection("0\nLAYER\n2\nA-WALL\n62\n7\n6\nCONTINUOUS\n70\n1\n") +
		"0\nSECTION\n2\nENTITIES\n" +
		"0\nLINE\n8\nA-WALL\n10\n0.0\n20\n0.0\n11\n5000.0\n21\n0.0\n" +
		"0\nENDSEC\n0\nEOF\n"
	path := writeTempDXF(t, body)

	opts := config.DefaultImportOptions()
	opts.ImportInvisibleLayers = false
	result := pipeline.Import(context.Background(), path, opts, config.DefaultImportSettings(), nil)
	require.True(t, result.Success, result.Errors)

	mapping, ok := result.LayerMappings["A-WALL"]
	require.True(t, ok)
	assert.False(t, mapping.ShouldImport)
	assert.Empty(t, result.ConvertedElements)
}
