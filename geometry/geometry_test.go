package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint3DDistance(t *testing.T) {
	p := Point3D{X: 0, Y: 0, Z: 0}
	q := Point3D{X: 3, Y: 4, Z: 0}
	assert.InDelta(t, 5.0, p.Distance(q), 1e-9)
}

func TestPoint3DLerpMidpoint(t *testing.T) {
	p := Point3D{X: 0, Y: 0, Z: 0}
	q := Point3D{X: 10, Y: 20, Z: 0}
	mid := p.Lerp(q, 0.5)
	assert.True(t, mid.Equal(Point3D{X: 5, Y: 10, Z: 0}, 1e-9))
}

func TestPoint3DEqualWithinTolerance(t *testing.T) {
	p := Point3D{X: 1, Y: 1, Z: 1}
	q := Point3D{X: 1.0005, Y: 1, Z: 1}
	assert.True(t, p.Equal(q, 0.001))
	assert.False(t, p.Equal(q, 0.0001))
}

func TestVector3DNormalizeZeroLength(t *testing.T) {
	v := Vector3D{}
	_, ok := v.Normalize()
	assert.False(t, ok)
}

func TestVector3DNormalizeUnitLength(t *testing.T) {
	v := Vector3D{X: 3, Y: 4, Z: 0}
	n, ok := v.Normalize()
	assert.True(t, ok)
	assert.InDelta(t, 1.0, n.Length(), 1e-9)
}

func TestVector3DPerpendicular2D(t *testing.T) {
	v := Vector3D{X: 1, Y: 0, Z: 0}
	ccw := v.Perpendicular2D(true)
	assert.InDelta(t, 0.0, ccw.X, 1e-9)
	assert.InDelta(t, 1.0, ccw.Y, 1e-9)

	cw := v.Perpendicular2D(false)
	assert.InDelta(t, 0.0, cw.X, 1e-9)
	assert.InDelta(t, -1.0, cw.Y, 1e-9)
}

func TestBoundingBoxExpandAndVolume(t *testing.T) {
	b := EmptyBoundingBox()
	b = b.Expand(Point3D{X: 0, Y: 0, Z: 0})
	b = b.Expand(Point3D{X: 10, Y: 5, Z: 2})
	assert.InDelta(t, 10.0, b.Width(), 1e-9)
	assert.InDelta(t, 5.0, b.Height(), 1e-9)
	assert.InDelta(t, 2.0, b.Depth(), 1e-9)
	assert.InDelta(t, 100.0, b.Volume(), 1e-9)
}

func TestBoundingBoxPlanarVolumeIsZero(t *testing.T) {
	b := EmptyBoundingBox()
	b = b.Expand(Point3D{X: 0, Y: 0, Z: 0})
	b = b.Expand(Point3D{X: 10, Y: 5, Z: 0})
	assert.Equal(t, 0.0, b.Volume())
}

func TestBoundingBoxUnion(t *testing.T) {
	a := EmptyBoundingBox().Expand(Point3D{X: 0, Y: 0, Z: 0}).Expand(Point3D{X: 1, Y: 1, Z: 0})
	b := EmptyBoundingBox().Expand(Point3D{X: 5, Y: 5, Z: 0}).Expand(Point3D{X: 6, Y: 6, Z: 0})
	u := a.Union(b)
	assert.True(t, u.Min.Equal(Point3D{X: 0, Y: 0, Z: 0}, 1e-9))
	assert.True(t, u.Max.Equal(Point3D{X: 6, Y: 6, Z: 0}, 1e-9))
}

func TestArcSegmentArcAngleQuarterCircle(t *testing.T) {
	arc := ArcSegment{
		Center: Point3D{X: 0, Y: 0, Z: 0},
		Start:  Point3D{X: 10, Y: 0, Z: 0},
		End:    Point3D{X: 0, Y: 10, Z: 0},
		Radius: 10,
		CCW:    true,
	}
	assert.InDelta(t, math.Pi/2, arc.ArcAngle(), 1e-6)
	assert.InDelta(t, 10*math.Pi/2, arc.Length(), 1e-6)
}

func TestSegmentDispatchesToVariant(t *testing.T) {
	line := Segment{Line: &LineSegment{Start: Point3D{}, End: Point3D{X: 4, Y: 3, Z: 0}}}
	assert.InDelta(t, 5.0, line.Length(), 1e-9)

	arc := Segment{Arc: &ArcSegment{
		Center: Point3D{X: 0, Y: 0, Z: 0},
		Start:  Point3D{X: 1, Y: 0, Z: 0},
		End:    Point3D{X: 0, Y: 1, Z: 0},
		Radius: 1,
	}}
	assert.InDelta(t, math.Pi/2, arc.Length(), 1e-6)

	var empty Segment
	assert.Equal(t, 0.0, empty.Length())
}
