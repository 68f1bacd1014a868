// Package geomproc converts classified CAD entities into the processed
// geometry hierarchy the element converter consumes: unit-scaled
// coordinates, bulge-expanded polyline segments, and a validation hook
// the post-processor's ValidateGeometry option drives.
package geomproc

import "github.com/cadbridge/bimimport/geometry"

// GeometryType tags which concrete Geometry variant a ProcessedGeometry
// carries (§3 "geometryType tag").
type GeometryType string

const (
	GeometryTypeLine          GeometryType = "Line"
	GeometryTypeOpenPolyline  GeometryType = "OpenPolyline"
	GeometryTypeClosedPolyline GeometryType = "ClosedPolyline"
	GeometryTypeCircle        GeometryType = "Circle"
	GeometryTypeArc           GeometryType = "Arc"
	GeometryTypeEllipse       GeometryType = "Ellipse"
	GeometryTypeSolid         GeometryType = "Solid"
	GeometryTypePoint         GeometryType = "Point"
)

// Geometry is the tagged-union interface every processed geometry variant
// implements — the Go shape of the "IElementGeometry" re-architecture
// note in §9.
type Geometry interface {
	Type() GeometryType
	BoundingBox() geometry.BoundingBox
	// Validate returns zero or more human-readable issue strings: a
	// zero-length line, zero-radius arc/circle, zero-axis ellipse, empty
	// polyline, or a solid with fewer than 3 vertices (§4.7
	// ValidateGeometry).
	Validate() []string
}

// LineGeometry is a straight segment, already unit-scaled.
type LineGeometry struct {
	Start, End geometry.Point3D
}

func (g LineGeometry) Type() GeometryType { return GeometryTypeLine }

func (g LineGeometry) BoundingBox() geometry.BoundingBox {
	return geometry.EmptyBoundingBox().Expand(g.Start).Expand(g.End)
}

// Direction returns the unit vector from Start to End. ok is false when the
// line is degenerate (Start == End).
func (g LineGeometry) Direction() (dir geometry.Vector3D, ok bool) {
	return g.End.Sub(g.Start).Normalize()
}

func (g LineGeometry) Validate() []string {
	if g.Start.Equal(g.End, 0) {
		return []string{"zero-length line"}
	}
	return nil
}

// PolylineGeometry is an ordered chain of line/arc segments, each already
// unit-scaled, produced by expanding a Polyline's vertices and bulges.
type PolylineGeometry struct {
	Segments []geometry.Segment
	Closed   bool
}

func (g PolylineGeometry) Type() GeometryType {
	if g.Closed {
		return GeometryTypeClosedPolyline
	}
	return GeometryTypeOpenPolyline
}

func (g PolylineGeometry) BoundingBox() geometry.BoundingBox {
	box := geometry.EmptyBoundingBox()
	for _, seg := range g.Segments {
		box = box.Expand(seg.StartPoint()).Expand(seg.EndPoint())
	}
	return box
}

func (g PolylineGeometry) Validate() []string {
	if len(g.Segments) == 0 {
		return []string{"empty polyline"}
	}
	return nil
}

// CircleGeometry is a full circle, already unit-scaled.
type CircleGeometry struct {
	Center geometry.Point3D
	Radius float64
}

func (g CircleGeometry) Type() GeometryType { return GeometryTypeCircle }

func (g CircleGeometry) BoundingBox() geometry.BoundingBox {
	return geometry.EmptyBoundingBox().
		Expand(geometry.Point3D{X: g.Center.X - g.Radius, Y: g.Center.Y - g.Radius, Z: g.Center.Z}).
		Expand(geometry.Point3D{X: g.Center.X + g.Radius, Y: g.Center.Y + g.Radius, Z: g.Center.Z})
}

func (g CircleGeometry) Validate() []string {
	if g.Radius <= 0 {
		return []string{"zero-radius circle"}
	}
	return nil
}

// ArcGeometry is a circular arc entity (as opposed to a bulge-derived
// polyline ArcSegment). StartAngle/EndAngle are held in radians, the
// convention chosen at this package's boundary (DESIGN.md open question
// 1: DXF angle units).
type ArcGeometry struct {
	Center               geometry.Point3D
	Radius               float64
	StartAngle, EndAngle float64
}

func (g ArcGeometry) Type() GeometryType { return GeometryTypeArc }

func (g ArcGeometry) BoundingBox() geometry.BoundingBox {
	return CircleGeometry{Center: g.Center, Radius: g.Radius}.BoundingBox()
}

func (g ArcGeometry) Validate() []string {
	if g.Radius <= 0 {
		return []string{"zero-radius arc"}
	}
	return nil
}

// EllipseGeometry passes ratio and angles through unchanged except for
// unit-scaling Center and MajorAxis (§4.3 "Ellipse: requires center set;
// ratio and angles pass through").
type EllipseGeometry struct {
	Center         geometry.Point3D
	MajorAxis      geometry.Vector3D
	MinorAxisRatio float64
	StartAngle     float64
	EndAngle       float64
}

func (g EllipseGeometry) Type() GeometryType { return GeometryTypeEllipse }

func (g EllipseGeometry) BoundingBox() geometry.BoundingBox {
	r := g.MajorAxis.Length()
	return CircleGeometry{Center: g.Center, Radius: r}.BoundingBox()
}

func (g EllipseGeometry) Validate() []string {
	if g.MajorAxis.Length() <= 0 {
		return []string{"zero-axis ellipse"}
	}
	return nil
}

// SolidGeometry is a filled polygon, requiring at least 3 vertices.
type SolidGeometry struct {
	Vertices []geometry.Point3D
}

func (g SolidGeometry) Type() GeometryType { return GeometryTypeSolid }

func (g SolidGeometry) BoundingBox() geometry.BoundingBox {
	box := geometry.EmptyBoundingBox()
	for _, v := range g.Vertices {
		box = box.Expand(v)
	}
	return box
}

func (g SolidGeometry) Validate() []string {
	if len(g.Vertices) < 3 {
		return []string{"solid with fewer than 3 vertices"}
	}
	return nil
}

// PointGeometry is a single located point.
type PointGeometry struct {
	Position geometry.Point3D
}

func (g PointGeometry) Type() GeometryType { return GeometryTypePoint }

func (g PointGeometry) BoundingBox() geometry.BoundingBox {
	return geometry.EmptyBoundingBox().Expand(g.Position)
}

func (g PointGeometry) Validate() []string { return nil }
