package cadmodel

import "github.com/cadbridge/bimimport/geometry"

// CADUnits mirrors the DXF $INSUNITS header variable.
type CADUnits int

const (
	UnitsUnitless    CADUnits = 0
	UnitsInches      CADUnits = 1
	UnitsFeet        CADUnits = 2
	UnitsMillimeters CADUnits = 4
	UnitsCentimeters CADUnits = 5
	UnitsMeters      CADUnits = 6
)

// ParseInsUnits maps a raw $INSUNITS integer to CADUnits, defaulting to
// Unitless for any value this model doesn't recognize.
func ParseInsUnits(raw int) CADUnits {
	switch raw {
	case 1, 2, 4, 5, 6:
		return CADUnits(raw)
	default:
		return UnitsUnitless
	}
}

// EntityBase carries the fields common to every CAD entity variant.
type EntityBase struct {
	Layer    string
	Color    int
	LineType string
}

// Entity is the tagged-union interface implemented by every concrete
// entity variant below. Downstream code type-switches on the concrete
// type rather than calling virtual methods, per the "tagged entity
// variants replace class hierarchies" re-architecture note.
type Entity interface {
	Base() EntityBase
	EntityType() string
}

// Line is a straight segment between two points.
type Line struct {
	EntityBase
	Start, End geometry.Point3D
}

func (l Line) Base() EntityBase { return l.EntityBase }
func (l Line) EntityType() string { return "LINE" }

// Polyline carries an ordered vertex list and a parallel bulge list;
// bulges[i] describes the segment from vertices[i] to vertices[i+1].
// len(Bulges) may be less than len(Vertices); missing trailing bulges are
// treated as zero (straight segments).
type Polyline struct {
	EntityBase
	Vertices []geometry.Point3D
	Bulges   []float64
	IsClosed bool
}

func (p Polyline) Base() EntityBase { return p.EntityBase }
func (p Polyline) EntityType() string { return "POLYLINE" }

// BulgeAt returns the bulge value for segment i, or 0 if none was recorded.
func (p Polyline) BulgeAt(i int) float64 {
	if i < 0 || i >= len(p.Bulges) {
		return 0
	}
	return p.Bulges[i]
}

// Circle is a full circle.
type Circle struct {
	EntityBase
	Center geometry.Point3D
	Radius float64
}

func (c Circle) Base() EntityBase { return c.EntityBase }
func (c Circle) EntityType() string { return "CIRCLE" }

// Arc is a circular arc. StartAngle/EndAngle are in degrees as received
// from the DXF wire format (group codes 50/51); see geomproc for the
// radian conversion boundary.
type Arc struct {
	EntityBase
	Center               geometry.Point3D
	Radius               float64
	StartAngle, EndAngle float64
}

func (a Arc) Base() EntityBase { return a.EntityBase }
func (a Arc) EntityType() string { return "ARC" }

// Ellipse is a DXF ELLIPSE entity: a major-axis endpoint vector from
// Center, a ratio of minor to major axis length, and a start/end
// parameter angle in radians (DXF ELLIPSE angles are radians, unlike ARC).
type Ellipse struct {
	EntityBase
	Center           geometry.Point3D
	MajorAxis        geometry.Vector3D
	MinorAxisRatio   float64
	StartAngle       float64
	EndAngle         float64
}

func (e Ellipse) Base() EntityBase { return e.EntityBase }
func (e Ellipse) EntityType() string { return "ELLIPSE" }

// Text is a TEXT or MTEXT entity. Only the primary content (group code 1)
// is honored for MTEXT, per the external-interfaces note.
type Text struct {
	EntityBase
	Content  string
	Position geometry.Point3D
	Height   float64
	Rotation float64
	Style    string
}

func (t Text) Base() EntityBase { return t.EntityBase }
func (t Text) EntityType() string { return "TEXT" }

// Dimension is a DIMENSION entity.
type Dimension struct {
	EntityBase
	Text            string
	DefinitionPoint geometry.Point3D
	ExtLine1Start   geometry.Point3D
	ExtLine2Start   geometry.Point3D
	Measurement     float64
	DimensionType   int
}

func (d Dimension) Base() EntityBase { return d.EntityBase }
func (d Dimension) EntityType() string { return "DIMENSION" }

// BlockReference is an INSERT entity: a positioned, scaled, rotated
// instance of a named block definition.
type BlockReference struct {
	EntityBase
	BlockName      string
	InsertionPoint geometry.Point3D
	ScaleX, ScaleY, ScaleZ float64
	Rotation       float64
	Attributes     map[string]string
}

func (b BlockReference) Base() EntityBase { return b.EntityBase }
func (b BlockReference) EntityType() string { return "INSERT" }

// Point is a standalone POINT entity.
type Point struct {
	EntityBase
	Position geometry.Point3D
}

func (p Point) Base() EntityBase { return p.EntityBase }
func (p Point) EntityType() string { return "POINT" }

// Spline is parsed but not converted to BIM elements (non-goal: faithful
// spline reproduction). Its control points are retained for completeness
// and for the geometry-signature block recognizer's line/arc counting,
// which treats an unrecognized Spline as neither a line nor an arc.
type Spline struct {
	EntityBase
	ControlPoints []geometry.Point3D
	Degree        int
}

func (s Spline) Base() EntityBase { return s.EntityBase }
func (s Spline) EntityType() string { return "SPLINE" }

// Hatch is parsed but not converted (non-goal).
type Hatch struct {
	EntityBase
	PatternName  string
	BoundaryLoop []geometry.Point3D
}

func (h Hatch) Base() EntityBase { return h.EntityBase }
func (h Hatch) EntityType() string { return "HATCH" }

// Solid is a 2D filled triangle/quad (SOLID entity), requires >= 3
// vertices downstream.
type Solid struct {
	EntityBase
	Vertices []geometry.Point3D
}

func (s Solid) Base() EntityBase { return s.EntityBase }
func (s Solid) EntityType() string { return "SOLID" }

// Face3D is a 3DFACE entity, parsed but not converted (non-goal: 3D
// solids are parsed but not converted).
type Face3D struct {
	EntityBase
	Vertices [4]geometry.Point3D
}

func (f Face3D) Base() EntityBase { return f.EntityBase }
func (f Face3D) EntityType() string { return "3DFACE" }
