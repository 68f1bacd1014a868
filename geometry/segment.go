package geometry

import "math"

// LineSegment is a straight run between two points.
type LineSegment struct {
	Start, End Point3D
}

// Length returns the Euclidean length of the segment.
func (s LineSegment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Direction returns the unit vector from Start to End. ok is false when the
// segment is degenerate (Start == End).
func (s LineSegment) Direction() (dir Vector3D, ok bool) {
	return s.End.Sub(s.Start).Normalize()
}

// ArcSegment is a circular arc, the result of converting a polyline bulge
// (spec §4.3) or of an explicit DXF ARC entity.
type ArcSegment struct {
	Start, End Point3D
	Center     Point3D
	Radius     float64
	// CCW is true when the arc sweeps counter-clockwise from Start to End,
	// the sign convention carried by the originating bulge.
	CCW bool
}

// ArcAngle returns the included angle of the arc in radians, always
// positive regardless of CCW — callers that need signed sweep use CCW
// separately.
func (a ArcSegment) ArcAngle() float64 {
	v1 := a.Start.Sub(a.Center)
	v2 := a.End.Sub(a.Center)
	l1, l2 := v1.Length(), v2.Length()
	if l1 == 0 || l2 == 0 {
		return 0
	}
	cosTheta := v1.Dot(v2) / (l1 * l2)
	cosTheta = math.Max(-1, math.Min(1, cosTheta))
	return math.Acos(cosTheta)
}

// Length returns the arc length: radius times the included angle.
func (a ArcSegment) Length() float64 {
	return a.Radius * a.ArcAngle()
}

// Segment is a tagged union of the two geometric primitives a processed
// polyline or ring can be made of. Exactly one of Line or Arc is non-nil.
type Segment struct {
	Line *LineSegment
	Arc  *ArcSegment
}

// Length dispatches to whichever variant is populated; it returns zero for
// a zero-value Segment.
func (s Segment) Length() float64 {
	switch {
	case s.Line != nil:
		return s.Line.Length()
	case s.Arc != nil:
		return s.Arc.Length()
	default:
		return 0
	}
}

// StartPoint and EndPoint return the segment's endpoints regardless of
// variant, used by wall-join and opening-hosting to chain segments.
func (s Segment) StartPoint() Point3D {
	switch {
	case s.Line != nil:
		return s.Line.Start
	case s.Arc != nil:
		return s.Arc.Start
	default:
		return Point3D{}
	}
}

func (s Segment) EndPoint() Point3D {
	switch {
	case s.Line != nil:
		return s.Line.End
	case s.Arc != nil:
		return s.Arc.End
	default:
		return Point3D{}
	}
}
