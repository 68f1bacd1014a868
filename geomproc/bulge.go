package geomproc

import (
	"math"

	"github.com/cadbridge/bimimport/geometry"
)

// bulgeEpsilon is the threshold below which a segment's bulge is treated
// as a straight line rather than an arc (§4.3).
const bulgeEpsilon = 1e-4

// bulgeToArc converts a DXF bulge b on the segment from A to B into an
// ArcSegment, following the derivation in §4.3:
//
//	θ = 4·atan(b); chord = |B − A|; radius = chord / (2·sin(|θ|/2))
//	midpoint M = (A+B)/2; chord direction d = (B−A)/|B−A|
//	perpendicular p = rotate-90-CCW(d) if b > 0 else rotate-90-CW(d)
//	sagitta s = |b|·chord/2; apothem a = radius − s
//	center = M + p · (b>0 ? a : −a)
//
// The result is planar in the segment's own XY plane — the perpendicular
// carries no Z component, since DXF polylines carry a single elevation.
func bulgeToArc(a, b geometry.Point3D, bulge float64) geometry.ArcSegment {
	theta := 4 * math.Atan(bulge)
	chord := a.Distance(b)
	radius := chord / (2 * math.Sin(math.Abs(theta)/2))

	mid := a.Lerp(b, 0.5)
	dir, _ := b.Sub(a).Normalize()

	ccw := bulge > 0
	perp := dir.Perpendicular2D(ccw)

	sagitta := math.Abs(bulge) * chord / 2
	apothem := radius - sagitta
	signedApothem := apothem
	if !ccw {
		signedApothem = -apothem
	}
	center := mid.Add(perp.Scale(signedApothem))

	return geometry.ArcSegment{
		Start:  a,
		End:    b,
		Center: center,
		Radius: radius,
		CCW:    ccw,
	}
}

// segmentFor returns the Segment for the span from a to b given the
// originating bulge value, choosing a LineSegment when the bulge is
// within bulgeEpsilon of zero and an ArcSegment otherwise.
func segmentFor(a, b geometry.Point3D, bulge float64) geometry.Segment {
	if math.Abs(bulge) <= bulgeEpsilon {
		ls := geometry.LineSegment{Start: a, End: b}
		return geometry.Segment{Line: &ls}
	}
	arc := bulgeToArc(a, b, bulge)
	return geometry.Segment{Arc: &arc}
}
