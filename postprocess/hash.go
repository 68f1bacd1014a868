// Package postprocess runs the final fan-in pass over converted elements:
// deduplication, collinear wall merging, opening-to-wall hosting,
// geometry validation, and warning generation (§4.7).
package postprocess

import (
	"fmt"
	"strings"

	"github.com/cadbridge/bimimport/convert"
	"github.com/cadbridge/bimimport/geomproc"
	"github.com/cadbridge/bimimport/geometry"
)

// geometryHash returns a deterministic string key for an element's
// geometry, with coordinates formatted to two decimal places so values
// that round to the same hundredth collapse onto the same key (§4.7
// RemoveDuplicates). Two values closer than 0.01 can still round to
// different keys when they straddle a rounding boundary.
func geometryHash(g geomproc.Geometry) string {
	if g == nil {
		return "nil"
	}
	var b strings.Builder
	b.WriteString(string(g.Type()))
	b.WriteByte('|')

	switch v := g.(type) {
	case geomproc.LineGeometry:
		writePoint(&b, v.Start)
		writePoint(&b, v.End)
	case geomproc.PolylineGeometry:
		for _, seg := range v.Segments {
			writePoint(&b, seg.StartPoint())
			writePoint(&b, seg.EndPoint())
		}
	case geomproc.CircleGeometry:
		writePoint(&b, v.Center)
		fmt.Fprintf(&b, "%.2f", v.Radius)
	case geomproc.ArcGeometry:
		writePoint(&b, v.Center)
		fmt.Fprintf(&b, "%.2f|%.2f|%.2f", v.Radius, v.StartAngle, v.EndAngle)
	case geomproc.EllipseGeometry:
		writePoint(&b, v.Center)
		fmt.Fprintf(&b, "%.2f", v.MinorAxisRatio)
	case geomproc.SolidGeometry:
		for _, p := range v.Vertices {
			writePoint(&b, p)
		}
	case geomproc.PointGeometry:
		writePoint(&b, v.Position)
	}
	return b.String()
}

func writePoint(b *strings.Builder, p geometry.Point3D) {
	fmt.Fprintf(b, "%.2f,%.2f,%.2f;", p.X, p.Y, p.Z)
}

// RemoveDuplicates drops every element after the first whose geometry
// hash repeats, preserving first occurrence and input order.
func RemoveDuplicates(elements []convert.ConvertedElement) []convert.ConvertedElement {
	seen := make(map[string]bool, len(elements))
	out := make([]convert.ConvertedElement, 0, len(elements))
	for _, e := range elements {
		hash := geometryHash(e.Geometry)
		if seen[hash] {
			continue
		}
		seen[hash] = true
		out = append(out, e)
	}
	return out
}
