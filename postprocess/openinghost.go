package postprocess

import (
	"math"

	"github.com/cadbridge/bimimport/convert"
	"github.com/cadbridge/bimimport/geomproc"
	"github.com/cadbridge/bimimport/geometry"
)

// isOpeningCategory reports whether category is one that can be hosted
// into a wall (§4.7 InsertOpeningsIntoWalls targets Door and Window
// elements).
func isOpeningCategory(category string) bool {
	return category == "Doors" || category == "Windows"
}

// InsertOpeningsIntoWalls sets HostElementID on every Door/Window element
// to the nearest Walls-category LineGeometry element within tolerance,
// measured from the opening's geometric center by point-to-segment
// distance (§4.7). Elements without a nearby wall are left unhosted.
func InsertOpeningsIntoWalls(elements []convert.ConvertedElement, tolerance float64) []convert.ConvertedElement {
	type wallRef struct {
		id   string
		line geomproc.LineGeometry
	}
	var walls []wallRef
	for _, e := range elements {
		if e.Category != "Walls" {
			continue
		}
		if line, ok := e.Geometry.(geomproc.LineGeometry); ok {
			walls = append(walls, wallRef{id: e.ID, line: line})
		}
	}

	out := make([]convert.ConvertedElement, len(elements))
	copy(out, elements)

	for i, e := range out {
		if !isOpeningCategory(e.Category) || e.Geometry == nil {
			continue
		}
		center := openingCenter(e.Geometry)

		bestDist := math.Inf(1)
		bestID := ""
		for _, w := range walls {
			d := pointToSegmentDistance(center, w.line.Start, w.line.End)
			if d < bestDist {
				bestDist = d
				bestID = w.id
			}
		}
		if bestID != "" && bestDist <= tolerance {
			out[i].HostElementID = bestID
		}
	}
	return out
}

func openingCenter(g geomproc.Geometry) geometry.Point3D {
	if pt, ok := g.(geomproc.PointGeometry); ok {
		return pt.Position
	}
	box := g.BoundingBox()
	return box.Min.Lerp(box.Max, 0.5)
}

// pointToSegmentDistance returns the distance from p to the segment a-b,
// clamping the projection parameter t to [0,1] (§4.7).
func pointToSegmentDistance(p, a, b geometry.Point3D) float64 {
	ab := b.Sub(a)
	abLen2 := ab.Dot(ab)
	if abLen2 == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / abLen2
	t = math.Max(0, math.Min(1, t))
	closest := a.Add(ab.Scale(t))
	return p.Distance(closest)
}
