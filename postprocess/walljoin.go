package postprocess

import (
	"math"

	"github.com/cadbridge/bimimport/convert"
	"github.com/cadbridge/bimimport/geomproc"
	"github.com/cadbridge/bimimport/geometry"
)

const collinearityTolerance = 0.999

// wallEntry pairs a Walls-category element with its original index and
// its LineGeometry, the only shape JoinWalls operates on.
type wallEntry struct {
	element convert.ConvertedElement
	index   int
	line    geomproc.LineGeometry
}

// JoinWalls merges connected-collinear Walls-category elements whose
// geometry is a LineGeometry (§4.7). Non-LineGeometry walls, and every
// non-wall element, pass through unchanged and in their original
// relative order. It returns the resulting element slice and the number
// of walls actually merged away (WallsJoined).
//
// Known permissive behavior (DESIGN.md open question 4): joinability
// checks endpoint-to-endpoint proximity and collinearity only — it does
// not check whether the endpoints lie on the same line extension, so two
// parallel collinear segments with overlapping projections would merge.
// This matches the source behavior and is not fixed here.
func JoinWalls(elements []convert.ConvertedElement, tolerance float64) ([]convert.ConvertedElement, int) {
	var walls []wallEntry
	wallIndexSet := make(map[int]bool)
	for i, e := range elements {
		if e.Category != "Walls" {
			continue
		}
		line, ok := e.Geometry.(geomproc.LineGeometry)
		if !ok {
			continue
		}
		walls = append(walls, wallEntry{element: e, index: i, line: line})
		wallIndexSet[i] = true
	}

	grouped := make(map[int]bool, len(walls))
	mergedByIndex := make(map[int]convert.ConvertedElement)
	joinedCount := 0

	for _, seed := range walls {
		if grouped[seed.index] {
			continue
		}
		group := []wallEntry{seed}
		grouped[seed.index] = true

		for {
			extended := false
			for _, candidate := range walls {
				if grouped[candidate.index] {
					continue
				}
				if joinableWithAny(group, candidate, tolerance) {
					group = append(group, candidate)
					grouped[candidate.index] = true
					extended = true
				}
			}
			if !extended {
				break
			}
		}

		if len(group) == 1 {
			mergedByIndex[group[0].index] = group[0].element
			continue
		}

		merged := mergeWallGroup(group)
		mergedByIndex[group[0].index] = merged
		joinedCount += len(group) - 1
	}

	out := make([]convert.ConvertedElement, 0, len(elements))
	for i, e := range elements {
		if !wallIndexSet[i] {
			out = append(out, e)
			continue
		}
		if merged, ok := mergedByIndex[i]; ok {
			out = append(out, merged)
		}
		// indices absorbed into another group's merge are simply dropped.
	}
	return out, joinedCount
}

func joinableWithAny(group []wallEntry, candidate wallEntry, tolerance float64) bool {
	for _, member := range group {
		if joinable(member.line, candidate.line, tolerance) {
			return true
		}
	}
	return false
}

func joinable(a, b geomproc.LineGeometry, tolerance float64) bool {
	da, okA := a.Direction()
	db, okB := b.Direction()
	if !okA || !okB {
		return false
	}
	if math.Abs(da.Dot(db)) <= collinearityTolerance {
		return false
	}
	endpoints := []geometry.Point3D{a.Start, a.End}
	others := []geometry.Point3D{b.Start, b.End}
	for _, p := range endpoints {
		for _, q := range others {
			if p.Distance(q) <= tolerance {
				return true
			}
		}
	}
	return false
}

// mergeWallGroup spans the projection extremes of every endpoint in the
// group along the seed wall's direction, inheriting all non-geometry
// properties from the group's first wall (§4.7).
func mergeWallGroup(group []wallEntry) convert.ConvertedElement {
	first := group[0]
	dir, ok := first.line.Direction()
	if !ok {
		return first.element
	}
	origin := first.line.Start

	minT, maxT := math.Inf(1), math.Inf(-1)
	var minPoint, maxPoint geometry.Point3D
	for _, entry := range group {
		for _, p := range []geometry.Point3D{entry.line.Start, entry.line.End} {
			t := p.Sub(origin).Dot(dir)
			if t < minT {
				minT = t
				minPoint = p
			}
			if t > maxT {
				maxT = t
				maxPoint = p
			}
		}
	}

	merged := first.element
	merged.Geometry = geomproc.LineGeometry{Start: minPoint, End: maxPoint}
	return merged
}
