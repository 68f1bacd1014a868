package geometry

import "math"

// BoundingBox is an axis-aligned box spanning Min to Max.
type BoundingBox struct {
	Min, Max Point3D
}

// EmptyBoundingBox returns a bounding box in the "not yet started" state —
// Expand grows it correctly from this starting point.
func EmptyBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Point3D{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: Point3D{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
}

// Expand grows the box to include p, returning the new box.
func (b BoundingBox) Expand(p Point3D) BoundingBox {
	return BoundingBox{
		Min: Point3D{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)},
		Max: Point3D{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)},
	}
}

// Union returns the smallest box containing both b and other.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return b.Expand(other.Min).Expand(other.Max)
}

// Width, Height, Depth return the box's extent along X, Y, Z respectively.
func (b BoundingBox) Width() float64  { return b.Max.X - b.Min.X }
func (b BoundingBox) Height() float64 { return b.Max.Y - b.Min.Y }
func (b BoundingBox) Depth() float64  { return b.Max.Z - b.Min.Z }

// Volume returns the product of the three extents. It is zero whenever any
// axis is degenerate (a planar or linear box), which is expected for 2D
// drawing entities — callers compare against a minimum-volume threshold
// rather than treating zero as an error.
func (b BoundingBox) Volume() float64 {
	return b.Width() * b.Height() * b.Depth()
}

// AspectRatio returns Width/Height. Used by the block recognizer's
// geometry-signature fallback; callers must guard against a zero-height box
// before calling this (an infinite ratio carries no classification signal).
func (b BoundingBox) AspectRatio() float64 {
	h := b.Height()
	if h == 0 {
		return math.Inf(1)
	}
	return b.Width() / h
}

// Scale multiplies every dimension about Min by the given factors,
// independently on each axis. This is how a block reference's scaleX/Y/Z
// is applied to a block definition's bounding box (spec §4.4).
func (b BoundingBox) Scale(sx, sy, sz float64) BoundingBox {
	return BoundingBox{
		Min: b.Min,
		Max: Point3D{
			X: b.Min.X + b.Width()*sx,
			Y: b.Min.Y + b.Height()*sy,
			Z: b.Min.Z + b.Depth()*sz,
		},
	}
}
