// Package geometry provides the pure value types — points, vectors, bounding
// boxes, and segment variants — shared by every stage of the import
// pipeline.
package geometry

import "math"

// Point3D is a location in 3D drawing space.
type Point3D struct {
	X, Y, Z float64
}

// Sub returns the vector from other to p (p - other).
func (p Point3D) Sub(other Point3D) Vector3D {
	return Vector3D{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

// Add returns p translated by v.
func (p Point3D) Add(v Vector3D) Point3D {
	return Point3D{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Distance returns the Euclidean distance between p and other.
func (p Point3D) Distance(other Point3D) float64 {
	return p.Sub(other).Length()
}

// Scale multiplies every coordinate by factor, producing a new Point3D.
// Used for unit conversion.
func (p Point3D) Scale(factor float64) Point3D {
	return Point3D{X: p.X * factor, Y: p.Y * factor, Z: p.Z * factor}
}

// Lerp returns the point a fraction t of the way from p to other.
func (p Point3D) Lerp(other Point3D, t float64) Point3D {
	return Point3D{
		X: p.X + (other.X-p.X)*t,
		Y: p.Y + (other.Y-p.Y)*t,
		Z: p.Z + (other.Z-p.Z)*t,
	}
}

// Equal reports whether p and other are within tol on every axis.
func (p Point3D) Equal(other Point3D, tol float64) bool {
	return math.Abs(p.X-other.X) <= tol && math.Abs(p.Y-other.Y) <= tol && math.Abs(p.Z-other.Z) <= tol
}
