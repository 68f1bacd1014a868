package geomproc

import "math"

// degToRad converts ARC's degree-valued start/end angles (the DXF wire
// convention) into radians, the convention this package and everything
// downstream of it holds angles in (DESIGN.md open question 1).
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
