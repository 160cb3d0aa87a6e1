package polycurve

import (
	"slices"

	"github.com/ungerik/go3d/float64/vec3"
)

// Eval evaluates the Bézier curve defined by the control points pts at
// parameter t, using De Casteljau's algorithm. pts includes the curve's start
// and end points; its degree is len(pts)-1.
//
// Eval(0, pts) is pts[0] and Eval(1, pts) is the last point. A single control
// point evaluates to itself for every t. Eval panics if pts is empty.
func Eval(t float64, pts []vec3.T) vec3.T {
	switch len(pts) {
	case 0:
		panic("polycurve: Eval of empty control point list")
	case 1:
		return pts[0]
	case 2:
		return vec3.Interpolate(&pts[0], &pts[1], t)
	}
	var scratch [4]vec3.T
	buf := append(scratch[:0], pts...)
	for n := len(buf) - 1; n > 0; n-- {
		for i := range n {
			buf[i] = vec3.Interpolate(&buf[i], &buf[i+1], t)
		}
	}
	return buf[0]
}

// Split subdivides the Bézier curve defined by pts at parameter t. left
// covers the parameter range [0, t] and right covers [t, 1]; both run in the
// direction of the original curve and have the same degree as pts.
//
// The last point of left and the first point of right are both Eval(t, pts).
// Split panics if pts is empty.
func Split(t float64, pts []vec3.T) (left, right []vec3.T) {
	if len(pts) == 0 {
		panic("polycurve: Split of empty control point list")
	}
	n := len(pts)
	left = make([]vec3.T, n)
	right = make([]vec3.T, n)
	buf := slices.Clone(pts)
	for level := range n {
		// Each reduction contributes its first point to left and its last
		// point to right, which is filled back to front.
		left[level] = buf[0]
		right[n-1-level] = buf[len(buf)-1]
		for i := range len(buf) - 1 {
			buf[i] = vec3.Interpolate(&buf[i], &buf[i+1], t)
		}
		buf = buf[:len(buf)-1]
	}
	return left, right
}
