package polycurve

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// DegreesToRadians converts an angle from degrees to radians.
func DegreesToRadians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// RadiansToDegrees converts an angle from radians to degrees.
func RadiansToDegrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// angleBetween returns the angle in radians between p and q, in [0, π].
//
// atan2 of the cross and dot products stays accurate near 0 and π, where
// acos of the normalized dot product loses most of its precision.
func angleBetween(p, q *vec3.T) float64 {
	c := vec3.Cross(p, q)
	return math.Atan2(c.Length(), vec3.Dot(p, q))
}

// triangleArea2 returns the squared area of the triangle (a, b, c).
func triangleArea2(a, b, c *vec3.T) float64 {
	ab := vec3.Sub(b, a)
	ac := vec3.Sub(c, a)
	n := vec3.Cross(&ab, &ac)
	return 0.25 * n.LengthSqr()
}

func midpoint(a, b *vec3.T) vec3.T {
	return vec3.Interpolate(a, b, 0.5)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) clear() {
	opt.isSet = false
	opt.value = *new(T)
}
