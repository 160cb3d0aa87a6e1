package polycurve

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Affine describes a 3D affine transform via coefficients.
//
// The coefficients (N0, ..., N11) represent this augmented matrix:
//
//	| N0 N3 N6 N9  |
//	| N1 N4 N7 N10 |
//	| N2 N5 N8 N11 |
//	| 0  0  0  1   |
//
// The idea is that (A * B) * v == A * (B * v). Use [Affine.Apply] with
// [Curve.Transform] to transform whole curves.
type Affine struct {
	N0, N1, N2, N3, N4, N5, N6, N7, N8, N9, N10, N11 float64
}

// Identity is the identity transform.
var Identity = Affine{N0: 1, N4: 1, N8: 1}

// FlipY negates y coordinates. Useful for converting between y-up and y-down
// spaces, such as font design space and sfnt outlines.
var FlipY = Affine{N0: 1, N4: -1, N8: 1}

// Scale creates an affine transform representing non-uniform scaling.
func Scale(x, y, z float64) Affine {
	return Affine{N0: x, N4: y, N8: z}
}

// Translate creates an affine transform representing translation by v.
func Translate(v vec3.T) Affine {
	return Affine{N0: 1, N4: 1, N8: 1, N9: v[0], N10: v[1], N11: v[2]}
}

// RotateZ creates an affine transform representing rotation about the z axis.
// A positive angle rotates the positive x direction into positive y.
//
// The angle th is expressed in radians.
func RotateZ(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{N0: cos, N1: sin, N3: -sin, N4: cos, N8: 1}
}

// Skew creates an affine transformation that shears x by y and y by x, leaving
// z alone. It can be used to generate faux oblique glyphs.
func Skew(x, y float64) Affine {
	return Affine{N0: 1, N1: y, N3: x, N4: 1, N8: 1}
}

// Coefficients returns the coefficients of the transform.
func (aff Affine) Coefficients() [12]float64 {
	return [12]float64{
		aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5,
		aff.N6, aff.N7, aff.N8, aff.N9, aff.N10, aff.N11,
	}
}

// NewAffine creates a new affine transformation from an array of coefficients.
// Alternatively, you can initialize the fields of [Affine] manually.
func NewAffine(n [12]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7], n[8], n[9], n[10], n[11]}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N3*o.N1 + aff.N6*o.N2,
		aff.N1*o.N0 + aff.N4*o.N1 + aff.N7*o.N2,
		aff.N2*o.N0 + aff.N5*o.N1 + aff.N8*o.N2,

		aff.N0*o.N3 + aff.N3*o.N4 + aff.N6*o.N5,
		aff.N1*o.N3 + aff.N4*o.N4 + aff.N7*o.N5,
		aff.N2*o.N3 + aff.N5*o.N4 + aff.N8*o.N5,

		aff.N0*o.N6 + aff.N3*o.N7 + aff.N6*o.N8,
		aff.N1*o.N6 + aff.N4*o.N7 + aff.N7*o.N8,
		aff.N2*o.N6 + aff.N5*o.N7 + aff.N8*o.N8,

		aff.N0*o.N9 + aff.N3*o.N10 + aff.N6*o.N11 + aff.N9,
		aff.N1*o.N9 + aff.N4*o.N10 + aff.N7*o.N11 + aff.N10,
		aff.N2*o.N9 + aff.N5*o.N10 + aff.N8*o.N11 + aff.N11,
	}
}

// ThenScale creates aff followed by a scaling.
//
// Equivalent to "Scale(x, y, z) * aff"
func (aff Affine) ThenScale(x, y, z float64) Affine {
	return Scale(x, y, z).Mul(aff)
}

// ThenTranslate creates aff followed by a translation by v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v vec3.T) Affine {
	aff.N9 += v[0]
	aff.N10 += v[1]
	aff.N11 += v[2]
	return aff
}

// ThenRotateZ creates aff followed by a rotation of th about the z axis.
//
// Equivalent to "RotateZ(th) * aff"
func (aff Affine) ThenRotateZ(th float64) Affine {
	return RotateZ(th).Mul(aff)
}

// Determinant returns the determinant of the linear part of the transform.
func (aff Affine) Determinant() float64 {
	return aff.N0*(aff.N4*aff.N8-aff.N7*aff.N5) -
		aff.N3*(aff.N1*aff.N8-aff.N7*aff.N2) +
		aff.N6*(aff.N1*aff.N5-aff.N4*aff.N2)
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	// Inverse of the linear part via the adjugate.
	m := Affine{
		N0: (aff.N4*aff.N8 - aff.N7*aff.N5) * invDet,
		N1: (aff.N7*aff.N2 - aff.N1*aff.N8) * invDet,
		N2: (aff.N1*aff.N5 - aff.N4*aff.N2) * invDet,
		N3: (aff.N6*aff.N5 - aff.N3*aff.N8) * invDet,
		N4: (aff.N0*aff.N8 - aff.N6*aff.N2) * invDet,
		N5: (aff.N3*aff.N2 - aff.N0*aff.N5) * invDet,
		N6: (aff.N3*aff.N7 - aff.N6*aff.N4) * invDet,
		N7: (aff.N6*aff.N1 - aff.N0*aff.N7) * invDet,
		N8: (aff.N0*aff.N4 - aff.N3*aff.N1) * invDet,
	}
	t := m.Apply(vec3.T{aff.N9, aff.N10, aff.N11})
	m.N9, m.N10, m.N11 = -t[0], -t[1], -t[2]
	return m
}

// Apply transforms a point.
func (aff Affine) Apply(pt vec3.T) vec3.T {
	return vec3.T{
		aff.N0*pt[0] + aff.N3*pt[1] + aff.N6*pt[2] + aff.N9,
		aff.N1*pt[0] + aff.N4*pt[1] + aff.N7*pt[2] + aff.N10,
		aff.N2*pt[0] + aff.N5*pt[1] + aff.N8*pt[2] + aff.N11,
	}
}

// IsFinite reports whether all coefficients are finite.
func (aff Affine) IsFinite() bool {
	for _, n := range aff.Coefficients() {
		if !isFinite(n) {
			return false
		}
	}
	return true
}
