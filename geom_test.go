package polycurve

import (
	"math"
	"testing"
)

func TestAngleConversion(t *testing.T) {
	for _, deg := range []float64{0, 1, 45, 90, 180, 360, -30} {
		diff(t, deg, RadiansToDegrees(DegreesToRadians(deg)), approx)
	}
	diff(t, math.Pi, DegreesToRadians(180))
	diff(t, 180.0, RadiansToDegrees(math.Pi), approx)
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		p, q [3]float64
		deg  float64
	}{
		{[3]float64{1, 0, 0}, [3]float64{1, 0, 0}, 0},
		{[3]float64{1, 0, 0}, [3]float64{0, 1, 0}, 90},
		{[3]float64{1, 0, 0}, [3]float64{0, 0, 3}, 90},
		{[3]float64{1, 0, 0}, [3]float64{1, 1, 0}, 45},
		{[3]float64{1, 0, 0}, [3]float64{-2, 0, 0}, 180},
		{[3]float64{0, 1, 1}, [3]float64{0, -1, 0}, 135},
	}
	for _, tt := range tests {
		p := v(tt.p[0], tt.p[1], tt.p[2])
		q := v(tt.q[0], tt.q[1], tt.q[2])
		got := RadiansToDegrees(angleBetween(&p, &q))
		diff(t, tt.deg, got, approx)
	}
}

func TestTriangleArea2(t *testing.T) {
	a, b, c := v(0, 0, 0), v(4, 0, 0), v(0, 3, 0)
	diff(t, 36.0, triangleArea2(&a, &b, &c))
	diff(t, 0.0, triangleArea2(&a, &b, &b))
}
