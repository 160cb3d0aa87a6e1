package polycurve

import (
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/ungerik/go3d/float64/vec3"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func v(x, y, z float64) vec3.T { return vec3.T{x, y, z} }

// collect returns a function that collects the points of a polyline,
// failing the test on error. It is meant to wrap Polyline calls directly:
//
//	pts := collect(t)(seg.Polyline(start, s))
func collect(t *testing.T) func(iter.Seq[vec3.T], error) []vec3.T {
	return func(seq iter.Seq[vec3.T], err error) []vec3.T {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return slices.Collect(seq)
	}
}

func constJitter(c float64) *AdaptiveOptions {
	return &AdaptiveOptions{Jitter: func() Jitter { return ConstJitter(c) }}
}
