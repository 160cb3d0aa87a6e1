package polycurve

import (
	"fmt"
	"iter"

	"github.com/ungerik/go3d/float64/vec3"
)

// Curve is an ordered collection of parts. The order determines the order of
// points in the curve's polylines.
type Curve struct {
	Parts []Part
}

// Combine returns a new curve consisting of the parts of a followed by the
// parts of b. The inputs are not modified and the result doesn't share a
// backing array with either of them.
func Combine(a, b Curve) Curve {
	return CombineMany(a, b)
}

// CombineMany concatenates the parts of all curves, from left to right. It is
// equivalent to repeated application of [Combine].
func CombineMany(curves ...Curve) Curve {
	n := 0
	for _, c := range curves {
		n += len(c.Parts)
	}
	parts := make([]Part, 0, n)
	for _, c := range curves {
		parts = append(parts, c.Parts...)
	}
	return Curve{Parts: parts}
}

// Append adds parts to the end of the curve.
func (c *Curve) Append(parts ...Part) {
	c.Parts = append(c.Parts, parts...)
}

// Validate validates all parts of the curve.
func (c Curve) Validate() error {
	for i, p := range c.Parts {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("part %d: %w", i, err)
		}
	}
	return nil
}

// Polyline returns the concatenation, in part order, of the polylines of
// all parts, as produced by s. Points of different parts are not connected;
// use [Part.Polyline] to tell them apart.
//
// All parts are validated before the sequence is returned. The sequence can
// be iterated any number of times; with the default jitter, every iteration
// produces the same points.
func (c Curve) Polyline(s Sampler) (iter.Seq[vec3.T], error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return func(yield func(vec3.T) bool) {
		for _, p := range c.Parts {
			for pt := range p.polyline(s) {
				if !yield(pt) {
					return
				}
			}
		}
	}, nil
}

// UniformPolyline is shorthand for c.Polyline(Uniform{N: n}).
func (c Curve) UniformPolyline(n int) (iter.Seq[vec3.T], error) {
	return c.Polyline(Uniform{N: n})
}

// AnglePolyline is shorthand for c.Polyline(ByAngle{Degrees: deg, Options: opts}).
func (c Curve) AnglePolyline(deg float64, opts *AdaptiveOptions) (iter.Seq[vec3.T], error) {
	return c.Polyline(ByAngle{Degrees: deg, Options: opts})
}

// AreaPolyline is shorthand for c.Polyline(ByArea{Area: area, Options: opts}).
func (c Curve) AreaPolyline(area float64, opts *AdaptiveOptions) (iter.Seq[vec3.T], error) {
	return c.Polyline(ByArea{Area: area, Options: opts})
}

// Transform returns a new curve with fn applied to every start point and
// vertex.
func (c Curve) Transform(fn func(vec3.T) vec3.T) Curve {
	out := Curve{Parts: make([]Part, len(c.Parts))}
	for i, p := range c.Parts {
		out.Parts[i] = p.Transform(fn)
	}
	return out
}

// ControlBox returns the smallest axis-aligned box containing all start
// points and vertices. Because Béziers lie within the convex hull of their
// control points, the box also contains the curve. ok is false for curves
// without parts.
func (c Curve) ControlBox() (box Box, ok bool) {
	if len(c.Parts) == 0 {
		return Box{}, false
	}
	box = Box{Min: c.Parts[0].Start, Max: c.Parts[0].Start}
	for _, p := range c.Parts {
		box = box.UnionPoint(p.Start)
		for _, seg := range p.Segments {
			for _, v := range seg.Vertices {
				box = box.UnionPoint(v)
			}
		}
	}
	return box, true
}
