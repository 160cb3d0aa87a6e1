package polycurve

import (
	"github.com/ungerik/go3d/float64/vec3"
)

// Box is an axis-aligned box, given by its minimum and maximum corners.
type Box struct {
	Min, Max vec3.T
}

// NewBoxFromPoints returns the smallest box containing p0 and p1.
func NewBoxFromPoints(p0, p1 vec3.T) Box {
	return Box{Min: p0, Max: p0}.UnionPoint(p1)
}

// Size returns the extent of the box along each axis.
func (b Box) Size() vec3.T {
	return vec3.Sub(&b.Max, &b.Min)
}

// Center returns the center point of the box.
func (b Box) Center() vec3.T {
	return midpoint(&b.Min, &b.Max)
}

// Contains reports whether pt lies within the box, boundary included.
func (b Box) Contains(pt vec3.T) bool {
	for i := range pt {
		if pt[i] < b.Min[i] || pt[i] > b.Max[i] {
			return false
		}
	}
	return true
}

// Union returns the smallest box enclosing b and o.
func (b Box) Union(o Box) Box {
	return b.UnionPoint(o.Min).UnionPoint(o.Max)
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points, starting from
// a zero-size box at the first point, yields their enclosing box.
func (b Box) UnionPoint(pt vec3.T) Box {
	for i := range pt {
		b.Min[i] = min(b.Min[i], pt[i])
		b.Max[i] = max(b.Max[i], pt[i])
	}
	return b
}
