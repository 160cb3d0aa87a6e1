// Package sdfpoly turns polylines of closed parts into 2D signed distance
// fields from github.com/deadsy/sdfx, for use in SDF based modelling such as
// extruding glyph outlines.
//
// Only the x and y coordinates of the polyline are used.
package sdfpoly

import (
	"errors"
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"

	"honnef.co/go/polycurve"
)

// ErrTooFewVertices is returned for parts whose polyline has fewer than three
// distinct vertices.
var ErrTooFewVertices = errors.New("sdfpoly: polygon needs at least 3 vertices")

// Vertices returns the x/y projection of the part's polyline as produced by
// s. If the polyline returns to its first point, the duplicate closing
// vertex is dropped, as polygons close implicitly.
func Vertices(part polycurve.Part, s polycurve.Sampler) ([]v2.Vec, error) {
	seq, err := part.Polyline(s)
	if err != nil {
		return nil, err
	}
	var out []v2.Vec
	for p := range seq {
		v := v2.Vec{X: p[0], Y: p[1]}
		if n := len(out); n > 0 && out[n-1] == v {
			continue
		}
		out = append(out, v)
	}
	if n := len(out); n > 1 && out[0] == out[n-1] {
		out = out[:n-1]
	}
	return out, nil
}

// Polygon returns the signed distance field of the polygon formed by the
// part's polyline. Distances are negative inside the polygon.
func Polygon(part polycurve.Part, s polycurve.Sampler) (sdf.SDF2, error) {
	verts, err := Vertices(part, s)
	if err != nil {
		return nil, err
	}
	if len(verts) < 3 {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewVertices, len(verts))
	}
	return sdf.Polygon2D(verts)
}

// Polygons returns one polygon per part of c.
func Polygons(c polycurve.Curve, s polycurve.Sampler) ([]sdf.SDF2, error) {
	out := make([]sdf.SDF2, 0, len(c.Parts))
	for i, p := range c.Parts {
		poly, err := Polygon(p, s)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}
		out = append(out, poly)
	}
	polycurve.Logger().Debug("built sdf polygons", "parts", len(out))
	return out, nil
}
