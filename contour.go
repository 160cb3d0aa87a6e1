package polycurve

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// PointTag classifies the points of an outline contour, using the values of
// FreeType's FT_CURVE_TAG constants.
type PointTag uint8

const (
	// TagConic marks an off-curve control point of a quadratic Bézier. Two
	// consecutive conic points imply an on-curve point halfway between them.
	TagConic PointTag = 0
	// TagOn marks an on-curve point.
	TagOn PointTag = 1
	// TagCubic marks an off-curve control point of a cubic Bézier. Cubic
	// points come in pairs.
	TagCubic PointTag = 2
)

// FromContour converts one closed outline contour, given as points and their
// tags, into a part.
//
// The part starts at the first on-curve point. Contours without on-curve
// points, as allowed by TrueType, start at the implied point between the last
// and the first point. The closing line or curve back to the start is always
// part of the result, and the part is marked as closed.
//
// The returned error wraps [ErrMalformedContour].
func FromContour(points []vec3.T, tags []PointTag) (Part, error) {
	if len(points) != len(tags) {
		return Part{}, &ContourError{Index: -1, Reason: fmt.Sprintf("%d points but %d tags", len(points), len(tags))}
	}
	if len(points) == 0 {
		return Part{}, &ContourError{Index: -1, Reason: "no points"}
	}
	for i, tag := range tags {
		if tag > TagCubic {
			return Part{}, &ContourError{Index: i, Reason: fmt.Sprintf("unknown tag %d", tag)}
		}
	}

	n := len(points)
	first := -1
	for i, tag := range tags {
		if tag == TagOn {
			first = i
			break
		}
	}

	var b Builder
	var order []int
	if first >= 0 {
		b.MoveTo(points[first])
		for k := 1; k < n; k++ {
			order = append(order, (first+k)%n)
		}
	} else {
		for i, tag := range tags {
			if tag != TagConic {
				return Part{}, &ContourError{Index: i, Reason: "cubic control point in contour without on-curve points"}
			}
		}
		if n == 1 {
			b.MoveTo(points[0])
		} else {
			b.MoveTo(midpoint(&points[n-1], &points[0]))
		}
		for k := range n {
			order = append(order, k)
		}
	}

	var conic option[vec3.T]
	var cubic []vec3.T
	// onCurve handles an explicit or the final, implied on-curve point.
	onCurve := func(idx int, pt vec3.T) error {
		switch {
		case len(cubic) == 2:
			b.CubicTo(cubic[0], cubic[1], pt)
			cubic = cubic[:0]
		case len(cubic) != 0:
			return &ContourError{Index: idx, Reason: "unpaired cubic control point"}
		case conic.isSet:
			b.QuadTo(conic.value, pt)
			conic.clear()
		case pt != b.last:
			b.LineTo(pt)
		}
		return nil
	}
	for _, i := range order {
		pt := points[i]
		switch tags[i] {
		case TagOn:
			if err := onCurve(i, pt); err != nil {
				return Part{}, err
			}
		case TagConic:
			if len(cubic) != 0 {
				return Part{}, &ContourError{Index: i, Reason: "conic control point after cubic control point"}
			}
			if conic.isSet {
				b.QuadTo(conic.value, midpoint(&conic.value, &pt))
			}
			conic.set(pt)
		case TagCubic:
			if conic.isSet {
				return Part{}, &ContourError{Index: i, Reason: "cubic control point after conic control point"}
			}
			if len(cubic) == 2 {
				return Part{}, &ContourError{Index: i, Reason: "more than two consecutive cubic control points"}
			}
			cubic = append(cubic, pt)
		}
	}
	if err := onCurve(-1, b.start); err != nil {
		return Part{}, err
	}
	b.Close()
	return b.Curve().Parts[0], nil
}

// FromContours converts a FreeType-style outline into a curve with one part
// per contour. ends holds the index of the last point of each contour, in
// increasing order; the last entry must be len(points)-1.
func FromContours(points []vec3.T, tags []PointTag, ends []int) (Curve, error) {
	if len(points) != len(tags) {
		return Curve{}, &ContourError{Index: -1, Reason: fmt.Sprintf("%d points but %d tags", len(points), len(tags))}
	}
	var c Curve
	lo := 0
	for i, end := range ends {
		if end < lo || end >= len(points) {
			return Curve{}, &ContourError{Index: -1, Reason: fmt.Sprintf("contour %d ends at invalid index %d", i, end)}
		}
		p, err := FromContour(points[lo:end+1], tags[lo:end+1])
		if err != nil {
			return Curve{}, fmt.Errorf("contour %d: %w", i, err)
		}
		c.Append(p)
		lo = end + 1
	}
	if lo != len(points) {
		return Curve{}, &ContourError{Index: -1, Reason: fmt.Sprintf("%d points after the last contour", len(points)-lo)}
	}
	return c, nil
}
