package polycurve

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ungerik/go3d/float64/vec3"
)

type SegmentKind int

const (
	// A chain of line segments.
	LinearKind SegmentKind = iota + 1
	// A chain of quadratic Béziers.
	ConicKind
	// A chain of cubic Béziers.
	CubicKind
)

// Degree returns the Bézier degree of the kind, or 0 for unknown kinds.
func (k SegmentKind) Degree() int {
	switch k {
	case LinearKind:
		return 1
	case ConicKind:
		return 2
	case CubicKind:
		return 3
	default:
		return 0
	}
}

func (k SegmentKind) String() string {
	switch k {
	case LinearKind:
		return "linear"
	case ConicKind:
		return "conic"
	case CubicKind:
		return "cubic"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment is a chain of Bézier pieces of the same degree.
//
// The segment's start point isn't stored: it is supplied by whoever owns the
// segment, usually a [Part]. Vertices holds the remaining control points,
// Kind.Degree() of them per piece. The on-curve points are every
// Kind.Degree()-th vertex, and the last vertex is the segment's end point.
type Segment struct {
	Kind     SegmentKind
	Vertices []vec3.T
}

// NewSegment returns a validated segment. The vertices are copied.
func NewSegment(kind SegmentKind, vertices ...vec3.T) (Segment, error) {
	seg := Segment{Kind: kind, Vertices: slices.Clone(vertices)}
	if err := seg.Validate(); err != nil {
		return Segment{}, err
	}
	return seg, nil
}

// Line returns a linear segment through the given points.
func Line(pts ...vec3.T) Segment { return Segment{Kind: LinearKind, Vertices: pts} }

// Conic returns a quadratic segment with the given control points.
func Conic(pts ...vec3.T) Segment { return Segment{Kind: ConicKind, Vertices: pts} }

// Cubic returns a cubic segment with the given control points.
func Cubic(pts ...vec3.T) Segment { return Segment{Kind: CubicKind, Vertices: pts} }

// Validate checks that the number of vertices is a positive multiple of the
// segment's degree. The returned error is a *[SegmentError].
func (seg Segment) Validate() error {
	d := seg.Kind.Degree()
	if d == 0 || len(seg.Vertices) < d || len(seg.Vertices)%d != 0 {
		return &SegmentError{Kind: seg.Kind, Len: len(seg.Vertices)}
	}
	return nil
}

// Pieces returns the number of Bézier pieces in the segment.
func (seg Segment) Pieces() int {
	d := seg.Kind.Degree()
	if d == 0 {
		return 0
	}
	return len(seg.Vertices) / d
}

// End returns the segment's last vertex, and false if it has none.
func (seg Segment) End() (vec3.T, bool) {
	if len(seg.Vertices) == 0 {
		return vec3.T{}, false
	}
	return seg.Vertices[len(seg.Vertices)-1], true
}

// controlPoints returns the segment's control points including start.
func (seg Segment) controlPoints(start vec3.T) []vec3.T {
	pts := make([]vec3.T, 0, len(seg.Vertices)+1)
	pts = append(pts, start)
	return append(pts, seg.Vertices...)
}

// BezierPieces returns the control points of each Bézier piece, starting at
// start. Consecutive pieces share their joining on-curve point. The yielded
// slices must not be modified.
func (seg Segment) BezierPieces(start vec3.T) iter.Seq[[]vec3.T] {
	return func(yield func([]vec3.T) bool) {
		d := seg.Kind.Degree()
		if d == 0 {
			return
		}
		pts := seg.controlPoints(start)
		for i := 0; i+d < len(pts); i += d {
			if !yield(pts[i : i+d+1 : i+d+1]) {
				return
			}
		}
	}
}

// Polyline returns the polyline approximating the segment, starting at
// start, as produced by s. The sequence begins with start and ends with the
// segment's last vertex.
func (seg Segment) Polyline(start vec3.T, s Sampler) (iter.Seq[vec3.T], error) {
	if err := seg.Validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.segment(seg, start), nil
}

// UniformPolyline is shorthand for seg.Polyline(start, Uniform{N: n}).
func (seg Segment) UniformPolyline(start vec3.T, n int) (iter.Seq[vec3.T], error) {
	return seg.Polyline(start, Uniform{N: n})
}

// AnglePolyline is shorthand for seg.Polyline(start, ByAngle{Degrees: deg, Options: opts}).
func (seg Segment) AnglePolyline(start vec3.T, deg float64, opts *AdaptiveOptions) (iter.Seq[vec3.T], error) {
	return seg.Polyline(start, ByAngle{Degrees: deg, Options: opts})
}

// AreaPolyline is shorthand for seg.Polyline(start, ByArea{Area: area, Options: opts}).
func (seg Segment) AreaPolyline(start vec3.T, area float64, opts *AdaptiveOptions) (iter.Seq[vec3.T], error) {
	return seg.Polyline(start, ByArea{Area: area, Options: opts})
}

func (seg Segment) transform(fn func(vec3.T) vec3.T) Segment {
	out := Segment{Kind: seg.Kind, Vertices: make([]vec3.T, len(seg.Vertices))}
	for i, v := range seg.Vertices {
		out.Vertices[i] = fn(v)
	}
	return out
}
