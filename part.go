package polycurve

import (
	"fmt"
	"iter"

	"github.com/ungerik/go3d/float64/vec3"
)

// Part is a chain of segments with point continuity, such as one contour of
// a glyph.
//
// Start is the start point of the first segment. Every following segment
// starts at the last vertex of its predecessor.
type Part struct {
	// Closed records whether the part describes a closed outline. It is
	// informational: polyline generation doesn't synthesize a closing line.
	// Builders that want one add it as a segment, see [Builder.Close].
	Closed   bool
	Start    vec3.T
	Segments []Segment
}

// SegmentStart returns the implicit start point of segment i.
func (p Part) SegmentStart(i int) vec3.T {
	if i == 0 {
		return p.Start
	}
	if end, ok := p.Segments[i-1].End(); ok {
		return end
	}
	// Only reachable for invalid parts.
	return p.SegmentStart(i - 1)
}

// End returns the part's last point. For parts without segments, this is
// Start.
func (p Part) End() vec3.T {
	if len(p.Segments) == 0 {
		return p.Start
	}
	return p.SegmentStart(len(p.Segments))
}

// Validate validates all segments of the part.
func (p Part) Validate() error {
	for i, seg := range p.Segments {
		if err := seg.Validate(); err != nil {
			return fmt.Errorf("segment %d: %w", i, err)
		}
	}
	return nil
}

// Polyline returns the polyline approximating the part, as produced by s.
//
// The per-segment polylines are concatenated in order. Each segment's
// polyline begins with the previous segment's end point; that point is only
// emitted once. A part without segments produces an empty sequence.
func (p Part) Polyline(s Sampler) (iter.Seq[vec3.T], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return p.polyline(s), nil
}

func (p Part) polyline(s Sampler) iter.Seq[vec3.T] {
	return func(yield func(vec3.T) bool) {
		for i, seg := range p.Segments {
			first := true
			for pt := range s.segment(seg, p.SegmentStart(i)) {
				if first {
					first = false
					if i > 0 {
						continue
					}
				}
				if !yield(pt) {
					return
				}
			}
		}
	}
}

// UniformPolyline is shorthand for p.Polyline(Uniform{N: n}).
func (p Part) UniformPolyline(n int) (iter.Seq[vec3.T], error) {
	return p.Polyline(Uniform{N: n})
}

// AnglePolyline is shorthand for p.Polyline(ByAngle{Degrees: deg, Options: opts}).
func (p Part) AnglePolyline(deg float64, opts *AdaptiveOptions) (iter.Seq[vec3.T], error) {
	return p.Polyline(ByAngle{Degrees: deg, Options: opts})
}

// AreaPolyline is shorthand for p.Polyline(ByArea{Area: area, Options: opts}).
func (p Part) AreaPolyline(area float64, opts *AdaptiveOptions) (iter.Seq[vec3.T], error) {
	return p.Polyline(ByArea{Area: area, Options: opts})
}

// Transform returns a copy of the part with fn applied to every point.
func (p Part) Transform(fn func(vec3.T) vec3.T) Part {
	out := Part{
		Closed:   p.Closed,
		Start:    fn(p.Start),
		Segments: make([]Segment, len(p.Segments)),
	}
	for i, seg := range p.Segments {
		out.Segments[i] = seg.transform(fn)
	}
	return out
}
