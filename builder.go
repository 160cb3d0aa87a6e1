package polycurve

import (
	"slices"

	"github.com/ungerik/go3d/float64/vec3"
)

// Builder constructs curves from drawing commands, in the style of
// PostScript or font outlines. The zero value is ready to use.
//
// Every MoveTo begins a new part. Consecutive commands of the same kind are
// merged into a single segment, so a run of LineTo calls produces one linear
// segment with one vertex per call.
type Builder struct {
	parts []Part
	// Index of the part that commands are appended to.
	cur option[int]
	// Start and current point of the current part.
	start vec3.T
	last  vec3.T
	// Set after Close, cleared by MoveTo.
	closed bool
}

// MoveTo begins a new part at pt.
func (b *Builder) MoveTo(pt vec3.T) {
	b.parts = append(b.parts, Part{Start: pt})
	b.cur.set(len(b.parts) - 1)
	b.start = pt
	b.last = pt
	b.closed = false
}

// LineTo adds a line from the current point to pt.
//
// LineTo panics if there is no current part. If it is called immediately
// after Close, a new part is begun at the start point of the closed part.
func (b *Builder) LineTo(pt vec3.T) { b.push(LinearKind, pt) }

// QuadTo adds a quadratic Bézier from the current point, with control point
// p1, to p2. It follows the same rules as LineTo.
func (b *Builder) QuadTo(p1, p2 vec3.T) { b.push(ConicKind, p1, p2) }

// CubicTo adds a cubic Bézier from the current point, with control points
// p1 and p2, to p3. It follows the same rules as LineTo.
func (b *Builder) CubicTo(p1, p2, p3 vec3.T) { b.push(CubicKind, p1, p2, p3) }

// Close marks the current part as closed. If the current point differs from
// the part's start point, a line back to the start is added first.
//
// Close panics if there is no current part.
func (b *Builder) Close() {
	if !b.cur.isSet {
		panic("polycurve: Builder.Close without current part")
	}
	if b.last != b.start {
		b.push(LinearKind, b.start)
		Logger().Debug("builder added closing segment", "part", b.cur.value)
	}
	b.parts[b.cur.value].Closed = true
	b.cur.clear()
	b.closed = true
}

// Len returns the number of parts begun so far.
func (b *Builder) Len() int { return len(b.parts) }

// Reset discards everything that has been built.
func (b *Builder) Reset() {
	*b = Builder{}
}

// Curve returns the curve built so far. The builder remains usable; later
// commands don't affect the returned curve.
func (b *Builder) Curve() Curve {
	parts := make([]Part, len(b.parts))
	for i, p := range b.parts {
		parts[i] = Part{
			Closed:   p.Closed,
			Start:    p.Start,
			Segments: make([]Segment, len(p.Segments)),
		}
		for j, seg := range p.Segments {
			parts[i].Segments[j] = Segment{Kind: seg.Kind, Vertices: slices.Clone(seg.Vertices)}
		}
	}
	return Curve{Parts: parts}
}

func (b *Builder) push(kind SegmentKind, pts ...vec3.T) {
	if !b.cur.isSet {
		if !b.closed {
			panic("polycurve: Builder command without MoveTo")
		}
		b.MoveTo(b.start)
	}
	p := &b.parts[b.cur.value]
	if n := len(p.Segments); n > 0 && p.Segments[n-1].Kind == kind {
		p.Segments[n-1].Vertices = append(p.Segments[n-1].Vertices, pts...)
	} else {
		p.Segments = append(p.Segments, Segment{Kind: kind, Vertices: slices.Clone(pts)})
	}
	b.last = pts[len(pts)-1]
}
