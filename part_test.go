package polycurve

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/ungerik/go3d/float64/vec3"
)

func linePart() Part {
	return Part{
		Start: v(0, 0, 0),
		Segments: []Segment{
			Line(v(10, 0, 0)),
			Conic(v(15, 5, 0), v(20, 0, 0)),
		},
	}
}

func TestPartPolylineJoints(t *testing.T) {
	got := collect(t)(linePart().UniformPolyline(2))
	want := []vec3.T{
		v(0, 0, 0),
		v(5, 0, 0),
		v(10, 0, 0),
		v(15, 2.5, 0),
		v(20, 0, 0),
	}
	diff(t, want, got, approx)
}

func TestPartPolylineIsConcatenation(t *testing.T) {
	p := Part{
		Start: v(0, 0, 0),
		Segments: []Segment{
			Cubic(v(0, 5, 0), v(5, 10, 0), v(10, 10, 0)),
			Conic(v(15, 10, 1), v(20, 5, 2), v(25, 0, 3), v(30, 0, 4)),
			Line(v(30, -10, 4), v(0, 0, 0)),
		},
	}
	samplers := []Sampler{
		Uniform{N: 5},
		ByAngle{Degrees: 2, Options: constJitter(0.46)},
		ByArea{Area: 0.1, Options: constJitter(0.53)},
	}
	for _, s := range samplers {
		var want []vec3.T
		for i, seg := range p.Segments {
			pts := collect(t)(seg.Polyline(p.SegmentStart(i), s))
			if i > 0 {
				// The joint is emitted by the previous segment.
				pts = pts[1:]
			}
			want = append(want, pts...)
		}
		got := collect(t)(p.Polyline(s))
		diff(t, want, got)

		if got[0] != p.Start {
			t.Errorf("%T: polyline starts at %v, want %v", s, got[0], p.Start)
		}
		if got[len(got)-1] != p.End() {
			t.Errorf("%T: polyline ends at %v, want %v", s, got[len(got)-1], p.End())
		}
		for i := 1; i < len(got); i++ {
			if got[i] == got[i-1] {
				t.Errorf("%T: duplicate point %v at index %d", s, got[i], i)
			}
		}
	}
}

func TestPartEmpty(t *testing.T) {
	p := Part{Start: v(1, 2, 3)}
	got := collect(t)(p.UniformPolyline(4))
	if len(got) != 0 {
		t.Errorf("got %v, want no points", got)
	}
	if p.End() != p.Start {
		t.Errorf("End() = %v, want %v", p.End(), p.Start)
	}
}

func TestPartSegmentStart(t *testing.T) {
	p := linePart()
	diff(t, v(0, 0, 0), p.SegmentStart(0))
	diff(t, v(10, 0, 0), p.SegmentStart(1))
	diff(t, v(20, 0, 0), p.SegmentStart(2))
	diff(t, v(20, 0, 0), p.End())
}

func TestPartClosedIsInert(t *testing.T) {
	p := linePart()
	q := p
	q.Closed = true
	diff(t, collect(t)(p.UniformPolyline(3)), collect(t)(q.UniformPolyline(3)))
}

func TestPartValidate(t *testing.T) {
	p := linePart()
	p.Segments = append(p.Segments, Cubic(v(1, 1, 1), v(2, 2, 2)))
	err := p.Validate()
	if !errors.Is(err, ErrMalformedSegment) {
		t.Fatalf("got %v, want ErrMalformedSegment", err)
	}
	var serr *SegmentError
	if !errors.As(err, &serr) {
		t.Fatalf("got %T, want *SegmentError", err)
	}
	diff(t, &SegmentError{Kind: CubicKind, Len: 2}, serr)
	if !strings.HasPrefix(err.Error(), "segment 2: ") {
		t.Errorf("error %q doesn't name the segment", err)
	}

	if _, err := p.Polyline(Uniform{N: 2}); !errors.Is(err, ErrMalformedSegment) {
		t.Errorf("Polyline: got %v, want ErrMalformedSegment", err)
	}
	if _, err := linePart().Polyline(Uniform{}); !errors.Is(err, ErrInvalidSubdivisions) {
		t.Errorf("Polyline: got %v, want ErrInvalidSubdivisions", err)
	}
}

func TestPartTransform(t *testing.T) {
	p := linePart()
	p.Closed = true
	shift := func(pt vec3.T) vec3.T { return vec3.Add(&pt, &vec3.T{1, 2, 3}) }
	got := p.Transform(shift)
	want := Part{
		Closed: true,
		Start:  v(1, 2, 3),
		Segments: []Segment{
			Line(v(11, 2, 3)),
			Conic(v(16, 7, 3), v(21, 2, 3)),
		},
	}
	diff(t, want, got)
	// The original is untouched.
	diff(t, linePart().Segments, p.Segments)

	pts := collect(t)(got.UniformPolyline(4))
	orig := collect(t)(p.UniformPolyline(4))
	for i := range orig {
		orig[i] = shift(orig[i])
	}
	diff(t, orig, pts, approx)
}

func TestPartPolylineEarlyStop(t *testing.T) {
	seq, err := linePart().UniformPolyline(8)
	if err != nil {
		t.Fatal(err)
	}
	var got []vec3.T
	for pt := range seq {
		got = append(got, pt)
		if len(got) == 3 {
			break
		}
	}
	diff(t, slices.Collect(seq)[:3], got)
}
