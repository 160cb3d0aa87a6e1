package polycurve

import (
	"fmt"
	"iter"
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// Sampler selects how Bézier pieces are turned into polylines. The
// implementations are [Uniform], [ByAngle] and [ByArea].
type Sampler interface {
	// Validate reports whether the sampler's parameters are usable.
	Validate() error

	// segment returns the polyline of a valid segment, including start.
	segment(seg Segment, start vec3.T) iter.Seq[vec3.T]
}

var (
	_ Sampler = Uniform{}
	_ Sampler = ByAngle{}
	_ Sampler = ByArea{}
)

// Uniform samples every Bézier piece at N equally spaced parameter values,
// producing N lines per piece.
type Uniform struct {
	N int
}

func (u Uniform) Validate() error {
	if u.N < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidSubdivisions, u.N)
	}
	return nil
}

func (u Uniform) segment(seg Segment, start vec3.T) iter.Seq[vec3.T] {
	return func(yield func(vec3.T) bool) {
		n := float64(u.N)
		var last vec3.T
		for piece := range seg.BezierPieces(start) {
			if !yield(piece[0]) {
				return
			}
			for j := 1; j < u.N; j++ {
				if !yield(Eval(float64(j)/n, piece)) {
					return
				}
			}
			last = piece[len(piece)-1]
		}
		// Yield the terminal vertex exactly once.
		yield(last)
	}
}

// ByAngle adaptively subdivides Bézier pieces until the angle formed at a
// sampled point by the piece's two end points is within Degrees of a straight
// angle. Degrees must lie in [0, 180]; 0 demands exactly straight pieces and
// larger values permit more curvature.
type ByAngle struct {
	Degrees float64
	Options *AdaptiveOptions
}

func (b ByAngle) Validate() error {
	if !isFinite(b.Degrees) || b.Degrees < 0 || b.Degrees > 180 {
		return fmt.Errorf("%w: angle %g outside of [0, 180]", ErrInvalidThreshold, b.Degrees)
	}
	return nil
}

func (b ByAngle) segment(seg Segment, start vec3.T) iter.Seq[vec3.T] {
	return adaptive(seg, start, b.Degrees, flatByAngle, b.Options)
}

// ByArea adaptively subdivides Bézier pieces until the triangle formed by the
// piece's end points and a sampled point has an area smaller than Area.
//
// Area should be positive. Non-positive values only accept degenerate
// triangles, leaving MaxDepth to bound the subdivision of curved pieces.
type ByArea struct {
	Area    float64
	Options *AdaptiveOptions
}

func (b ByArea) Validate() error {
	if !isFinite(b.Area) {
		return fmt.Errorf("%w: area %g", ErrInvalidThreshold, b.Area)
	}
	return nil
}

func (b ByArea) segment(seg Segment, start vec3.T) iter.Seq[vec3.T] {
	return adaptive(seg, start, b.Area, flatByArea, b.Options)
}

// flatness reports whether the piece from a to b, sampled at m, is flat
// enough to be replaced by the line ab.
type flatness func(a, m, b *vec3.T, threshold float64) bool

func flatByAngle(a, m, b *vec3.T, threshold float64) bool {
	p := vec3.Sub(a, m)
	q := vec3.Sub(b, m)
	if p.LengthSqr() == 0 || q.LengthSqr() == 0 {
		// m coincides with an end point; the angle is undefined.
		return true
	}
	// The angle lies in [0, π], so only the lower bound of [180°-threshold,
	// 180°] needs checking. Comparing in radians keeps exactly straight
	// pieces, for which atan2 returns π, flat at a threshold of 0.
	return angleBetween(&p, &q) >= math.Pi-DegreesToRadians(threshold)
}

func flatByArea(a, m, b *vec3.T, threshold float64) bool {
	if *a == *b && *m != *a {
		// Closed loop: the triangle is degenerate, the piece is not.
		return false
	}
	area2 := triangleArea2(a, m, b)
	if area2 == 0 {
		return true
	}
	return threshold > 0 && area2 < threshold*threshold
}

type sampleJob struct {
	pts   []vec3.T
	depth int
}

// adaptive implements adaptive sampling of every piece of seg. Instead of
// recursing, pending sub-pieces are kept on an explicit stack, left half on
// top, so that points come out in curve order and depth is bounded by opts.
func adaptive(seg Segment, start vec3.T, threshold float64, flat flatness, opts *AdaptiveOptions) iter.Seq[vec3.T] {
	return func(yield func(vec3.T) bool) {
		jitter := opts.newJitter()
		maxDepth := opts.maxDepth()
		capped := 0

		if !yield(start) {
			return
		}
		stack := make([]sampleJob, 0, maxDepth+1)
		for piece := range seg.BezierPieces(start) {
			stack = append(stack[:0], sampleJob{pts: piece})
			for len(stack) > 0 {
				job := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				a := &job.pts[0]
				b := &job.pts[len(job.pts)-1]

				if job.depth >= maxDepth {
					capped++
					if !yield(*b) {
						return
					}
					continue
				}
				t := jitter.SplitT()
				m := Eval(t, job.pts)
				if flat(a, &m, b, threshold) {
					if !yield(*b) {
						return
					}
					continue
				}
				left, right := Split(t, job.pts)
				stack = append(stack,
					sampleJob{pts: right, depth: job.depth + 1},
					sampleJob{pts: left, depth: job.depth + 1})
			}
		}
		if capped > 0 {
			Logger().Debug("adaptive sampling reached depth limit",
				"kind", seg.Kind.String(),
				"maxDepth", maxDepth,
				"cappedPieces", capped)
		}
	}
}
