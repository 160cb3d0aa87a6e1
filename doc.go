// Package polycurve converts piecewise Bézier curves into polylines.
//
// # Curves, parts, and segments
//
// A [Curve] is an ordered list of [Part] values. A part is a chain of
// segments with point continuity, such as one contour of a glyph: it has an
// explicit start point, and every [Segment] starts where the previous one
// ended. A segment is a run of Bézier pieces of the same degree, tagged with
// its [SegmentKind]: [LinearKind], [ConicKind] (quadratic) or [CubicKind].
// Its vertices hold Degree() control points per piece; the segment's own
// start point is supplied by the part and never stored.
//
// Points are [vec3.T] values from github.com/ungerik/go3d. Outlines that live
// in a plane, like glyphs, simply use z = 0.
//
// Curves are usually built with a [Builder], from FreeType-style tagged
// contours with [FromContour], or from font glyphs with the glyph
// sub-package. [Curve.Transform] maps all points of a curve, for example
// with an [Affine] transform's Apply method.
//
// # Polylines
//
// Polylines are produced by a [Sampler]:
//
//   - [Uniform] evaluates every Bézier piece at N equally spaced
//     parameters.
//   - [ByAngle] adaptively subdivides pieces until, at a sampled point, the
//     two chords to the piece's end points are within a threshold of a
//     straight angle.
//   - [ByArea] adaptively subdivides pieces until the triangle formed by the
//     end points and a sampled point is smaller than a threshold.
//
// All polylines are returned as iter.Seq[vec3.T]. Sequences are lazy and can
// be iterated any number of times. Use [slices.Collect] to turn them into
// slices. Every polyline of a segment or part begins with its start point and
// ends with its last vertex; points at joins between segments are emitted
// once.
//
// # Adaptive sampling
//
// The adaptive samplers evaluate each piece at a parameter t near, but not
// at, 0.5, test the flatness of the resulting triangle, and split the piece at
// t using De Casteljau's algorithm ([Split]) if it isn't flat enough. The
// parameters come from a [Jitter]. By default a [RandJitter] with a fixed
// seed is used, which makes results reproducible; [AdaptiveOptions] selects
// other seeds or sources such as [ConstJitter].
//
// Subdivision depth is bounded by [AdaptiveOptions.MaxDepth]. Reaching the
// bound, which happens for thresholds that cannot be met, isn't an error: the
// end point of the piece is emitted and sampling continues.
//
// # Errors
//
// Segments whose vertex count isn't a positive multiple of their degree are
// rejected with a [*SegmentError] wrapping [ErrMalformedSegment] before any
// point is produced. Polylines are never silently truncated.
package polycurve
