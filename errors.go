package polycurve

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedSegment is returned for segments whose number of vertices
	// isn't a positive multiple of their degree, or whose kind is unknown.
	ErrMalformedSegment = errors.New("polycurve: malformed segment")

	// ErrInvalidSubdivisions is returned when uniform sampling is asked for
	// fewer than one subdivision per Bézier piece.
	ErrInvalidSubdivisions = errors.New("polycurve: number of subdivisions must be at least 1")

	// ErrInvalidThreshold is returned for flatness thresholds outside of
	// their domain.
	ErrInvalidThreshold = errors.New("polycurve: invalid flatness threshold")

	// ErrMalformedContour is returned by [FromContour] and [FromContours] for
	// inconsistent point, tag or end-point data.
	ErrMalformedContour = errors.New("polycurve: malformed contour")
)

// SegmentError describes a segment that failed validation.
type SegmentError struct {
	Kind SegmentKind
	// Len is the number of vertices in the segment.
	Len int
}

func (e *SegmentError) Error() string {
	d := e.Kind.Degree()
	if d == 0 {
		return fmt.Sprintf("polycurve: segment has unknown kind %d", int(e.Kind))
	}
	return fmt.Sprintf("polycurve: %s segment has %d vertices, want a positive multiple of %d", e.Kind, e.Len, d)
}

func (e *SegmentError) Unwrap() error { return ErrMalformedSegment }

// ContourError describes invalid outline data passed to [FromContour].
type ContourError struct {
	// Index is the offending point index, or -1 if the error concerns the
	// contour as a whole.
	Index  int
	Reason string
}

func (e *ContourError) Error() string {
	if e.Index < 0 {
		return "polycurve: malformed contour: " + e.Reason
	}
	return fmt.Sprintf("polycurve: malformed contour at point %d: %s", e.Index, e.Reason)
}

func (e *ContourError) Unwrap() error { return ErrMalformedContour }
