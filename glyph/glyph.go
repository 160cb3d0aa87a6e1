// Package glyph builds polycurve curves from font glyph outlines.
//
// Each contour of a glyph becomes one closed part. Quadratic (TrueType) and
// cubic (CFF) outlines map onto conic and cubic segments respectively.
package glyph

import (
	"errors"
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"honnef.co/go/polycurve"
)

// ErrNoGlyph is returned by [LoadRune] when the font has no glyph for a rune.
var ErrNoGlyph = errors.New("glyph: font has no glyph for rune")

// Options configures the conversion of glyph outlines. A nil *Options selects
// the defaults.
type Options struct {
	// FlipY negates y coordinates. sfnt reports outlines with y increasing
	// downwards; with FlipY, y increases upwards, as in the font's design
	// space.
	FlipY bool

	// Z is the z coordinate of all points.
	Z float64

	// Transform, if not nil, is applied to every point after FlipY and Z.
	Transform *polycurve.Affine
}

// Load converts the outline of glyph x, scaled to ppem, into a curve. Glyphs
// without an outline, such as spaces, produce a curve without parts.
//
// buf may be nil, in which case a temporary buffer is allocated.
func Load(f *sfnt.Font, buf *sfnt.Buffer, x sfnt.GlyphIndex, ppem fixed.Int26_6, opts *Options) (polycurve.Curve, error) {
	if buf == nil {
		buf = new(sfnt.Buffer)
	}
	segments, err := f.LoadGlyph(buf, x, ppem, nil)
	if err != nil {
		return polycurve.Curve{}, fmt.Errorf("glyph: loading glyph %d: %w", x, err)
	}
	return FromSegments(segments, opts), nil
}

// LoadRune is like [Load] but looks up the glyph for r first.
func LoadRune(f *sfnt.Font, buf *sfnt.Buffer, r rune, ppem fixed.Int26_6, opts *Options) (polycurve.Curve, error) {
	if buf == nil {
		buf = new(sfnt.Buffer)
	}
	x, err := f.GlyphIndex(buf, r)
	if err != nil {
		return polycurve.Curve{}, fmt.Errorf("glyph: looking up %q: %w", r, err)
	}
	if x == 0 {
		return polycurve.Curve{}, fmt.Errorf("%w %q", ErrNoGlyph, r)
	}
	return Load(f, buf, x, ppem, opts)
}

// FromSegments converts already loaded glyph segments into a curve.
func FromSegments(segments sfnt.Segments, opts *Options) polycurve.Curve {
	var o Options
	if opts != nil {
		o = *opts
	}
	pt := func(p fixed.Point26_6) vec3.T {
		x := float64(p.X) / 64
		y := float64(p.Y) / 64
		if o.FlipY {
			y = -y
		}
		v := vec3.T{x, y, o.Z}
		if o.Transform != nil {
			v = o.Transform.Apply(v)
		}
		return v
	}

	var b polycurve.Builder
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				b.Close()
			}
			b.MoveTo(pt(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			b.LineTo(pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			b.QuadTo(pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			b.CubicTo(pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		default:
			panic(fmt.Sprintf("unhandled case %v", seg.Op))
		}
	}
	if open {
		b.Close()
	}
	return b.Curve()
}
