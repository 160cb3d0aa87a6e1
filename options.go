package polycurve

// DefaultMaxDepth is the subdivision depth at which adaptive sampling stops
// refining a piece when no other value is configured. A piece produces at
// most 2^DefaultMaxDepth points.
const DefaultMaxDepth = 16

// DefaultSubdivisions is a reasonable number of subdivisions per Bézier piece
// for [Uniform] sampling of font-sized outlines.
const DefaultSubdivisions = 8

// AdaptiveOptions configures the adaptive samplers [ByAngle] and [ByArea]. A
// nil *AdaptiveOptions selects the defaults.
type AdaptiveOptions struct {
	// Seed seeds the default [RandJitter]. It is ignored if Jitter is set.
	Seed uint64

	// Jitter, if not nil, returns the source of split parameters. It is
	// called once each time a polyline sequence is iterated, so that
	// repeated iterations produce the same points.
	Jitter func() Jitter

	// MaxDepth bounds the number of times a single Bézier piece is split.
	// Values <= 0 select DefaultMaxDepth. Reaching the bound isn't an error:
	// the piece's end point is emitted and sampling continues.
	MaxDepth int
}

func (o *AdaptiveOptions) newJitter() Jitter {
	if o == nil {
		return NewRandJitter(0)
	}
	if o.Jitter != nil {
		return o.Jitter()
	}
	return NewRandJitter(o.Seed)
}

func (o *AdaptiveOptions) maxDepth() int {
	if o == nil || o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}
