package polycurve

import (
	"math"
	"math/rand/v2"
)

// Jitter supplies the parameter at which adaptive sampling evaluates and
// splits a Bézier piece. Values should lie in the open interval (0, 1).
//
// Adaptive sampling deliberately avoids t = 0.5: for curves that are
// symmetric, or nearly so, the exact midpoint can lie on the chord even though
// the curve is not flat, which would end subdivision too early. Picking a
// parameter slightly off center breaks that symmetry.
type Jitter interface {
	SplitT() float64
}

// RandJitter draws split parameters uniformly from [0.45, 0.55], rounded to
// two decimals. 0.50 is rejected and redrawn.
type RandJitter struct {
	rng *rand.Rand
}

var _ Jitter = (*RandJitter)(nil)

// NewRandJitter returns a RandJitter whose sequence is determined by seed.
func NewRandJitter(seed uint64) *RandJitter {
	return &RandJitter{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (j *RandJitter) SplitT() float64 {
	for {
		t := math.Round((0.45+0.1*j.rng.Float64())*100) / 100
		if t != 0.5 {
			return t
		}
	}
}

// ConstJitter always splits at the same parameter. It makes adaptive
// sampling fully deterministic and independent of evaluation order. Values are
// clamped to [MinConstJitter, MaxConstJitter]: a parameter of 0 or 1 samples
// an end point, which every flatness test accepts as flat.
type ConstJitter float64

// Bounds of the parameters returned by [ConstJitter].
const (
	MinConstJitter = 0.01
	MaxConstJitter = 0.99
)

var _ Jitter = ConstJitter(0)

func (c ConstJitter) SplitT() float64 {
	if math.IsNaN(float64(c)) {
		return 0.5
	}
	return clamp(float64(c), MinConstJitter, MaxConstJitter)
}

// SeqJitter cycles through a fixed list of split parameters.
type SeqJitter struct {
	ts []float64
	i  int
}

var _ Jitter = (*SeqJitter)(nil)

// NewSeqJitter returns a SeqJitter cycling through ts. It panics if ts is
// empty.
func NewSeqJitter(ts ...float64) *SeqJitter {
	if len(ts) == 0 {
		panic("polycurve: NewSeqJitter called without parameters")
	}
	return &SeqJitter{ts: ts}
}

func (s *SeqJitter) SplitT() float64 {
	t := s.ts[s.i]
	s.i = (s.i + 1) % len(s.ts)
	return t
}
