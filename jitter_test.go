package polycurve

import (
	"math"
	"testing"
)

func TestRandJitterRange(t *testing.T) {
	j := NewRandJitter(1)
	seen := map[float64]int{}
	for range 10000 {
		tt := j.SplitT()
		if tt < 0.45 || tt > 0.55 {
			t.Fatalf("SplitT() = %v, outside of [0.45, 0.55]", tt)
		}
		if tt == 0.5 {
			t.Fatal("SplitT() returned 0.5")
		}
		if r := math.Round(tt*100) / 100; r != tt {
			t.Fatalf("SplitT() = %v, not rounded to two decimals", tt)
		}
		seen[tt]++
	}
	// 0.45 through 0.55, without 0.50.
	if len(seen) != 10 {
		t.Errorf("saw %d distinct values, want 10: %v", len(seen), seen)
	}
}

func TestRandJitterSeed(t *testing.T) {
	draw := func(seed uint64) []float64 {
		j := NewRandJitter(seed)
		out := make([]float64, 100)
		for i := range out {
			out[i] = j.SplitT()
		}
		return out
	}
	diff(t, draw(7), draw(7))
	a, b := draw(7), draw(8)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced the same sequence")
	}
}

func TestConstJitter(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.3, 0.3},
		{0.5, 0.5},
		{0.01, 0.01},
		{0.99, 0.99},
		{0, MinConstJitter},
		{1, MaxConstJitter},
		{-1, MinConstJitter},
		{2, MaxConstJitter},
		{math.NaN(), 0.5},
	}
	for _, tt := range tests {
		if got := ConstJitter(tt.in).SplitT(); got != tt.want {
			t.Errorf("ConstJitter(%v).SplitT() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSeqJitter(t *testing.T) {
	j := NewSeqJitter(0.4, 0.6, 0.45)
	var got []float64
	for range 7 {
		got = append(got, j.SplitT())
	}
	diff(t, []float64{0.4, 0.6, 0.45, 0.4, 0.6, 0.45, 0.4}, got)

	defer func() {
		if recover() == nil {
			t.Error("NewSeqJitter() without parameters didn't panic")
		}
	}()
	NewSeqJitter()
}

func TestAdaptiveOptionsDefaults(t *testing.T) {
	var nilOpts *AdaptiveOptions
	if got := nilOpts.maxDepth(); got != DefaultMaxDepth {
		t.Errorf("nil options: maxDepth() = %d, want %d", got, DefaultMaxDepth)
	}
	if got := (&AdaptiveOptions{MaxDepth: -3}).maxDepth(); got != DefaultMaxDepth {
		t.Errorf("MaxDepth -3: maxDepth() = %d, want %d", got, DefaultMaxDepth)
	}
	if got := (&AdaptiveOptions{MaxDepth: 5}).maxDepth(); got != 5 {
		t.Errorf("MaxDepth 5: maxDepth() = %d, want 5", got)
	}

	ref := NewRandJitter(0)
	j := nilOpts.newJitter()
	for range 20 {
		if a, b := ref.SplitT(), j.SplitT(); a != b {
			t.Fatalf("nil options don't use seed 0: got %v, want %v", b, a)
		}
	}

	ref = NewRandJitter(99)
	j = (&AdaptiveOptions{Seed: 99}).newJitter()
	for range 20 {
		if a, b := ref.SplitT(), j.SplitT(); a != b {
			t.Fatalf("Seed 99: got %v, want %v", b, a)
		}
	}

	calls := 0
	opts := &AdaptiveOptions{Seed: 99, Jitter: func() Jitter { calls++; return ConstJitter(0.3) }}
	if got := opts.newJitter().SplitT(); got != 0.3 {
		t.Errorf("custom jitter: got %v, want 0.3", got)
	}
	if calls != 1 {
		t.Errorf("Jitter called %d times, want 1", calls)
	}
}

func TestConstJitterAtEndPointsStillSubdivides(t *testing.T) {
	start := v(0, 0, 0)
	seg := Conic(v(5, 10, 0), v(10, 0, 0))
	for _, c := range []float64{0, 1, -5, 5} {
		if n := len(collect(t)(seg.AnglePolyline(start, 1, constJitter(c)))); n <= 2 {
			t.Errorf("ConstJitter(%g), angle: got %d points, want a subdivided curve", c, n)
		}
		if n := len(collect(t)(seg.AreaPolyline(start, 0.1, constJitter(c)))); n <= 2 {
			t.Errorf("ConstJitter(%g), area: got %d points, want a subdivided curve", c, n)
		}
	}
}
