package particles

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestWideStrandCount(t *testing.T) {
	tests := []struct {
		width float64
		want  int
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{1.0, 2},
		{1.5, 3},
		{2.4, 4},
		{-1, 0},
	}
	for _, tt := range tests {
		if got := WideStrandCount(tt.width); got != tt.want {
			t.Errorf("WideStrandCount(%v) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestCometStrandLayout(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := NewHeadTailParticle(testPath(), rng, 12, 1.5, 0.3, 1)

	// Primary tail plus floor(1.5*2) = 3 wide strands.
	if len(p.Strands) != 4 {
		t.Fatalf("strand count = %d, want 4", len(p.Strands))
	}
	if p.Strands[0].Lateral != (r3.Vec{}) {
		t.Error("primary tail should carry no lateral offset")
	}
	for i := 1; i < len(p.Strands); i++ {
		if p.Strands[i].Lateral == (r3.Vec{}) {
			t.Errorf("wide strand %d has zero lateral offset", i)
		}
		if len(p.Strands[i].Positions) != 12 {
			t.Errorf("strand %d length = %d, want 12", i, len(p.Strands[i].Positions))
		}
	}
}

func TestCometStrandsShareHistoryOffsets(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	p := NewHeadTailParticle(testPath(), rng, 8, 1.0, 0, 1)
	p.Update(0.003)

	// Every strand resamples the same history, so subtracting each strand's
	// lateral offset must reproduce the primary tail exactly.
	primary := p.Strands[0]
	for si := 1; si < len(p.Strands); si++ {
		s := p.Strands[si]
		for i := range s.Positions {
			got := r3.Sub(s.Positions[i], s.Lateral)
			if d := r3.Norm(r3.Sub(got, primary.Positions[i])); d > 1e-9 {
				t.Fatalf("strand %d sample %d off the shared history by %v", si, i, d)
			}
		}
	}
}

func TestCometFadePrecomputed(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := NewHeadTailParticle(testPath(), rng, 6, 0.5, 0.2, 1)

	want := make([]float32, 6)
	copy(want, p.Fade)
	if want[0] != 1 {
		t.Fatalf("head fade = %v, want 1", want[0])
	}
	if math.Abs(float64(want[5])) > 1e-9 {
		t.Fatalf("tail fade = %v, want 0", want[5])
	}

	for i := 0; i < 100; i++ {
		p.Update(0.004)
	}
	for i := range want {
		if p.Fade[i] != want[i] {
			t.Fatal("fade ramp must not change after construction")
		}
	}
}

func TestCometRebuildThreshold(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	p := NewHeadTailParticle(testPath(), rng, 6, 1.5, 0.2, 1)

	if p.NeedsRebuild(1.5 + WidthRebuildThreshold/2) {
		t.Error("width change inside the threshold should not rebuild")
	}
	if !p.NeedsRebuild(1.5 + 2*WidthRebuildThreshold) {
		t.Error("width change past the threshold should rebuild")
	}
}

func TestCometHeadFollowsPath(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	p := NewHeadTailParticle(testPath(), rng, 6, 0, 0, 1)
	p.Update(0.002)

	want := testPath().PointAt(p.t)
	if d := r3.Norm(r3.Sub(p.Head, want)); d > 1e-9 {
		t.Errorf("head is %v from the curve sample with zero scatter", d)
	}
}
