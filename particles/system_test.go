package particles

import (
	"math/rand"
	"testing"

	"lumen/config"
	"lumen/paths"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	cfg.Particles.Count = 8
	cfg.Particles.TrailLength = 6
	return cfg
}

func TestUnknownVariantFallsBackToTrail(t *testing.T) {
	cfg := testConfig(t)
	cfg.Particles.Variant = "plasma"

	s := NewSystem(cfg, testPath(), rand.New(rand.NewSource(1)))
	if s.Variant() != VariantTrail {
		t.Errorf("variant = %v, want trail fallback", s.Variant())
	}
	if len(s.Trails()) != 8 {
		t.Errorf("population = %d, want 8", len(s.Trails()))
	}
}

func TestSystemInitRebuildsPopulation(t *testing.T) {
	cfg := testConfig(t)
	cfg.Particles.Variant = "comet"
	s := NewSystem(cfg, testPath(), rand.New(rand.NewSource(2)))

	if s.Count() != 8 {
		t.Fatalf("count = %d, want 8", s.Count())
	}
	old := s.Comets()[0]

	cfg.Particles.Count = 3
	s.Init()
	if s.Count() != 3 {
		t.Errorf("count after Init = %d, want 3", s.Count())
	}
	for _, p := range s.Comets() {
		if p == old {
			t.Error("Init should construct fresh particles")
		}
	}
}

func TestSystemUpdateSetsLifecycle(t *testing.T) {
	cfg := testConfig(t)
	s := NewSystem(cfg, testPath(), rand.New(rand.NewSource(3)))

	for i := 0; i < 10; i++ {
		s.Update()
	}
	for _, p := range s.Trails() {
		if p.Lifecycle < 0 || p.Lifecycle > 1 {
			t.Fatalf("lifecycle multiplier %v outside [0,1]", p.Lifecycle)
		}
	}
}

func TestRecolorKeepsMotionState(t *testing.T) {
	cfg := testConfig(t)
	cfg.Color.Strategy = "random"
	s := NewSystem(cfg, testPath(), rand.New(rand.NewSource(4)))
	s.Update()

	p := s.Trails()[0]
	tBefore := p.t
	posBefore := p.Positions[0]

	s.Recolor()
	if p.t != tBefore || p.Positions[0] != posBefore {
		t.Error("Recolor must not alter motion state")
	}
}

func TestApplyThemeLightForcesContrastColor(t *testing.T) {
	cfg := testConfig(t)
	cfg.Color.Strategy = "random"
	s := NewSystem(cfg, testPath(), rand.New(rand.NewSource(5)))

	s.ApplyTheme(ThemeLight)
	if s.Blend() != BlendNormal {
		t.Error("light theme should request normal compositing")
	}
	for _, p := range s.Trails() {
		if p.Color != lightThemeColor {
			t.Errorf("particle color = %v, want forced %v", p.Color, lightThemeColor)
		}
	}

	// Wrap recoloring also honors the forced color.
	if got := s.reassignColor(lightThemeColor); got != lightThemeColor {
		t.Error("reassign under the light theme must keep the forced color")
	}

	s.ApplyTheme(ThemeDark)
	if s.Blend() != BlendAdditive {
		t.Error("dark theme should request additive compositing")
	}
}

func TestSystemDispose(t *testing.T) {
	cfg := testConfig(t)
	s := NewSystem(cfg, testPath(), rand.New(rand.NewSource(6)))
	s.Dispose()
	if s.Count() != 0 {
		t.Errorf("count after Dispose = %d, want 0", s.Count())
	}
}

func TestLiveSparksBounded(t *testing.T) {
	cfg := testConfig(t)
	cfg.Particles.Variant = "burst"
	cfg.Particles.Burst.EmitChance = 1
	s := NewSystem(cfg, testPath(), rand.New(rand.NewSource(7)))

	bound := cfg.Particles.Count * 3 * cfg.Particles.TrailLength
	for i := 0; i < 300; i++ {
		s.Update()
		if s.LiveSparks() > bound {
			t.Fatalf("live sparks %d exceed bound %d", s.LiveSparks(), bound)
		}
	}
}

func TestSparkPoolTracksTrailLengthAcrossInit(t *testing.T) {
	cfg := testConfig(t)
	cfg.Particles.Variant = "burst"
	s := NewSystem(cfg, testPath(), rand.New(rand.NewSource(9)))

	if got := len(s.Bursts()[0].Sparks); got != 3*cfg.Particles.TrailLength {
		t.Fatalf("pool capacity = %d, want %d", got, 3*cfg.Particles.TrailLength)
	}

	// A runtime trail-length edit followed by a rebuild must shrink the
	// arena; the capacity is always 3x the length in force at Init.
	cfg.Particles.TrailLength = 2
	s.Init()
	if got := len(s.Bursts()[0].Sparks); got != 6 {
		t.Errorf("pool capacity after rebuild = %d, want 6", got)
	}
}

func TestOpenPathSeamMasking(t *testing.T) {
	cfg := testConfig(t)
	cfg.Particles.Count = 1
	cfg.Particles.LifecycleOffsetMax = 0
	cfg.Particles.FadeIn = 0.2
	cfg.Particles.Stable = 0.5
	cfg.Particles.FadeOut = 0.3
	cfg.Particles.Speed = 0.01 // guarantees the next tick crosses t=1

	open := paths.Attractor(config.AttractorConfig{Sigma: 10, Rho: 28, Beta: 8.0 / 3.0, Dt: 0.008, Steps: 200, Scale: 0.3})
	s := NewSystem(cfg, open, rand.New(rand.NewSource(8)))
	p := s.Trails()[0]

	// Drive the particle over the seam and require full transparency there.
	p.t = 0.999
	s.Update()
	if !p.justReset {
		t.Fatal("expected a wrap at the seam")
	}
	if p.Lifecycle > 0.05 {
		t.Errorf("lifecycle right after the seam = %v, want ~0", p.Lifecycle)
	}
}
