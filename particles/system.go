package particles

import (
	"log/slog"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"

	"lumen/config"
	"lumen/paths"
)

// Variant identifies a particle type.
type Variant uint8

const (
	VariantTrail Variant = iota
	VariantBurst
	VariantComet
)

// String returns the config key for the variant.
func (v Variant) String() string {
	switch v {
	case VariantBurst:
		return "burst"
	case VariantComet:
		return "comet"
	default:
		return "trail"
	}
}

// ParseVariant resolves a config key, falling back to the trail variant with
// a warning. Never a hard failure.
func ParseVariant(key string) Variant {
	switch key {
	case "trail":
		return VariantTrail
	case "burst":
		return VariantBurst
	case "comet":
		return VariantComet
	}
	slog.Warn("unknown particle variant, falling back to trail", "variant", key)
	return VariantTrail
}

// BlendMode is the compositing hint handed to the renderer.
type BlendMode uint8

const (
	BlendAdditive BlendMode = iota
	BlendNormal
)

// Theme selects the compositing mode and, for the light theme, a forced
// contrast color overriding the color strategy.
type Theme uint8

const (
	ThemeDark Theme = iota
	ThemeLight
)

// lightThemeColor is the fixed contrast color forced by the light theme.
var lightThemeColor = colorful.Color{R: 0.16, G: 0.1, B: 0.45}

// System owns a homogeneous population of one particle variant. Dispatch is
// by the variant tag over per-variant slices; exactly one slice is populated
// at a time. All operations run on the single frame-driven thread.
type System struct {
	cfg     *config.Config
	path    *paths.Path
	rng     *rand.Rand
	colors  *Assigner
	variant Variant

	trails []*TrailParticle
	bursts []*BurstParticle
	comets []*HeadTailParticle

	theme  Theme
	blend  BlendMode
	forced *colorful.Color // set by the light theme, overrides the strategy
}

// NewSystem builds a manager for the configured variant and populates it.
func NewSystem(cfg *config.Config, path *paths.Path, rng *rand.Rand) *System {
	s := &System{
		cfg:     cfg,
		path:    path,
		rng:     rng,
		colors:  NewAssigner(&cfg.Color, rng),
		variant: ParseVariant(cfg.Particles.Variant),
		blend:   BlendAdditive,
	}
	s.Init()
	return s
}

// Variant returns the variant this system manages.
func (s *System) Variant() Variant { return s.variant }

// Blend returns the requested compositing mode.
func (s *System) Blend() BlendMode { return s.blend }

// Trails returns the trail population (nil for other variants).
func (s *System) Trails() []*TrailParticle { return s.trails }

// Bursts returns the burst population (nil for other variants).
func (s *System) Bursts() []*BurstParticle { return s.bursts }

// Comets returns the comet population (nil for other variants).
func (s *System) Comets() []*HeadTailParticle { return s.comets }

// Count returns the number of owned particles.
func (s *System) Count() int {
	switch s.variant {
	case VariantBurst:
		return len(s.bursts)
	case VariantComet:
		return len(s.comets)
	default:
		return len(s.trails)
	}
}

// LiveSparks returns the total live sub-particle count across the burst
// population. Zero for other variants.
func (s *System) LiveSparks() int {
	total := 0
	for _, b := range s.bursts {
		total += b.Live
	}
	return total
}

// Init disposes any existing particles and constructs a fresh population
// from the current configuration. Structural fields (variant, count, trail
// length, tail width, pool capacity) are snapshotted here.
func (s *System) Init() {
	s.Dispose()
	pc := &s.cfg.Particles
	s.variant = ParseVariant(pc.Variant)

	switch s.variant {
	case VariantBurst:
		// Arena capacity tracks the trail length in force at rebuild time.
		poolCap := 3 * pc.TrailLength
		s.bursts = make([]*BurstParticle, pc.Count)
		for i := range s.bursts {
			s.bursts[i] = NewBurstParticle(s.path, s.rng, poolCap, pc.ScatterRadius, pc.LifecycleOffsetMax)
		}
	case VariantComet:
		s.comets = make([]*HeadTailParticle, pc.Count)
		for i := range s.comets {
			s.comets[i] = NewHeadTailParticle(s.path, s.rng, pc.TrailLength, pc.TailWidth, pc.ScatterRadius, pc.LifecycleOffsetMax)
			s.comets[i].Color = s.assignColor()
		}
	default:
		s.trails = make([]*TrailParticle, pc.Count)
		for i := range s.trails {
			s.trails[i] = NewTrailParticle(s.path, s.rng, pc.TrailLength, pc.ScatterRadius, pc.LifecycleOffsetMax)
			s.trails[i].Color = s.assignColor()
		}
	}
}

// Update ticks every owned particle once and applies the lifecycle
// multiplier. Live fields (speed, fades, emission knobs) are re-read from the
// configuration each tick. Comets whose configured tail width drifted past
// the rebuild threshold are reconstructed in place.
func (s *System) Update() {
	pc := &s.cfg.Particles
	tm := FadeTiming{FadeIn: pc.FadeIn, Stable: pc.Stable, FadeOut: pc.FadeOut}

	switch s.variant {
	case VariantBurst:
		for _, p := range s.bursts {
			p.Update(pc.Speed, pc.Burst)
			p.Lifecycle = float32(p.lifecycleAlpha(tm))
		}
	case VariantComet:
		for i, p := range s.comets {
			if p.NeedsRebuild(pc.TailWidth) {
				np := NewHeadTailParticle(s.path, s.rng, len(p.Fade), pc.TailWidth, pc.ScatterRadius, pc.LifecycleOffsetMax)
				np.Color = p.Color
				s.comets[i] = np
				p = np
			}
			if p.Update(pc.Speed) {
				p.Color = s.reassignColor(p.Color)
			}
			p.Lifecycle = float32(p.lifecycleAlpha(tm))
		}
	default:
		for _, p := range s.trails {
			if p.Update(pc.Speed) {
				p.Color = s.reassignColor(p.Color)
			}
			p.Lifecycle = float32(p.lifecycleAlpha(tm))
		}
	}
}

// Recolor reassigns colors to all particles with the current strategy without
// touching motion state. Bursts shade sparks by heat, not by strategy.
func (s *System) Recolor() {
	for _, p := range s.trails {
		p.Color = s.assignColor()
	}
	for _, p := range s.comets {
		p.Color = s.assignColor()
	}
}

// SetPath swaps the path all particles follow and rebuilds the population.
func (s *System) SetPath(p *paths.Path) {
	s.path = p
	s.Init()
}

// SetColors swaps the color assigner and recolors the population. Motion
// state is untouched.
func (s *System) SetColors(a *Assigner) {
	s.colors = a
	s.Recolor()
}

// ApplyTheme switches the compositing mode. The light theme additionally
// forces a fixed contrast color over the strategy.
func (s *System) ApplyTheme(theme Theme) {
	s.theme = theme
	if theme == ThemeLight {
		s.blend = BlendNormal
		c := lightThemeColor
		s.forced = &c
	} else {
		s.blend = BlendAdditive
		s.forced = nil
	}
	s.Recolor()
}

// Dispose releases every owned particle buffer.
func (s *System) Dispose() {
	s.trails = nil
	s.bursts = nil
	s.comets = nil
}

func (s *System) assignColor() colorful.Color {
	if s.forced != nil {
		return *s.forced
	}
	return s.colors.Assign()
}

func (s *System) reassignColor(current colorful.Color) colorful.Color {
	if s.forced != nil {
		return *s.forced
	}
	return s.colors.Reassign(current)
}
