package particles

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"lumen/config"
	"lumen/paths"
)

// Spark is one short-lived sub-particle emitted by a BurstParticle. Life runs
// from 1 to 0; the renderer shades sparks by this heat scalar.
type Spark struct {
	Pos  r3.Vec
	Vel  r3.Vec
	Life float64
	Size float64
}

// BurstParticle is a guide point that advances along the path like a trail
// particle but, instead of carrying a visible trail, continuously sheds
// sparks from its current position. Sparks live in a fixed arena with a
// live-count cursor: the live sparks always occupy the prefix Sparks[:Live],
// which is the draw range exposed to the renderer.
type BurstParticle struct {
	mover

	Sparks []Spark // arena, capacity 3 x trail length
	Live   int     // live prefix length

	Lifecycle float32
}

// NewBurstParticle creates a burst particle with its spark arena preallocated.
func NewBurstParticle(path *paths.Path, rng *rand.Rand, poolCap int, scatterRadius, offsetMax float64) *BurstParticle {
	if poolCap < 1 {
		poolCap = 1
	}
	return &BurstParticle{
		mover:  newMover(path, rng, scatterRadius, offsetMax),
		Sparks: make([]Spark, poolCap),
	}
}

// Update advances the guide, emits new sparks with the configured
// probability, and integrates every live spark. Expired slots are freed by
// swapping the last live spark in, so live order is not preserved but removal
// stays O(1). Returns whether the guide wrapped.
func (p *BurstParticle) Update(speedFactor float64, cfg config.BurstConfig) (wrapped bool) {
	wrapped = p.advance(speedFactor)

	if p.rng.Float64() < cfg.EmitChance {
		p.emit(cfg)
	}
	p.integrate(cfg)
	return wrapped
}

// emit sheds 2-6 sparks from the guide position. Emission past arena
// capacity is silently dropped.
func (p *BurstParticle) emit(cfg config.BurstConfig) {
	count := 2 + p.rng.Intn(5)
	origin := p.samplePath(p.t)
	tangent := p.path.TangentAt(p.t)

	for i := 0; i < count; i++ {
		if p.Live >= len(p.Sparks) {
			return
		}

		// Direction mixes the path tangent with a random spherical direction,
		// biased by the path-follow parameter, plus a mild downward pull that
		// grows as the follow bias shrinks.
		dir := r3.Add(
			r3.Scale(cfg.PathFollow, tangent),
			r3.Scale(1-cfg.PathFollow, randomDirection(p.rng)),
		)
		dir.Y -= 0.35 * (1 - cfg.PathFollow)
		if n := r3.Norm(dir); n > 1e-12 {
			dir = r3.Scale(1/n, dir)
		} else {
			dir = r3.Vec{Y: -1}
		}

		speed := cfg.SparkSpeed * (0.5 + p.rng.Float64())
		p.Sparks[p.Live] = Spark{
			Pos:  origin,
			Vel:  r3.Scale(speed, dir),
			Life: 1,
			Size: cfg.SparkSize * (0.5 + p.rng.Float64()),
		}
		p.Live++
	}
}

// integrate steps every live spark and compacts freed slots.
func (p *BurstParticle) integrate(cfg config.BurstConfig) {
	for i := 0; i < p.Live; i++ {
		s := &p.Sparks[i]
		s.Life -= cfg.LifeDecay * (0.5 + p.rng.Float64())
		if s.Life <= 0 {
			// Swap the last live spark into this slot and retry the index.
			p.Live--
			p.Sparks[i] = p.Sparks[p.Live]
			i--
			continue
		}
		s.Vel.Y -= cfg.Gravity
		s.Pos = r3.Add(s.Pos, s.Vel)
		s.Size *= cfg.SizeDecay
	}
}
