package particles

import (
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"lumen/paths"
)

// TrailParticle is a point travelling the path with a fixed-length ring of
// recent positions behind it. The ring is mutated in place every tick and
// never reallocated.
type TrailParticle struct {
	mover

	// Positions holds the trail samples, head first. Weights is the parallel
	// per-sample alpha ramp. Both are handed to the renderer as-is.
	Positions []r3.Vec
	Weights   []float32

	Color     colorful.Color
	Lifecycle float32 // uniform multiplier set by the System each tick
}

// NewTrailParticle creates a trail particle at a random position along the path.
func NewTrailParticle(path *paths.Path, rng *rand.Rand, trailLength int, scatterRadius, offsetMax float64) *TrailParticle {
	if trailLength < 1 {
		trailLength = 1
	}
	p := &TrailParticle{
		mover:     newMover(path, rng, scatterRadius, offsetMax),
		Positions: make([]r3.Vec, trailLength),
		Weights:   make([]float32, trailLength),
	}
	head := p.samplePath(p.t)
	for i := range p.Positions {
		p.Positions[i] = head
	}
	fadeRamp(p.Weights)
	return p
}

// Update advances the particle one tick. On a wrap the whole ring collapses
// to the new head position so no streak connects the old and new positions;
// the trail then regrows from a point. Returns whether the particle wrapped.
func (p *TrailParticle) Update(speedFactor float64) (wrapped bool) {
	if p.advance(speedFactor) {
		head := p.samplePath(p.t)
		for i := range p.Positions {
			p.Positions[i] = head
		}
		fadeRamp(p.Weights)
		return true
	}

	// Shift toward the tail, discarding the oldest sample.
	for i := len(p.Positions) - 1; i > 0; i-- {
		p.Positions[i] = p.Positions[i-1]
	}
	p.Positions[0] = p.samplePath(p.t)
	fadeRamp(p.Weights)
	return false
}
