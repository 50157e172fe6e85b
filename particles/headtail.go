package particles

import (
	"math"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"

	"lumen/paths"
)

// WidthRebuildThreshold is the configured tail-width change below which a
// comet keeps its current strand count instead of being reconstructed.
const WidthRebuildThreshold = 0.1

// lateralSpread scales how far wide strands sit from the primary tail.
const lateralSpread = 0.22

// Strand is one tail line of a comet: a fixed lateral offset plus the
// resampled position ring.
type Strand struct {
	Lateral   r3.Vec
	Positions []r3.Vec
}

// HeadTailParticle is a comet: a single head point plus a primary tail and
// zero or more wide strands offset laterally to fake thickness. All strands
// resample the path at the same time offsets behind the head, differing only
// by their lateral vector. The fade ramp is precomputed at construction and
// shared by every strand.
type HeadTailParticle struct {
	mover

	Head    r3.Vec
	Strands []Strand // index 0 is the primary tail
	Fade    []float32

	Color     colorful.Color
	Lifecycle float32

	tailWidth float64 // width the strands were built for
}

// NewHeadTailParticle creates a comet with floor(tailWidth*2) wide strands
// arranged radially around the primary tail.
func NewHeadTailParticle(path *paths.Path, rng *rand.Rand, tailLength int, tailWidth, scatterRadius, offsetMax float64) *HeadTailParticle {
	if tailLength < 1 {
		tailLength = 1
	}
	wide := WideStrandCount(tailWidth)

	p := &HeadTailParticle{
		mover:     newMover(path, rng, scatterRadius, offsetMax),
		Strands:   make([]Strand, 1+wide),
		Fade:      make([]float32, tailLength),
		tailWidth: tailWidth,
	}
	fadeRamp(p.Fade)

	p.Strands[0] = Strand{Positions: make([]r3.Vec, tailLength)}
	radius := tailWidth * lateralSpread
	for k := 0; k < wide; k++ {
		angle := 2 * math.Pi * float64(k) / float64(wide)
		p.Strands[1+k] = Strand{
			Lateral: r3.Vec{
				X: radius * math.Cos(angle),
				Y: radius * math.Sin(angle),
				Z: radius * 0.5 * math.Sin(2*angle),
			},
			Positions: make([]r3.Vec, tailLength),
		}
	}

	p.resample(0)
	return p
}

// WideStrandCount returns floor(tailWidth*2), clamped to >= 0.
func WideStrandCount(tailWidth float64) int {
	n := int(math.Floor(tailWidth * 2))
	if n < 0 {
		return 0
	}
	return n
}

// TailWidth returns the width the strands were built for.
func (p *HeadTailParticle) TailWidth() float64 { return p.tailWidth }

// NeedsRebuild reports whether a configured width change is large enough to
// warrant reconstructing the strand set. Small changes are absorbed to avoid
// thrashing.
func (p *HeadTailParticle) NeedsRebuild(tailWidth float64) bool {
	return math.Abs(tailWidth-p.tailWidth) > WidthRebuildThreshold
}

// Update advances the comet one tick and resamples the head and all strands.
// Returns whether the particle wrapped.
func (p *HeadTailParticle) Update(speedFactor float64) (wrapped bool) {
	wrapped = p.advance(speedFactor)
	p.resample(p.speed(speedFactor))
	return wrapped
}

// resample positions the head at currentT and each strand sample at
// currentT - i*segment, wrapped into [0,1). The segment length tracks the
// current speed so trail density scales with motion.
func (p *HeadTailParticle) resample(segment float64) {
	p.Head = p.samplePath(p.t)
	for si := range p.Strands {
		s := &p.Strands[si]
		for i := range s.Positions {
			tt := p.t - float64(i)*segment
			tt -= math.Floor(tt)
			s.Positions[i] = r3.Add(p.samplePath(tt), s.Lateral)
		}
	}
}
