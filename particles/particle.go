package particles

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"

	"lumen/paths"
)

// mover carries the kinematic state shared by every particle variant: the
// position along the path, the per-particle speed multiplier, the per-loop
// scatter jitter, and the lifecycle phase offset. Particle identity persists
// across loops; only the scatter offset is redrawn on a wrap.
type mover struct {
	path *paths.Path
	rng  *rand.Rand

	t               float64 // position along the path, [0,1)
	personalMult    float64 // fixed at creation, [0.5,1.5]
	scatter         r3.Vec  // redrawn each loop, bounded by scatterRadius
	scatterRadius   float64
	lifecycleOffset float64 // fixed at creation, [0, offsetMax]
	justReset       bool    // set on wrap, cleared by the seam correction
}

func newMover(path *paths.Path, rng *rand.Rand, scatterRadius, offsetMax float64) mover {
	m := mover{
		path:            path,
		rng:             rng,
		t:               rng.Float64(),
		personalMult:    0.5 + rng.Float64(),
		scatterRadius:   scatterRadius,
		lifecycleOffset: rng.Float64() * offsetMax,
	}
	m.rollScatter()
	return m
}

// advance moves the particle by speedFactor scaled by its personal
// multiplier. On crossing t=1 the particle resets to 0, redraws its scatter
// offset, and reports the wrap so the variant can rebuild its buffers.
func (m *mover) advance(speedFactor float64) (wrapped bool) {
	m.t += m.speed(speedFactor)
	if m.t >= 1 {
		m.t = 0
		m.rollScatter()
		m.justReset = true
		return true
	}
	return false
}

// speed is the effective per-tick advance in normalized t.
func (m *mover) speed(speedFactor float64) float64 {
	return speedFactor * m.personalMult
}

// samplePath returns the jittered curve sample at parameter t.
func (m *mover) samplePath(t float64) r3.Vec {
	return r3.Add(m.path.PointAt(t), m.scatter)
}

func (m *mover) rollScatter() {
	m.scatter = randomInSphere(m.rng, m.scatterRadius)
}

// lifecycleAlpha computes this particle's visibility multiplier for the tick,
// including the seam correction when the path is open.
func (m *mover) lifecycleAlpha(tm FadeTiming) float64 {
	p := m.lifecycleOffset + m.t
	p -= math.Floor(p)
	a := LifecycleAlpha(tm, p)
	if !m.path.Closed() {
		a *= seamCorrection(tm, m.t, &m.justReset)
	}
	return a
}

// randomInSphere draws a uniform random direction scaled into a ball of the
// given radius.
func randomInSphere(rng *rand.Rand, radius float64) r3.Vec {
	if radius <= 0 {
		return r3.Vec{}
	}
	return r3.Scale(radius*math.Cbrt(rng.Float64()), randomDirection(rng))
}

// randomDirection draws a uniformly distributed unit vector.
func randomDirection(rng *rand.Rand) r3.Vec {
	z := 2*rng.Float64() - 1
	theta := 2 * math.Pi * rng.Float64()
	r := math.Sqrt(1 - z*z)
	return r3.Vec{X: r * math.Cos(theta), Y: r * math.Sin(theta), Z: z}
}

// fadeRamp fills weights with a linear ramp from 1 at the head to 0 at the
// tail. Single-sample buffers stay at 1; the denominator is floored so the
// division is never by zero.
func fadeRamp(weights []float32) {
	denom := len(weights) - 1
	if denom < 1 {
		denom = 1
	}
	for i := range weights {
		weights[i] = 1 - float32(i)/float32(denom)
	}
	if len(weights) > 0 {
		weights[0] = 1
	}
}
