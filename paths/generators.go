package paths

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"lumen/config"
)

// Family identifies a curve generator.
type Family uint8

const (
	FamilyRibbon Family = iota
	FamilyAttractor
	FamilyLemniscate
)

// familyKeys maps config keys to families.
var familyKeys = map[string]Family{
	"ribbon":     FamilyRibbon,
	"attractor":  FamilyAttractor,
	"lemniscate": FamilyLemniscate,
}

// String returns the config key for the family.
func (f Family) String() string {
	switch f {
	case FamilyAttractor:
		return "attractor"
	case FamilyLemniscate:
		return "lemniscate"
	default:
		return "ribbon"
	}
}

// ParseFamily resolves a config key, falling back to the ribbon loop with a
// warning when the key is unknown. Never fatal.
func ParseFamily(key string) Family {
	if f, ok := familyKeys[key]; ok {
		return f
	}
	slog.Warn("unknown path family, falling back to ribbon", "family", key)
	return FamilyRibbon
}

// FromConfig builds the path selected by the configuration.
func FromConfig(cfg *config.PathConfig) *Path {
	switch ParseFamily(cfg.Family) {
	case FamilyAttractor:
		return Attractor(cfg.Attractor)
	case FamilyLemniscate:
		return Lemniscate(cfg.Lemniscate)
	default:
		return Ribbon(cfg.Ribbon)
	}
}

// RibbonPoint evaluates the closed ribbon loop at raw parameter t in [0,4pi]:
// x = a(1+cos t), y = a sin t, z = 2a sin(t/2). The xy circle is traced twice
// while z completes one period, so the loop closes seam-free at t=4pi.
func RibbonPoint(a, t float64) r3.Vec {
	return r3.Vec{
		X: a * (1 + math.Cos(t)),
		Y: a * math.Sin(t),
		Z: 2 * a * math.Sin(t/2),
	}
}

// Ribbon samples the closed ribbon loop at a fixed count.
func Ribbon(cfg config.RibbonConfig) *Path {
	n := cfg.Samples
	if n < 3 {
		n = 3
	}
	pts := make([]r3.Vec, n)
	for i := 0; i < n; i++ {
		t := 4 * math.Pi * float64(i) / float64(n)
		pts[i] = RibbonPoint(cfg.Scale, t)
	}
	return New(pts, true)
}

// Attractor integrates the three coupled rate equations
//
//	dx = sigma(y-x), dy = x(rho-z)-y, dz = xy - beta z
//
// with fixed-step Euler from a fixed initial state. The raw trajectory is
// axis-permuted and uniformly scaled for display, and recentred vertically so
// it orbits the origin. The result is an open path: t=1 -> 0 is a spatial
// jump, which downstream lifecycle blending masks.
func Attractor(cfg config.AttractorConfig) *Path {
	n := cfg.Steps
	if n < 3 {
		n = 3
	}
	x, y, z := 0.1, 0.0, 0.0
	pts := make([]r3.Vec, n)
	for i := 0; i < n; i++ {
		dx := cfg.Sigma * (y - x)
		dy := x*(cfg.Rho-z) - y
		dz := x*y - cfg.Beta*z
		x += dx * cfg.Dt
		y += dy * cfg.Dt
		z += dz * cfg.Dt
		// Permute so the attractor's twin lobes face the camera, and drop the
		// vertical centre toward the origin.
		pts[i] = r3.Scale(cfg.Scale, r3.Vec{X: x, Y: z - cfg.Rho, Z: y})
	}
	return New(pts, false)
}

// Lemniscate samples a closed figure-eight over two xy periods, with a slow
// z sweep that closes over the full domain.
func Lemniscate(cfg config.LemniscateConfig) *Path {
	n := cfg.Samples
	if n < 3 {
		n = 3
	}
	pts := make([]r3.Vec, n)
	for i := 0; i < n; i++ {
		t := 4 * math.Pi * float64(i) / float64(n)
		pts[i] = r3.Vec{
			X: cfg.Width * math.Sin(t),
			Y: cfg.Height * math.Sin(t) * math.Cos(t),
			Z: cfg.Height * 0.5 * math.Sin(t/2),
		}
	}
	return New(pts, true)
}
