// Package renderer draws particle buffers with raylib. It is the only place
// the core's float64 vectors and colors are converted to raylib types.
package renderer

import (
	colorful "github.com/lucasb-eyer/go-colorful"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"lumen/particles"
)

// Spark heat shading endpoints: fresh sparks are near-white, dying ones ember red.
var (
	sparkHot  = colorful.Color{R: 1, G: 0.96, B: 0.82}
	sparkCold = colorful.Color{R: 0.95, G: 0.25, B: 0.05}
)

// SceneRenderer draws the particle population inside an active 3D mode.
type SceneRenderer struct{}

// NewSceneRenderer creates a scene renderer.
func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{}
}

// Draw renders every particle buffer of the system. Must be called between
// BeginMode3D and EndMode3D. The size hint scales line and point thickness.
func (r *SceneRenderer) Draw(s *particles.System, size float32) {
	if s.Blend() == particles.BlendAdditive {
		rl.BeginBlendMode(rl.BlendAdditive)
	} else {
		rl.BeginBlendMode(rl.BlendAlpha)
	}

	switch s.Variant() {
	case particles.VariantBurst:
		r.drawBursts(s, size)
	case particles.VariantComet:
		r.drawComets(s, size)
	default:
		r.drawTrails(s, size)
	}

	rl.EndBlendMode()
}

func (r *SceneRenderer) drawTrails(s *particles.System, size float32) {
	for _, p := range s.Trails() {
		for i := 0; i+1 < len(p.Positions); i++ {
			col := tint(p.Color, p.Weights[i]*p.Lifecycle)
			rl.DrawLine3D(vec3(p.Positions[i]), vec3(p.Positions[i+1]), col)
		}
		// Bright head point
		rl.DrawSphereEx(vec3(p.Positions[0]), size*0.03, 4, 6, tint(p.Color, p.Lifecycle))
	}
}

func (r *SceneRenderer) drawBursts(s *particles.System, size float32) {
	for _, p := range s.Bursts() {
		for i := 0; i < p.Live; i++ {
			sp := &p.Sparks[i]
			heat := sparkCold.BlendRgb(sparkHot, sp.Life)
			col := tint(heat, float32(sp.Life)*p.Lifecycle)
			rl.DrawSphereEx(vec3(sp.Pos), float32(sp.Size)*size*0.015, 4, 6, col)
		}
	}
}

func (r *SceneRenderer) drawComets(s *particles.System, size float32) {
	for _, p := range s.Comets() {
		for _, strand := range p.Strands {
			for i := 0; i+1 < len(strand.Positions); i++ {
				col := tint(p.Color, p.Fade[i]*p.Lifecycle)
				rl.DrawLine3D(vec3(strand.Positions[i]), vec3(strand.Positions[i+1]), col)
			}
		}
		rl.DrawSphereEx(vec3(p.Head), size*0.045, 6, 8, tint(p.Color, p.Lifecycle))
	}
}

// vec3 narrows a core vector to raylib's float32 representation.
func vec3(v r3.Vec) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// tint converts a core color plus alpha multiplier to a raylib color.
func tint(c colorful.Color, alpha float32) rl.Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return rl.Color{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: uint8(alpha * 255),
	}
}
