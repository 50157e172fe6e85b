package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"lumen/particles"
	"lumen/telemetry"
)

// Background colors per theme.
var (
	darkBackground  = rl.Color{R: 6, G: 6, B: 14, A: 255}
	lightBackground = rl.Color{R: 242, G: 240, B: 235, A: 255}
)

// Draw renders one frame.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseDraw)

	bg := darkBackground
	hud := rl.RayWhite
	if g.theme == particles.ThemeLight {
		bg = lightBackground
		hud = rl.DarkGray
	}

	cam := g.rlCamera()
	size := float32(g.cfg.Particles.Size)

	if g.cfg.Bloom.Enabled {
		// Render the scene offscreen, then composite through the bloom shader.
		g.glow.Begin(bg)
		rl.BeginMode3D(cam)
		g.scene.Draw(g.system, size)
		rl.EndMode3D()
		g.glow.End()

		rl.BeginDrawing()
		rl.ClearBackground(bg)
		g.perf.StartPhase(telemetry.PhaseGlow)
		g.glow.Composite(float32(g.cfg.Bloom.Intensity))
	} else {
		rl.BeginDrawing()
		rl.ClearBackground(bg)
		rl.BeginMode3D(cam)
		g.scene.Draw(g.system, size)
		rl.EndMode3D()
	}

	g.drawHUD(hud)

	light := g.theme == particles.ThemeLight
	if change := g.panel.Draw(g.cfg, &light); change != 0 {
		if light {
			g.theme = particles.ThemeLight
		} else {
			g.theme = particles.ThemeDark
		}
		g.applyChange(change)
	}

	rl.EndDrawing()

	g.perf.EndFrame()
	g.maybeLogStats()
}

// drawHUD renders the status text in the top-left corner.
func (g *Game) drawHUD(color rl.Color) {
	stats := g.perf.Stats()

	rl.DrawText(fmt.Sprintf("Frame: %d  FPS: %.0f", g.frame, stats.FPS), 10, 10, 20, color)

	line := fmt.Sprintf("%s / %s  particles: %d",
		g.cfg.Path.Family, g.system.Variant().String(), g.system.Count())
	if g.system.Variant() == particles.VariantBurst {
		line += fmt.Sprintf("  sparks: %d", g.system.LiveSparks())
	}
	rl.DrawText(line, 10, 35, 20, color)

	rl.DrawText("[TAB] panel  [1-3] variant  [T] theme  [B] bloom  [SPACE] pause", 10, 60, 14, rl.Gray)

	if g.paused {
		rl.DrawText("PAUSED", 10, 85, 20, rl.Yellow)
	}
}
