package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"lumen/particles"
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}

	// Theme toggle
	if rl.IsKeyPressed(rl.KeyT) {
		if g.theme == particles.ThemeDark {
			g.theme = particles.ThemeLight
		} else {
			g.theme = particles.ThemeDark
		}
		g.system.ApplyTheme(g.theme)
	}

	// Bloom toggle
	if rl.IsKeyPressed(rl.KeyB) {
		g.cfg.Bloom.Enabled = !g.cfg.Bloom.Enabled
	}

	// Variant hotkeys
	variant := ""
	switch {
	case rl.IsKeyPressed(rl.KeyOne):
		variant = "trail"
	case rl.IsKeyPressed(rl.KeyTwo):
		variant = "burst"
	case rl.IsKeyPressed(rl.KeyThree):
		variant = "comet"
	}
	if variant != "" && variant != g.cfg.Particles.Variant {
		g.cfg.Particles.Variant = variant
		g.system.Init()
		g.system.ApplyTheme(g.theme)
	}

	g.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	if g.glow != nil {
		g.glow.Resize(int32(w), int32(h))
	}
	if g.panel != nil {
		g.panel.Move(int32(w)-panelWidth-panelMargin, panelMargin)
	}
}

// handleCameraInput processes camera drag/zoom controls. Drags starting over
// the controls panel are left to the panel.
func (g *Game) handleCameraInput() {
	mouse := rl.GetMousePosition()
	if g.panel.Contains(mouse.X, mouse.Y) {
		return
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		g.orbit.Drag(float64(delta.X), float64(delta.Y))
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.orbit.Zoom(float64(wheel))
	}
}
