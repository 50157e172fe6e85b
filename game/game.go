// Package game wires the path, particle system, camera, renderers, and UI
// into the frame loop.
package game

import (
	"log/slog"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"lumen/camera"
	"lumen/config"
	"lumen/particles"
	"lumen/paths"
	"lumen/renderer"
	"lumen/telemetry"
	"lumen/ui"
)

// frameDT is the fixed per-frame time step in seconds.
const frameDT = 1.0 / 60.0

// Panel layout
const (
	panelWidth  = 320
	panelMargin = 10
)

// Options configures a game instance at startup.
type Options struct {
	Seed      int64
	OutputDir string
	Headless  bool
}

// Game holds the complete visualizer state.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	path   *paths.Path
	system *particles.System
	orbit  *camera.Orbit

	// Rendering (nil in headless mode)
	scene *renderer.SceneRenderer
	glow  *renderer.GlowRenderer
	panel *ui.ControlsPanel

	perf   *telemetry.FrameCollector
	output *telemetry.OutputManager

	frame    int64
	paused   bool
	headless bool
	theme    particles.Theme

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game instance. In graphical mode the raylib
// window must already be open.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	g := &Game{
		cfg:          cfg,
		rng:          rand.New(rand.NewSource(opts.Seed)),
		headless:     opts.Headless,
		theme:        particles.ThemeDark,
		screenWidth:  cfg.Derived.ScreenW32,
		screenHeight: cfg.Derived.ScreenH32,
	}

	g.path = paths.FromConfig(&cfg.Path)
	g.system = particles.NewSystem(cfg, g.path, g.rng)
	g.orbit = camera.New(g.path.Centroid(), cfg.Camera.Distance, cfg.Camera.OrbitSpeed)
	g.perf = telemetry.NewFrameCollector(cfg.Telemetry.PerfWindow)

	if !opts.Headless {
		g.scene = renderer.NewSceneRenderer()
		g.glow = renderer.NewGlowRenderer(int32(cfg.Screen.Width), int32(cfg.Screen.Height))
		g.panel = ui.NewControlsPanel(int32(cfg.Screen.Width)-panelWidth-panelMargin, panelMargin, panelWidth)
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("output disabled", "error", err)
	} else {
		g.output = output
		if err := g.output.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
	}

	slog.Info("game_initialized",
		"path_family", cfg.Path.Family,
		"path_points", g.path.Len(),
		"variant", g.system.Variant().String(),
		"particles", g.system.Count(),
	)

	return g
}

// Update processes input and advances the simulation by one frame.
func (g *Game) Update() {
	g.perf.StartFrame()
	g.handleInput()

	g.perf.StartPhase(telemetry.PhaseUpdate)
	if !g.paused {
		g.orbit.Update(frameDT)
		g.system.Update()
		g.frame++
	}
}

// UpdateHeadless advances the simulation without any rendering.
func (g *Game) UpdateHeadless() {
	g.perf.StartFrame()
	g.perf.StartPhase(telemetry.PhaseUpdate)
	g.system.Update()
	g.frame++
	g.perf.EndFrame()
	g.maybeLogStats()
}

// Frame returns the number of simulated frames.
func (g *Game) Frame() int64 { return g.frame }

// maybeLogStats emits a stats line and CSV row every log interval.
func (g *Game) maybeLogStats() {
	interval := int64(g.cfg.Telemetry.LogInterval)
	if interval <= 0 || g.frame == 0 || g.frame%interval != 0 {
		return
	}

	stats := g.perf.Stats()
	stats.Log()

	rec := telemetry.FrameRecord{
		Frame:     g.frame,
		MeanMs:    stats.Summary.MeanMs,
		P50Ms:     stats.Summary.P50Ms,
		P90Ms:     stats.Summary.P90Ms,
		P99Ms:     stats.Summary.P99Ms,
		FPS:       stats.FPS,
		Particles: g.system.Count(),
		Sparks:    g.system.LiveSparks(),
	}
	if err := g.output.WriteFrame(rec); err != nil {
		slog.Error("failed to write frame record", "error", err)
	}
}

// applyChange rebuilds the parts of the running state a panel edit touched.
// Levels subsume: any change covers the color strategy, so a color edit made
// in the same frame as a structural one is never dropped.
func (g *Game) applyChange(change ui.Change) {
	if change == ui.ChangeNone {
		return
	}

	g.system.SetColors(particles.NewAssigner(&g.cfg.Color, g.rng))

	switch change {
	case ui.ChangePath:
		g.path = paths.FromConfig(&g.cfg.Path)
		g.orbit.Retarget(g.path.Centroid())
		g.system.SetPath(g.path)
		// The light theme keeps its forced color through the rebuild.
		g.system.ApplyTheme(g.theme)
		slog.Info("path_rebuilt", "family", g.cfg.Path.Family, "points", g.path.Len())
	case ui.ChangeSystem:
		g.system.Init()
		g.system.ApplyTheme(g.theme)
	case ui.ChangeTheme:
		g.system.ApplyTheme(g.theme)
	}
}

// rlCamera converts the orbit state to a raylib 3D camera.
func (g *Game) rlCamera() rl.Camera3D {
	eye := g.orbit.Eye()
	target := g.orbit.Target
	return rl.Camera3D{
		Position:   rl.Vector3{X: float32(eye.X), Y: float32(eye.Y), Z: float32(eye.Z)},
		Target:     rl.Vector3{X: float32(target.X), Y: float32(target.Y), Z: float32(target.Z)},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       float32(g.cfg.Camera.FOV),
		Projection: rl.CameraPerspective,
	}
}

// Unload releases GPU resources and closes output files.
func (g *Game) Unload() {
	if g.glow != nil {
		g.glow.Unload()
	}
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
