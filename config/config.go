// Package config provides configuration loading and access for the visualizer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all visualizer configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Path      PathConfig      `yaml:"path"`
	Particles ParticlesConfig `yaml:"particles"`
	Color     ColorConfig     `yaml:"color"`
	Bloom     BloomConfig     `yaml:"bloom"`
	Camera    CameraConfig    `yaml:"camera"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PathConfig selects the curve family and its parameters.
type PathConfig struct {
	Family     string           `yaml:"family"` // ribbon | attractor | lemniscate
	Ribbon     RibbonConfig     `yaml:"ribbon"`
	Attractor  AttractorConfig  `yaml:"attractor"`
	Lemniscate LemniscateConfig `yaml:"lemniscate"`
}

// RibbonConfig holds the closed ribbon loop parameters.
type RibbonConfig struct {
	Scale   float64 `yaml:"scale"`   // Overall loop radius
	Samples int     `yaml:"samples"` // Control points along the loop
}

// AttractorConfig holds the open attractor trajectory parameters.
// The trajectory is integrated with fixed-step Euler from the initial state.
type AttractorConfig struct {
	Sigma float64 `yaml:"sigma"`
	Rho   float64 `yaml:"rho"`
	Beta  float64 `yaml:"beta"`
	Dt    float64 `yaml:"dt"`    // Euler step size
	Steps int     `yaml:"steps"` // Integration steps (= control points)
	Scale float64 `yaml:"scale"` // Uniform display scale
}

// LemniscateConfig holds the closed figure-eight loop parameters.
type LemniscateConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Samples int     `yaml:"samples"`
}

// ParticlesConfig holds the particle population parameters.
type ParticlesConfig struct {
	Variant       string  `yaml:"variant"` // trail | burst | comet
	Count         int     `yaml:"count"`
	TrailLength   int     `yaml:"trail_length"`
	Speed         float64 `yaml:"speed"`          // Base advance per tick in normalized t
	ScatterRadius float64 `yaml:"scatter_radius"` // Per-loop spatial jitter bound
	Size          float64 `yaml:"size"`           // Line/point thickness hint for the renderer

	// Lifecycle fade, as fractions of the normalized cycle
	FadeIn             float64 `yaml:"fade_in"`
	Stable             float64 `yaml:"stable"`
	FadeOut            float64 `yaml:"fade_out"`
	LifecycleOffsetMax float64 `yaml:"lifecycle_offset_max"` // Random phase offset bound

	// Comet variant
	TailWidth float64 `yaml:"tail_width"` // Wide strand count = floor(width * 2)

	Burst BurstConfig `yaml:"burst"`
}

// BurstConfig holds the spark emission parameters for the burst variant.
type BurstConfig struct {
	EmitChance float64 `yaml:"emit_chance"` // Per-tick emission probability
	PathFollow float64 `yaml:"path_follow"` // 0 = random scatter, 1 = hug the path tangent
	SparkSpeed float64 `yaml:"spark_speed"` // Base spark velocity magnitude
	Gravity    float64 `yaml:"gravity"`     // Constant downward acceleration per tick
	LifeDecay  float64 `yaml:"life_decay"`  // Base life drain per tick
	SizeDecay  float64 `yaml:"size_decay"`  // Multiplicative size shrink per tick
	SparkSize  float64 `yaml:"spark_size"`  // Base spark size
}

// ColorConfig holds the color assignment strategy.
type ColorConfig struct {
	Strategy string              `yaml:"strategy"` // uniform | random | palette
	Uniform  string              `yaml:"uniform"`  // Hex color for the uniform strategy
	Palette  []PaletteSlotConfig `yaml:"palette"`  // Up to 5 slots
}

// PaletteSlotConfig is one selectable palette entry.
type PaletteSlotConfig struct {
	Color   string `yaml:"color"` // Hex
	Enabled bool   `yaml:"enabled"`
}

// BloomConfig holds the glow post-pass parameters.
type BloomConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Intensity float64 `yaml:"intensity"`
}

// CameraConfig holds orbit camera parameters.
type CameraConfig struct {
	Distance   float64 `yaml:"distance"`
	OrbitSpeed float64 `yaml:"orbit_speed"` // Auto-orbit radians per second (0 = static)
	FOV        float64 `yaml:"fov"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow  int `yaml:"perf_window"`  // Frames averaged by the perf collector
	LogInterval int `yaml:"log_interval"` // Frames between stats log lines (headless)
}

// DerivedConfig holds values computed from the loaded configuration.
type DerivedConfig struct {
	ScreenW32 float32
	ScreenH32 float32
}

// MaxPaletteSlots bounds the palette strategy's selectable colors.
const MaxPaletteSlots = 5

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config and floors
// degenerate numeric inputs so the core never divides by zero.
func (c *Config) computeDerived() {
	if c.Particles.Count < 1 {
		c.Particles.Count = 1
	}
	if c.Particles.TrailLength < 1 {
		c.Particles.TrailLength = 1
	}
	if c.Particles.TailWidth < 0 {
		c.Particles.TailWidth = 0
	}
	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = 60
	}

	// Palette is capped at MaxPaletteSlots; extra slots are ignored
	if len(c.Color.Palette) > MaxPaletteSlots {
		c.Color.Palette = c.Color.Palette[:MaxPaletteSlots]
	}

	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
