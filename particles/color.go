package particles

import (
	"log/slog"
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"

	"lumen/config"
)

// Strategy selects how particle colors are assigned.
type Strategy uint8

const (
	StrategyUniform Strategy = iota
	StrategyRandom
	StrategyPalette
)

// neutralColor is the fallback when the palette has no enabled slot.
var neutralColor = colorful.Color{R: 0.85, G: 0.85, B: 0.85}

// ParseStrategy resolves a config key, falling back to uniform with a warning.
func ParseStrategy(key string) Strategy {
	switch key {
	case "uniform":
		return StrategyUniform
	case "random":
		return StrategyRandom
	case "palette":
		return StrategyPalette
	}
	slog.Warn("unknown color strategy, falling back to uniform", "strategy", key)
	return StrategyUniform
}

// paletteSlot is one selectable palette color.
type paletteSlot struct {
	color   colorful.Color
	enabled bool
}

// Assigner hands out particle colors according to the configured strategy.
// Uniform assigns one fixed color and never reassigns; random draws an
// independent hue per particle on every loop; palette picks uniformly among
// the enabled slots.
type Assigner struct {
	strategy Strategy
	uniform  colorful.Color
	palette  []paletteSlot
	rng      *rand.Rand
}

// NewAssigner builds an assigner from configuration. Malformed hex colors
// fall back to the neutral color with a warning.
func NewAssigner(cfg *config.ColorConfig, rng *rand.Rand) *Assigner {
	a := &Assigner{
		strategy: ParseStrategy(cfg.Strategy),
		uniform:  parseHex(cfg.Uniform),
		rng:      rng,
	}
	for _, slot := range cfg.Palette {
		a.palette = append(a.palette, paletteSlot{color: parseHex(slot.Color), enabled: slot.Enabled})
	}
	return a
}

func parseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		slog.Warn("invalid hex color, using neutral", "color", s)
		return neutralColor
	}
	return c
}

// Assign returns a color for a newly created particle.
func (a *Assigner) Assign() colorful.Color {
	switch a.strategy {
	case StrategyRandom:
		return colorful.Hsv(a.rng.Float64()*360, 0.85, 1)
	case StrategyPalette:
		return a.pickPalette()
	default:
		return a.uniform
	}
}

// Reassign returns the color a particle takes on a loop-wrap reset. The
// uniform strategy keeps the current color; the others draw fresh.
func (a *Assigner) Reassign(current colorful.Color) colorful.Color {
	if a.strategy == StrategyUniform {
		return current
	}
	return a.Assign()
}

func (a *Assigner) pickPalette() colorful.Color {
	enabled := make([]int, 0, len(a.palette))
	for i, slot := range a.palette {
		if slot.enabled {
			enabled = append(enabled, i)
		}
	}
	if len(enabled) == 0 {
		return neutralColor
	}
	return a.palette[enabled[a.rng.Intn(len(enabled))]].color
}
