package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"lumen/config"
)

// Change reports the heaviest reconstruction a panel interaction requires.
// Values are ordered: later constants subsume earlier ones.
type Change uint8

const (
	ChangeNone   Change = iota
	ChangeColor         // color strategy/palette edited: rebuild assigner, recolor
	ChangeTheme         // theme flipped: reapply compositing mode and recolor
	ChangeSystem        // structural particle field edited: rebuild the system
	ChangePath          // path family/params edited: rebuild path and system
)

// panelHeight is the fixed drawn height of the controls panel.
const panelHeight = 660

func maxChange(a, b Change) Change {
	if b > a {
		return b
	}
	return a
}

var (
	variantKeys  = []string{"trail", "burst", "comet"}
	familyKeys   = []string{"ribbon", "attractor", "lemniscate"}
	strategyKeys = []string{"uniform", "random", "palette"}
)

func keyIndex(keys []string, key string) int32 {
	for i, k := range keys {
		if k == key {
			return int32(i)
		}
	}
	return 0
}

// ControlsPanel renders the right-side settings panel. Edits mutate the
// configuration in place; the returned Change tells the caller how much of
// the running state must be rebuilt.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool

	cursor int32 // running y while drawing
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Toggle switches panel visibility and returns the new state.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool { return c.visible }

// Move repositions the panel, used on window resize.
func (c *ControlsPanel) Move(x, y int32) {
	c.x = x
	c.y = y
}

// Contains reports whether a screen point falls inside the visible panel.
// Always false while hidden, so camera drags pass through.
func (c *ControlsPanel) Contains(x, y float32) bool {
	if !c.visible {
		return false
	}
	return x >= float32(c.x) && x <= float32(c.x+c.width) &&
		y >= float32(c.y) && y <= float32(c.y+panelHeight)
}

// Draw renders the panel and applies edits to cfg and the theme flag.
func (c *ControlsPanel) Draw(cfg *config.Config, lightTheme *bool) Change {
	if !c.visible {
		return ChangeNone
	}

	r := c.renderer
	pad := r.Theme.Padding
	c.cursor = c.y + pad

	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	change := ChangeNone
	pc := &cfg.Particles

	c.cursor = r.DrawSectionHeader(c.x+pad, c.cursor, "Particles")

	if v := c.combo("Variant", variantKeys, pc.Variant); v != pc.Variant {
		pc.Variant = v
		change = maxChange(change, ChangeSystem)
	}
	if v := c.sliderInt("Count", pc.Count, 1, 200); v != pc.Count {
		pc.Count = v
		change = maxChange(change, ChangeSystem)
	}
	if v := c.sliderInt("Trail length", pc.TrailLength, 1, 120); v != pc.TrailLength {
		pc.TrailLength = v
		change = maxChange(change, ChangeSystem)
	}
	pc.Speed = float64(c.slider("Speed", float32(pc.Speed*1000), 0.1, 10, "%.1f")) / 1000
	if v := float64(c.slider("Scatter", float32(pc.ScatterRadius), 0, 3, "%.2f")); v != pc.ScatterRadius {
		pc.ScatterRadius = v
		change = maxChange(change, ChangeSystem)
	}
	pc.Size = float64(c.slider("Size", float32(pc.Size), 0.5, 8, "%.1f"))
	if v := float64(c.slider("Tail width", float32(pc.TailWidth), 0, 4, "%.1f")); v != pc.TailWidth {
		// Comets absorb small width edits themselves; no rebuild needed here.
		pc.TailWidth = v
	}

	c.cursor = r.DrawSectionHeader(c.x+pad, c.cursor+4, "Lifecycle")
	pc.FadeIn = float64(c.slider("Fade in", float32(pc.FadeIn), 0, 0.5, "%.2f"))
	pc.Stable = float64(c.slider("Stable", float32(pc.Stable), 0, 1, "%.2f"))
	pc.FadeOut = float64(c.slider("Fade out", float32(pc.FadeOut), 0, 0.5, "%.2f"))

	c.cursor = r.DrawSectionHeader(c.x+pad, c.cursor+4, "Burst")
	pc.Burst.EmitChance = float64(c.slider("Emit chance", float32(pc.Burst.EmitChance), 0, 1, "%.2f"))
	pc.Burst.PathFollow = float64(c.slider("Path follow", float32(pc.Burst.PathFollow), 0, 1, "%.2f"))

	c.cursor = r.DrawSectionHeader(c.x+pad, c.cursor+4, "Path")
	if v := c.combo("Family", familyKeys, cfg.Path.Family); v != cfg.Path.Family {
		cfg.Path.Family = v
		change = maxChange(change, ChangePath)
	}
	switch cfg.Path.Family {
	case "attractor":
		if v := float64(c.slider("Rho", float32(cfg.Path.Attractor.Rho), 14, 45, "%.1f")); v != cfg.Path.Attractor.Rho {
			cfg.Path.Attractor.Rho = v
			change = maxChange(change, ChangePath)
		}
	case "lemniscate":
		if v := float64(c.slider("Width", float32(cfg.Path.Lemniscate.Width), 2, 20, "%.1f")); v != cfg.Path.Lemniscate.Width {
			cfg.Path.Lemniscate.Width = v
			change = maxChange(change, ChangePath)
		}
	default:
		if v := float64(c.slider("Scale", float32(cfg.Path.Ribbon.Scale), 1, 12, "%.1f")); v != cfg.Path.Ribbon.Scale {
			cfg.Path.Ribbon.Scale = v
			change = maxChange(change, ChangePath)
		}
	}

	c.cursor = r.DrawSectionHeader(c.x+pad, c.cursor+4, "Color")
	if v := c.combo("Strategy", strategyKeys, cfg.Color.Strategy); v != cfg.Color.Strategy {
		cfg.Color.Strategy = v
		change = maxChange(change, ChangeColor)
	}
	for i := range cfg.Color.Palette {
		slot := &cfg.Color.Palette[i]
		label := fmt.Sprintf("Slot %d  %s", i+1, slot.Color)
		if v := c.checkbox(label, slot.Enabled); v != slot.Enabled {
			slot.Enabled = v
			change = maxChange(change, ChangeColor)
		}
	}

	c.cursor = r.DrawSectionHeader(c.x+pad, c.cursor+4, "Post")
	cfg.Bloom.Enabled = c.checkbox("Bloom", cfg.Bloom.Enabled)
	cfg.Bloom.Intensity = float64(c.slider("Intensity", float32(cfg.Bloom.Intensity), 0, 4, "%.1f"))
	if v := c.checkbox("Light theme", *lightTheme); v != *lightTheme {
		*lightTheme = v
		change = maxChange(change, ChangeTheme)
	}

	return change
}

// slider draws a labelled slider row and returns the (possibly) new value.
func (c *ControlsPanel) slider(label string, value, min, max float32, format string) float32 {
	r := c.renderer
	pad := r.Theme.Padding
	r.DrawLabel(c.x+pad, c.cursor+4, label)

	bounds := rl.Rectangle{
		X:      float32(c.x + pad + 90),
		Y:      float32(c.cursor),
		Width:  float32(c.width - pad*2 - 140),
		Height: float32(r.Theme.RowHeight),
	}
	v := gui.SliderBar(bounds, "", "", value, min, max)
	r.DrawValue(c.x+c.width-44, c.cursor+4, fmt.Sprintf(format, v))
	c.cursor += r.Theme.RowHeight + 4
	return v
}

func (c *ControlsPanel) sliderInt(label string, value, min, max int) int {
	return int(c.slider(label, float32(value), float32(min), float32(max), "%.0f"))
}

// combo draws a labelled combo box over the given keys and returns the
// selected key.
func (c *ControlsPanel) combo(label string, keys []string, active string) string {
	r := c.renderer
	pad := r.Theme.Padding
	r.DrawLabel(c.x+pad, c.cursor+4, label)

	bounds := rl.Rectangle{
		X:      float32(c.x + pad + 90),
		Y:      float32(c.cursor),
		Width:  float32(c.width - pad*2 - 90),
		Height: float32(r.Theme.RowHeight),
	}
	items := ""
	for i, k := range keys {
		if i > 0 {
			items += ";"
		}
		items += k
	}
	idx := gui.ComboBox(bounds, items, keyIndex(keys, active))
	c.cursor += r.Theme.RowHeight + 4
	if idx < 0 || int(idx) >= len(keys) {
		return active
	}
	return keys[idx]
}

func (c *ControlsPanel) checkbox(label string, checked bool) bool {
	r := c.renderer
	pad := r.Theme.Padding
	bounds := rl.Rectangle{
		X:      float32(c.x + pad),
		Y:      float32(c.cursor),
		Width:  float32(r.Theme.RowHeight - 4),
		Height: float32(r.Theme.RowHeight - 4),
	}
	v := gui.CheckBox(bounds, label, checked)
	c.cursor += r.Theme.RowHeight + 2
	return v
}
