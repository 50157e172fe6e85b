package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}

	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Errorf("screen = %dx%d, want 1280x720", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Path.Family != "ribbon" {
		t.Errorf("family = %q, want ribbon", cfg.Path.Family)
	}
	if cfg.Particles.Variant != "trail" {
		t.Errorf("variant = %q, want trail", cfg.Particles.Variant)
	}
	if len(cfg.Color.Palette) != MaxPaletteSlots {
		t.Errorf("palette slots = %d, want %d", len(cfg.Color.Palette), MaxPaletteSlots)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	overlay := `
particles:
  count: 7
path:
  family: lemniscate
`
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load overlay: %v", err)
	}

	if cfg.Particles.Count != 7 {
		t.Errorf("count = %d, want 7 from overlay", cfg.Particles.Count)
	}
	if cfg.Path.Family != "lemniscate" {
		t.Errorf("family = %q, want lemniscate from overlay", cfg.Path.Family)
	}
	// Fields absent from the overlay keep defaults
	if cfg.Particles.TrailLength != 40 {
		t.Errorf("trail_length = %d, want default 40", cfg.Particles.TrailLength)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestDerivedFloors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	overlay := `
particles:
  count: 0
  trail_length: -3
  tail_width: -1
telemetry:
  perf_window: 0
`
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Particles.Count != 1 {
		t.Errorf("count floored to %d, want 1", cfg.Particles.Count)
	}
	if cfg.Particles.TrailLength != 1 {
		t.Errorf("trail_length floored to %d, want 1", cfg.Particles.TrailLength)
	}
	if cfg.Particles.TailWidth != 0 {
		t.Errorf("tail_width floored to %v, want 0", cfg.Particles.TailWidth)
	}
	if cfg.Telemetry.PerfWindow != 60 {
		t.Errorf("perf_window floored to %d, want 60", cfg.Telemetry.PerfWindow)
	}
}

func TestPaletteCapped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	overlay := `
color:
  palette:
    - {color: "#111111", enabled: true}
    - {color: "#222222", enabled: true}
    - {color: "#333333", enabled: true}
    - {color: "#444444", enabled: true}
    - {color: "#555555", enabled: true}
    - {color: "#666666", enabled: true}
    - {color: "#777777", enabled: true}
`
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Color.Palette) != MaxPaletteSlots {
		t.Errorf("palette slots = %d, want capped at %d", len(cfg.Color.Palette), MaxPaletteSlots)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Particles.Count = 13

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if back.Particles.Count != 13 {
		t.Errorf("count = %d after round trip, want 13", back.Particles.Count)
	}
}
