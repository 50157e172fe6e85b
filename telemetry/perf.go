// Package telemetry collects frame timing for the visualizer and writes
// structured run output.
package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for one frame.
const (
	PhaseUpdate = "update"
	PhaseDraw   = "draw"
	PhaseGlow   = "glow"
)

// frameSample holds timing data for a single frame.
type frameSample struct {
	Duration time.Duration
	Phases   map[string]time.Duration
}

// FrameCollector tracks frame timings over a rolling window.
type FrameCollector struct {
	windowSize  int
	samples     []frameSample
	writeIndex  int
	sampleCount int

	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewFrameCollector creates a collector averaging over windowSize frames.
func NewFrameCollector(windowSize int) *FrameCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &FrameCollector{
		windowSize:    windowSize,
		samples:       make([]frameSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartFrame begins timing a new frame.
func (c *FrameCollector) StartFrame() {
	c.frameStart = time.Now()
	c.currentPhases = make(map[string]time.Duration)
	c.lastPhase = ""
}

// StartPhase begins timing a phase, closing the previous one.
func (c *FrameCollector) StartPhase(phase string) {
	now := time.Now()
	if c.lastPhase != "" {
		c.currentPhases[c.lastPhase] += now.Sub(c.phaseStart)
	}
	c.phaseStart = now
	c.lastPhase = phase
}

// EndFrame finishes the frame and records the sample.
func (c *FrameCollector) EndFrame() {
	now := time.Now()
	if c.lastPhase != "" {
		c.currentPhases[c.lastPhase] += now.Sub(c.phaseStart)
	}

	c.samples[c.writeIndex] = frameSample{
		Duration: now.Sub(c.frameStart),
		Phases:   c.currentPhases,
	}
	c.writeIndex = (c.writeIndex + 1) % c.windowSize
	if c.sampleCount < c.windowSize {
		c.sampleCount++
	}
}

// FrameStats holds aggregated timing over the current window.
type FrameStats struct {
	Frames   int
	Summary  Summary // distribution of whole-frame durations
	PhaseAvg map[string]time.Duration
	FPS      float64
}

// Stats aggregates the current window.
func (c *FrameCollector) Stats() FrameStats {
	stats := FrameStats{
		Frames:   c.sampleCount,
		PhaseAvg: make(map[string]time.Duration),
	}
	if c.sampleCount == 0 {
		return stats
	}

	durations := make([]time.Duration, 0, c.sampleCount)
	phaseSum := make(map[string]time.Duration)
	for i := 0; i < c.sampleCount; i++ {
		s := c.samples[i]
		durations = append(durations, s.Duration)
		for phase, dur := range s.Phases {
			phaseSum[phase] += dur
		}
	}
	for phase, sum := range phaseSum {
		stats.PhaseAvg[phase] = sum / time.Duration(c.sampleCount)
	}

	stats.Summary = Summarize(durations)
	if stats.Summary.MeanMs > 0 {
		stats.FPS = 1000 / stats.Summary.MeanMs
	}
	return stats
}

// Log writes the stats via slog.
func (s FrameStats) Log() {
	attrs := []any{
		"frames", s.Frames,
		"mean_ms", s.Summary.MeanMs,
		"p50_ms", s.Summary.P50Ms,
		"p90_ms", s.Summary.P90Ms,
		"p99_ms", s.Summary.P99Ms,
		"fps", int(s.FPS),
	}
	for phase, avg := range s.PhaseAvg {
		attrs = append(attrs, phase+"_us", avg.Microseconds())
	}
	slog.Info("frame_stats", attrs...)
}
