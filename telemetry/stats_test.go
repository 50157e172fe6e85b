package telemetry

import (
	"math"
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	durations := make([]time.Duration, 10)
	for i := range durations {
		durations[i] = time.Duration(i+1) * time.Millisecond
	}

	s := Summarize(durations)
	if math.Abs(s.MeanMs-5.5) > 0.001 {
		t.Errorf("mean = %v, want 5.5", s.MeanMs)
	}
	if math.Abs(s.P50Ms-5) > 0.001 {
		t.Errorf("p50 = %v, want 5", s.P50Ms)
	}
	if math.Abs(s.P90Ms-9) > 0.001 {
		t.Errorf("p90 = %v, want 9", s.P90Ms)
	}
	if math.Abs(s.P99Ms-10) > 0.001 {
		t.Errorf("p99 = %v, want 10", s.P99Ms)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.MeanMs != 0 || s.P50Ms != 0 || s.P90Ms != 0 || s.P99Ms != 0 {
		t.Errorf("empty input should give a zero summary, got %+v", s)
	}
}

func TestSummarizeSingle(t *testing.T) {
	s := Summarize([]time.Duration{4 * time.Millisecond})
	if math.Abs(s.MeanMs-4) > 0.001 || math.Abs(s.P50Ms-4) > 0.001 {
		t.Errorf("single sample summary = %+v, want all 4ms", s)
	}
}
