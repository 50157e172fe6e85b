package telemetry

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Summary describes a frame-duration distribution in milliseconds.
type Summary struct {
	MeanMs float64
	P50Ms  float64
	P90Ms  float64
	P99Ms  float64
}

// Summarize computes the distribution summary of a set of frame durations.
func Summarize(durations []time.Duration) Summary {
	if len(durations) == 0 {
		return Summary{}
	}

	ms := make([]float64, len(durations))
	for i, d := range durations {
		ms[i] = float64(d) / float64(time.Millisecond)
	}
	sort.Float64s(ms)

	return Summary{
		MeanMs: stat.Mean(ms, nil),
		P50Ms:  stat.Quantile(0.5, stat.Empirical, ms, nil),
		P90Ms:  stat.Quantile(0.9, stat.Empirical, ms, nil),
		P99Ms:  stat.Quantile(0.99, stat.Empirical, ms, nil),
	}
}
