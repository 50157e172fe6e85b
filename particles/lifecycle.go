// Package particles implements the particle lifecycle engine: the three
// particle variants, the fade lifecycle, color assignment, and the System
// manager that owns a homogeneous population of one variant.
package particles

import "math"

// FadeTiming holds the lifecycle fade fractions. The three values are raw
// thresholds over the normalized cycle; they need not sum to 1.
type FadeTiming struct {
	FadeIn  float64
	Stable  float64
	FadeOut float64
}

// LifecycleAlpha maps a normalized lifecycle position p to a visibility
// multiplier: ramp up over FadeIn, hold at 1 through Stable, ramp down over
// FadeOut. The result is clamped to [0,1].
func LifecycleAlpha(tm FadeTiming, p float64) float64 {
	var a float64
	switch {
	case p < tm.FadeIn:
		if tm.FadeIn <= 0 {
			a = 1
		} else {
			a = p / tm.FadeIn
		}
	case p < tm.FadeIn+tm.Stable:
		a = 1
	default:
		if tm.FadeOut <= 0 {
			a = 0
		} else {
			a = 1 - (p-tm.FadeIn-tm.Stable)/tm.FadeOut
		}
	}
	return clamp01(a)
}

// seamCorrection masks the positional discontinuity at an open path's seam.
// Approaching t=1 the multiplier ramps to 0 over the last FadeOut fraction;
// right after a wrap reset it ramps back up from 0 over the first FadeIn
// fraction. The particle's justReset flag is cleared once the post-reset ramp
// completes, so the correction applies at most once per loop. Composed
// multiplicatively with LifecycleAlpha.
func seamCorrection(tm FadeTiming, currentT float64, justReset *bool) float64 {
	c := 1.0
	if tm.FadeOut > 0 && currentT > 1-tm.FadeOut {
		c = (1 - currentT) / tm.FadeOut
	}
	if *justReset {
		if tm.FadeIn > 0 && currentT < tm.FadeIn {
			ramp := currentT / tm.FadeIn
			if ramp < c {
				c = ramp
			}
		} else {
			*justReset = false
		}
	}
	return clamp01(c)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
