// Package result maps a prediction result onto display primitives: a clamped
// percentage, a class label, and a two-slice proportion for the chart widget.
package result

import (
	"math"
	"strconv"
)

// ResetSlices is the chart state when no probability is available.
var ResetSlices = [2]float64{0, 100}

// Clamp01 pins a value into [0,1]. The service documents probability as
// already constrained, but the boundary value is untrusted.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Percent converts a probability into a display percentage rounded to two
// decimals. The second return is false when the probability is absent or not
// a usable number (NaN, ±Inf).
func Percent(probability *float64) (float64, bool) {
	if probability == nil {
		return 0, false
	}
	p := *probability
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, false
	}
	return Round2(Clamp01(p) * 100), true
}

// Slices splits a percentage into the adverse/complement pair for the
// proportion chart. Each slice is rounded independently, so the pair can sum
// to slightly off 100; that mirrors the displayed values and is intentional.
func Slices(percent float64) [2]float64 {
	return [2]float64{Round2(percent), Round2(100 - percent)}
}

// FormatPercent renders a percentage without trailing zeros, e.g. "73%" or
// "73.46%".
func FormatPercent(percent float64) string {
	return strconv.FormatFloat(percent, 'f', -1, 64) + "%"
}
