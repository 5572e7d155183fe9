// Package robust provides outlier-resistant scale statistics for
// time-domain traces.
package robust

import (
	"math"
	"sort"
)

// gaussianConsistency rescales a median-based spread to the standard
// deviation of a Gaussian distribution (Phi^-1(0.75) ~= 0.6745).
const gaussianConsistency = 0.6745

// Median returns the sample median. For an even number of samples it
// averages the two middle order statistics. Returns 0 for empty input.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, x)
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// MAD returns the median absolute deviation from the median.
// Returns 0 for empty input.
func MAD(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	m := Median(x)

	dev := make([]float64, len(x))
	for i, v := range x {
		dev[i] = math.Abs(v - m)
	}

	return Median(dev)
}

// NoiseScale estimates the noise standard deviation of a zero-centered
// trace as median(|x|) / 0.6745. Unlike MAD it measures spread around
// zero rather than around the median, which is the conventional noise
// floor estimate for high-pass-filtered extracellular traces.
// Returns 0 for empty input.
func NoiseScale(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	abs := make([]float64, len(x))
	for i, v := range x {
		abs[i] = math.Abs(v)
	}

	return Median(abs) / gaussianConsistency
}
