package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// SpikeTrace returns a flat trace with the given sample values injected
// at their indices. Indices outside the trace are ignored.
func SpikeTrace(length int, spikes map[int]float64) []float64 {
	out := make([]float64, length)
	for pos, v := range spikes {
		if pos >= 0 && pos < length {
			out[pos] = v
		}
	}
	return out
}

// AlternatingTrace returns a trace alternating between +amplitude and
// -amplitude, a background with known median magnitude for threshold
// tests.
func AlternatingTrace(length int, amplitude float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i%2 == 0 {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
