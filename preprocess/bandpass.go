package preprocess

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
)

// Errors returned by preprocessing functions.
var (
	ErrInvalidSampleRate = errors.New("preprocess: sample rate must be positive")
	ErrInvalidBand       = errors.New("preprocess: invalid frequency band")
	ErrNoTraces          = errors.New("preprocess: at least one trace required")
	ErrTraceLength       = errors.New("preprocess: traces must have equal length")
)

// Bandpass confines a trace to the band [lowHz, highHz] with a
// frequency-domain mask whose edges roll off as raised cosines. The
// trace is zero-padded to a power of two, transformed, masked, and
// transformed back; the result is truncated to the input length.
//
// A lowHz of zero disables the low cut, turning the filter into a
// lowpass. highHz must stay at or below the Nyquist frequency.
func Bandpass(trace []float64, sampleRate, lowHz, highHz float64) ([]float64, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) {
		return nil, ErrInvalidSampleRate
	}

	if lowHz < 0 || highHz <= lowHz || highHz > sampleRate/2 {
		return nil, fmt.Errorf("%w: [%g, %g] Hz at %g Hz", ErrInvalidBand, lowHz, highHz, sampleRate)
	}

	if len(trace) == 0 {
		return nil, nil
	}

	fftSize := nextPowerOf2(len(trace))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("preprocess: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range trace {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, fmt.Errorf("preprocess: forward FFT failed: %w", err)
	}

	mask := bandMask(fftSize, sampleRate, lowHz, highHz)
	for i := range freq {
		freq[i] *= complex(mask[i], 0)
	}

	if err := plan.Inverse(padded, freq); err != nil {
		return nil, fmt.Errorf("preprocess: inverse FFT failed: %w", err)
	}

	out := make([]float64, len(trace))
	for i := range out {
		out[i] = real(padded[i])
	}

	return out, nil
}

// bandMask builds the symmetric per-bin gain for a bandpass between
// lowHz and highHz. Each edge gets a raised-cosine transition spanning
// 10% of the edge frequency, at least one bin wide.
func bandMask(n int, sampleRate, lowHz, highHz float64) []float64 {
	mask := make([]float64, n)
	binHz := sampleRate / float64(n)

	lowTrans := max(0.1*lowHz, binHz)
	highTrans := max(0.1*highHz, binHz)

	for i := 0; i <= n/2; i++ {
		f := float64(i) * binHz
		g := rampUp(f, lowHz, lowTrans) * rampDown(f, highHz, highTrans)

		mask[i] = g
		if i > 0 && i < n-i {
			mask[n-i] = g
		}
	}

	return mask
}

// rampUp rises from 0 to 1 over [edge-trans, edge].
func rampUp(f, edge, trans float64) float64 {
	switch {
	case f >= edge:
		return 1
	case f <= edge-trans:
		return 0
	default:
		x := (f - (edge - trans)) / trans
		return 0.5 - 0.5*math.Cos(math.Pi*x)
	}
}

// rampDown falls from 1 to 0 over [edge, edge+trans].
func rampDown(f, edge, trans float64) float64 {
	switch {
	case f <= edge:
		return 1
	case f >= edge+trans:
		return 0
	default:
		x := (f - edge) / trans
		return 0.5 + 0.5*math.Cos(math.Pi*x)
	}
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
