package resample

import (
	"errors"

	"gonum.org/v1/gonum/dsp/fourier"
)

var (
	// ErrInvalidLength indicates a non-positive target length.
	ErrInvalidLength = errors.New("resample: target length must be positive")
	// ErrInvalidFactor indicates an upsampling factor below 1.
	ErrInvalidFactor = errors.New("resample: factor must be at least 1")
)

// Resample converts x to exactly n samples using band-limited
// (Fourier-domain) interpolation. Returns nil for empty input.
func Resample(x []float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}

	if len(x) == 0 {
		return nil, nil
	}

	if n == len(x) {
		out := make([]float64, n)
		copy(out, x)

		return out, nil
	}

	src := len(x)

	fwd := fourier.NewFFT(src)
	coeff := fwd.Coefficients(nil, x)

	// Shared bins between the two spectra, including Nyquist if present.
	common := min(n, src)
	nyq := common/2 + 1

	shaped := make([]complex128, n/2+1)
	copy(shaped, coeff[:nyq])

	// An even-length boundary splits energy at the shared Nyquist bin:
	// double it when truncating, halve it when the band widens.
	if common%2 == 0 {
		if n < src {
			shaped[common/2] *= 2
		} else {
			shaped[common/2] *= 0.5
		}
	}

	inv := fourier.NewFFT(n)
	out := inv.Sequence(nil, shaped)

	// The forward/inverse pair is unnormalized; dividing by the source
	// length also applies the n/src amplitude correction.
	scale := 1 / float64(src)
	for i := range out {
		out[i] *= scale
	}

	return out, nil
}

// Upsample resamples x to factor*len(x) samples. A factor of 1 returns a
// copy. Returns nil for empty input.
func Upsample(x []float64, factor int) ([]float64, error) {
	if factor < 1 {
		return nil, ErrInvalidFactor
	}

	if len(x) == 0 {
		return nil, nil
	}

	return Resample(x, factor*len(x))
}
