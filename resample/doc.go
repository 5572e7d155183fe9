// Package resample provides Fourier-domain resampling of finite signals
// to an arbitrary target length.
//
// The method transforms the input, truncates or zero-pads the spectrum to
// the target length (with Nyquist-bin compensation at even lengths), and
// transforms back. It is exact for tones below the output Nyquist rate and
// assumes the signal is periodic over the analysis window; use it for
// short, windowed segments rather than streaming conversion.
//
// Common workflows:
//   - Resample(x, n) for an explicit target length
//   - Upsample(x, factor) for integer-factor interpolation
package resample
