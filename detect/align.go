package detect

import (
	"math"

	"github.com/cwbudde/algo-ephys/resample"
)

// window extracts the alignment window [anchor-pad, anchor+pad) from
// the trace together with a paired time axis of frame indices. The
// window always has the nominal width 2*pad: near trace boundaries the
// missing side is clipped and zero-filled on both axes, so padded time
// entries are literal zeros rather than frame indices. An extremum
// found in a padded region therefore carries a boundary artifact;
// callers rely on this exact behavior, do not clamp instead.
func window(trace []float64, anchor, pad int) (data, times []float64) {
	width := 2 * pad
	data = make([]float64, width)
	times = make([]float64, width)

	start := anchor - pad
	lo := max(start, 0)
	hi := min(anchor+pad, len(trace))

	copy(data[lo-start:], trace[lo:hi])
	for j := lo; j < hi; j++ {
		times[j-start] = float64(j)
	}

	return data, times
}

// linspace fills n evenly spaced values from start to stop inclusive.
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}

	return out
}

// extremum returns the index and amplitude of the window's extremum
// under the given sign: the first minimum, the first maximum, or the
// first maximum by magnitude. SignBoth reports the amplitude as a
// positive magnitude.
func extremum(w []float64, sign Sign) (int, float64) {
	best := 0

	switch sign {
	case SignPositive:
		for i, v := range w {
			if v > w[best] {
				best = i
			}
		}

		return best, w[best]
	case SignBoth:
		for i, v := range w {
			if math.Abs(v) > math.Abs(w[best]) {
				best = i
			}
		}

		return best, math.Abs(w[best])
	default:
		for i, v := range w {
			if v < w[best] {
				best = i
			}
		}

		return best, w[best]
	}
}

// alignEvent locates the extremum near an anchor and returns its frame
// time within the trace, rounded to the nearest sample, along with its
// amplitude. With factor > 1 the window is upsampled by band-limited
// interpolation first and the time axis is interpolated linearly
// between the window endpoints, so the extremum can land on a
// fractional frame position before rounding.
func alignEvent(trace []float64, anchor, pad, factor int, sign Sign) (int, float64, error) {
	data, times := window(trace, anchor, pad)

	if factor > 1 {
		up, err := resample.Upsample(data, factor)
		if err != nil {
			return 0, 0, err
		}

		times = linspace(times[0], times[len(times)-1], len(up))
		data = up
	}

	j, amp := extremum(data, sign)

	return int(math.Round(times[j])), amp, nil
}
