package detect

import "github.com/cwbudde/algo-ephys/stats/robust"

// Threshold returns the detection threshold magnitude for a trace: the
// sensitivity multiplier k times the robust noise scale
// median(|x|)/0.6745. The caller applies the sign.
func Threshold(trace []float64, k float64) (float64, error) {
	if len(trace) == 0 {
		return 0, ErrEmptyTrace
	}

	return k * robust.NoiseScale(trace), nil
}

// crossings returns the indices of samples beyond the threshold
// magnitude in the direction selected by sign. Comparisons are strict,
// so a threshold of zero on an all-zero trace yields no crossings.
func crossings(trace []float64, threshold float64, sign Sign) []int {
	var idx []int

	switch sign {
	case SignPositive:
		for i, v := range trace {
			if v > threshold {
				idx = append(idx, i)
			}
		}
	case SignBoth:
		for i, v := range trace {
			if v > threshold || v < -threshold {
				idx = append(idx, i)
			}
		}
	default:
		for i, v := range trace {
			if v < -threshold {
				idx = append(idx, i)
			}
		}
	}

	return idx
}
