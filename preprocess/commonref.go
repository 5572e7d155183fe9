package preprocess

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ephys/stats/robust"
)

// CommonAverageReference subtracts the per-frame mean across channels
// from every channel, removing noise common to the whole probe. All
// traces must have the same length.
func CommonAverageReference(traces [][]float64) ([][]float64, error) {
	if err := checkTraces(traces); err != nil {
		return nil, err
	}

	n := len(traces[0])

	acc := make([]float64, n)
	for _, trace := range traces {
		vecmath.AddBlockInPlace(acc, trace)
	}

	// Negated mean, so the subtraction becomes a block add.
	negMean := make([]float64, n)
	vecmath.ScaleBlock(negMean, acc, -1/float64(len(traces)))

	out := make([][]float64, len(traces))
	for c, trace := range traces {
		ref := make([]float64, n)
		copy(ref, trace)
		vecmath.AddBlockInPlace(ref, negMean)
		out[c] = ref
	}

	return out, nil
}

// CommonMedianReference subtracts the per-frame median across channels
// from every channel. Compared to the mean it ignores single channels
// with large artifacts, at the cost of a sort per frame.
func CommonMedianReference(traces [][]float64) ([][]float64, error) {
	if err := checkTraces(traces); err != nil {
		return nil, err
	}

	n := len(traces[0])

	med := make([]float64, n)
	column := make([]float64, len(traces))

	for i := 0; i < n; i++ {
		for c := range traces {
			column[c] = traces[c][i]
		}

		med[i] = robust.Median(column)
	}

	out := make([][]float64, len(traces))
	for c, trace := range traces {
		ref := make([]float64, n)
		for i := range ref {
			ref[i] = trace[i] - med[i]
		}

		out[c] = ref
	}

	return out, nil
}

func checkTraces(traces [][]float64) error {
	if len(traces) == 0 {
		return ErrNoTraces
	}

	n := len(traces[0])
	for _, trace := range traces[1:] {
		if len(trace) != n {
			return ErrTraceLength
		}
	}

	return nil
}
