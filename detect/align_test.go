package detect

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-ephys/internal/testutil"
)

// indexTrace returns a trace whose sample values encode their index
// offset by base, so window content is easy to assert.
func indexTrace(n int, base float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = base + float64(i)
	}

	return out
}

func TestWindowInterior(t *testing.T) {
	trace := indexTrace(10, 10)

	data, times := window(trace, 5, 2)
	testutil.RequireSliceNearlyEqual(t, data, []float64{13, 14, 15, 16}, 0)
	testutil.RequireSliceNearlyEqual(t, times, []float64{3, 4, 5, 6}, 0)
}

func TestWindowLeftBoundary(t *testing.T) {
	trace := indexTrace(10, 10)

	data, times := window(trace, 1, 3)
	testutil.RequireSliceNearlyEqual(t, data, []float64{0, 0, 10, 11, 12, 13}, 0)
	testutil.RequireSliceNearlyEqual(t, times, []float64{0, 0, 0, 1, 2, 3}, 0)
}

func TestWindowRightBoundary(t *testing.T) {
	trace := indexTrace(10, 10)

	data, times := window(trace, 9, 3)
	testutil.RequireSliceNearlyEqual(t, data, []float64{16, 17, 18, 19, 0, 0}, 0)
	testutil.RequireSliceNearlyEqual(t, times, []float64{6, 7, 8, 9, 0, 0}, 0)
}

func TestWindowAlwaysFullWidth(t *testing.T) {
	trace := indexTrace(20, 0)

	for _, anchor := range []int{0, 1, 10, 18, 19} {
		for _, pad := range []int{1, 4, 15} {
			data, times := window(trace, anchor, pad)
			if len(data) != 2*pad || len(times) != 2*pad {
				t.Errorf("window(anchor=%d, pad=%d) widths = %d, %d, want %d",
					anchor, pad, len(data), len(times), 2*pad)
			}
		}
	}
}

func TestLinspace(t *testing.T) {
	testutil.RequireSliceNearlyEqual(t, linspace(0, 10, 11),
		[]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, linspace(5, 5, 4), []float64{5, 5, 5, 5}, 0)
	testutil.RequireSliceNearlyEqual(t, linspace(3, 9, 1), []float64{3}, 0)
}

func TestExtremum(t *testing.T) {
	tests := []struct {
		name    string
		w       []float64
		sign    Sign
		wantIdx int
		wantAmp float64
	}{
		{"negative first minimum", []float64{0, -5, -5, 2}, SignNegative, 1, -5},
		{"positive first maximum", []float64{1, 7, 7, -2}, SignPositive, 1, 7},
		{"both first magnitude", []float64{3, -8, 8, 1}, SignBoth, 1, 8},
		{"all zeros", []float64{0, 0, 0}, SignNegative, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, amp := extremum(tt.w, tt.sign)
			if idx != tt.wantIdx || amp != tt.wantAmp {
				t.Errorf("extremum() = (%d, %v), want (%d, %v)", idx, amp, tt.wantIdx, tt.wantAmp)
			}
		})
	}
}

func TestAlignEventFindsPeakNearAnchor(t *testing.T) {
	// The anchor is the trailing crossing; the true peak sits earlier.
	trace := testutil.SpikeTrace(40, map[int]float64{15: -50})

	time, amp, err := alignEvent(trace, 17, 5, 1, SignNegative)
	if err != nil {
		t.Fatalf("alignEvent() error = %v", err)
	}

	if time != 15 || amp != -50 {
		t.Errorf("alignEvent() = (%d, %v), want (15, -50)", time, amp)
	}
}

func TestAlignEventSigns(t *testing.T) {
	up := testutil.SpikeTrace(40, map[int]float64{20: 40})
	down := testutil.SpikeTrace(40, map[int]float64{20: -40})

	time, amp, err := alignEvent(up, 20, 4, 1, SignPositive)
	if err != nil {
		t.Fatalf("alignEvent() error = %v", err)
	}

	if time != 20 || amp != 40 {
		t.Errorf("positive alignEvent() = (%d, %v), want (20, 40)", time, amp)
	}

	// SignBoth reports the magnitude even for a negative extremum.
	time, amp, err = alignEvent(down, 20, 4, 1, SignBoth)
	if err != nil {
		t.Fatalf("alignEvent() error = %v", err)
	}

	if time != 20 || amp != 40 {
		t.Errorf("both-sign alignEvent() = (%d, %v), want (20, 40)", time, amp)
	}
}

func TestAlignEventBoundaries(t *testing.T) {
	trace := testutil.SpikeTrace(30, map[int]float64{2: -50, 28: -60})

	time, amp, err := alignEvent(trace, 2, 10, 1, SignNegative)
	if err != nil {
		t.Fatalf("alignEvent() near start error = %v", err)
	}

	if time != 2 || amp != -50 {
		t.Errorf("alignEvent() near start = (%d, %v), want (2, -50)", time, amp)
	}

	time, amp, err = alignEvent(trace, 28, 10, 1, SignNegative)
	if err != nil {
		t.Fatalf("alignEvent() near end error = %v", err)
	}

	if time != 28 || amp != -60 {
		t.Errorf("alignEvent() near end = (%d, %v), want (28, -60)", time, amp)
	}
}

func TestAlignEventUpsampleConsistency(t *testing.T) {
	// A smooth symmetric trough centered on a sample: every upsampling
	// factor must report the same rounded time and the same depth.
	trace := make([]float64, 40)
	for i := range trace {
		d := float64(i - 20)
		trace[i] = -math.Exp(-d * d / 8)
	}

	for _, factor := range []int{1, 2, 4, 8} {
		time, amp, err := alignEvent(trace, 20, 4, factor, SignNegative)
		if err != nil {
			t.Fatalf("alignEvent(factor=%d) error = %v", factor, err)
		}

		if time != 20 {
			t.Errorf("alignEvent(factor=%d) time = %d, want 20", factor, time)
		}

		if math.Abs(amp-(-1)) > 1e-9 {
			t.Errorf("alignEvent(factor=%d) amp = %v, want -1", factor, amp)
		}
	}
}

func TestAlignEventUpsampledBoundary(t *testing.T) {
	// Upsampling a boundary window squeezes the zero-padded time axis,
	// so the reported time may drift off the true sample, but it stays
	// within the half-window.
	trace := testutil.SpikeTrace(30, map[int]float64{1: -50})

	time, _, err := alignEvent(trace, 1, 4, 2, SignNegative)
	if err != nil {
		t.Fatalf("alignEvent() error = %v", err)
	}

	if time < 1-4 || time > 1+4 {
		t.Errorf("alignEvent() time = %d, want within 4 samples of 1", time)
	}
}
