package resample

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// tone generates cos(2*pi*cycles*i/n) for i in [0, n).
func tone(n, cycles int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Cos(2 * math.Pi * float64(cycles) * float64(i) / float64(n))
	}

	return out
}

func TestUpsampleConstant(t *testing.T) {
	x := []float64{0.5, 0.5, 0.5, 0.5, 0.5}

	y, err := Upsample(x, 4)
	if err != nil {
		t.Fatalf("Upsample: %v", err)
	}

	if len(y) != 20 {
		t.Fatalf("len = %d, want 20", len(y))
	}

	for i, v := range y {
		if !almostEqual(v, 0.5, tolerance) {
			t.Fatalf("y[%d] = %g, want 0.5", i, v)
		}
	}
}

func TestUpsampleToneExact(t *testing.T) {
	// A tone below the Nyquist rate is interpolated exactly.
	const (
		n      = 32
		cycles = 3
		factor = 5
	)

	y, err := Upsample(tone(n, cycles), factor)
	if err != nil {
		t.Fatalf("Upsample: %v", err)
	}

	for j, v := range y {
		want := math.Cos(2 * math.Pi * cycles * float64(j) / float64(n*factor))
		if !almostEqual(v, want, tolerance) {
			t.Fatalf("y[%d] = %g, want %g", j, v, want)
		}
	}
}

func TestUpsampleToneOddLength(t *testing.T) {
	const (
		n      = 31
		cycles = 4
		factor = 3
	)

	y, err := Upsample(tone(n, cycles), factor)
	if err != nil {
		t.Fatalf("Upsample: %v", err)
	}

	for j, v := range y {
		want := math.Cos(2 * math.Pi * cycles * float64(j) / float64(n*factor))
		if !almostEqual(v, want, tolerance) {
			t.Fatalf("y[%d] = %g, want %g", j, v, want)
		}
	}
}

func TestUpsamplePreservesOriginalSamples(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	x := make([]float64, 24)
	for i := range x {
		x[i] = rng.Float64()*2 - 1
	}

	const factor = 4

	y, err := Upsample(x, factor)
	if err != nil {
		t.Fatalf("Upsample: %v", err)
	}

	for i, v := range x {
		if got := y[i*factor]; !almostEqual(got, v, tolerance) {
			t.Fatalf("y[%d] = %g, want original sample %g", i*factor, got, v)
		}
	}
}

func TestUpsamplePreservesMean(t *testing.T) {
	x := make([]float64, 120)
	x[60] = -50

	y, err := Upsample(x, 3)
	if err != nil {
		t.Fatalf("Upsample: %v", err)
	}

	var meanX, meanY float64
	for _, v := range x {
		meanX += v
	}
	meanX /= float64(len(x))

	for _, v := range y {
		meanY += v
	}
	meanY /= float64(len(y))

	if !almostEqual(meanX, meanY, tolerance) {
		t.Fatalf("mean changed: %g -> %g", meanX, meanY)
	}
}

func TestDownsampleTone(t *testing.T) {
	// 2 cycles in 40 samples, reduced to 20 samples: still below the
	// output Nyquist rate, so the tone survives exactly.
	y, err := Resample(tone(40, 2), 20)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}

	for j, v := range y {
		want := math.Cos(2 * math.Pi * 2 * float64(j) / 20)
		if !almostEqual(v, want, tolerance) {
			t.Fatalf("y[%d] = %g, want %g", j, v, want)
		}
	}
}

func TestResampleSameLengthCopies(t *testing.T) {
	x := []float64{1, 2, 3}

	y, err := Resample(x, 3)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}

	y[0] = 99
	if x[0] != 1 {
		t.Fatal("Resample aliased its input")
	}
}

func TestUpsampleFactorOne(t *testing.T) {
	x := []float64{1, -2, 3}

	y, err := Upsample(x, 1)
	if err != nil {
		t.Fatalf("Upsample: %v", err)
	}

	for i := range x {
		if y[i] != x[i] {
			t.Fatalf("y[%d] = %g, want %g", i, y[i], x[i])
		}
	}
}

func TestEmptyInput(t *testing.T) {
	y, err := Resample(nil, 10)
	if err != nil || y != nil {
		t.Fatalf("Resample(nil) = %v, %v", y, err)
	}

	y, err = Upsample(nil, 2)
	if err != nil || y != nil {
		t.Fatalf("Upsample(nil) = %v, %v", y, err)
	}
}

func TestInvalidArguments(t *testing.T) {
	if _, err := Resample([]float64{1}, 0); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("Resample: err = %v, want ErrInvalidLength", err)
	}

	if _, err := Upsample([]float64{1}, 0); !errors.Is(err, ErrInvalidFactor) {
		t.Fatalf("Upsample: err = %v, want ErrInvalidFactor", err)
	}
}
