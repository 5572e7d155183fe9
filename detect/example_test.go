package detect_test

import (
	"fmt"

	"github.com/cwbudde/algo-ephys/detect"
	"github.com/cwbudde/algo-ephys/recording"
)

func ExampleSpikes() {
	// One second at 30 kHz with a single negative spike.
	trace := make([]float64, 30000)
	trace[15000] = -50

	rec, err := recording.NewMemory(30000, [][]float64{trace})
	if err != nil {
		panic(err)
	}

	result, err := detect.Spikes(rec)
	if err != nil {
		panic(err)
	}

	for _, unit := range result.Units {
		fmt.Printf("channel %d: %d spike(s)\n", unit.Channel, len(unit.Times))
		fmt.Printf("time %d, amplitude %.0f\n", unit.Times[0], unit.Amplitudes[0])
		fmt.Printf("rate %.1f Hz\n", unit.Props[detect.PropRate])
	}

	// Output:
	// channel 0: 1 spike(s)
	// time 15000, amplitude -50
	// rate 1.0 Hz
}

func ExampleSpikes_positive() {
	trace := make([]float64, 10000)
	trace[2000] = 80
	trace[7000] = 65

	rec, err := recording.NewMemory(10000, [][]float64{trace})
	if err != nil {
		panic(err)
	}

	result, err := detect.Spikes(rec, detect.WithSign(detect.SignPositive))
	if err != nil {
		panic(err)
	}

	unit := result.Units[0]
	for i, time := range unit.Times {
		fmt.Printf("spike at %d, amplitude %.0f\n", time, unit.Amplitudes[i])
	}

	// Output:
	// spike at 2000, amplitude 80
	// spike at 7000, amplitude 65
}
