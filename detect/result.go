package detect

import "github.com/cwbudde/algo-ephys/stats/robust"

// Property keys present on every unit.
const (
	// PropChannel is the source channel ID.
	PropChannel = "channel"
	// PropAmplitude is the median spike amplitude.
	PropAmplitude = "spike_amplitude"
	// PropRate is the spike count divided by the analyzed duration in
	// seconds.
	PropRate = "spike_rate"
)

// Event is one detected spike: its frame index on the recording's
// global frame axis and its amplitude. For SignBoth detection the
// amplitude is the extremum's magnitude; otherwise it is the signed
// sample value.
type Event struct {
	Time      int
	Amplitude float64
}

// Unit aggregates the events of one channel. Times and Amplitudes are
// index-paired and follow excursion order.
type Unit struct {
	Channel    int
	Times      []int
	Amplitudes []float64
	Props      map[string]float64
}

// Result is the outcome of one detection run.
//
// Units holds one entry per requested channel that produced at least
// one event, in requested-channel order. Warnings records non-fatal
// downgrades such as the sequential fallback. Failures lists channels
// whose workers failed after validation; their siblings are unaffected.
type Result struct {
	Units    []Unit
	Warnings []string
	Failures []ChannelError
}

// NumEvents returns the total event count across all units.
func (r *Result) NumEvents() int {
	n := 0
	for _, u := range r.Units {
		n += len(u.Times)
	}

	return n
}

// Unit returns the unit for the given channel ID, or false if the
// channel produced no events or was not processed.
func (r *Result) Unit(channelID int) (Unit, bool) {
	for _, u := range r.Units {
		if u.Channel == channelID {
			return u, true
		}
	}

	return Unit{}, false
}

// makeUnit labels one channel's events and derives its statistics.
func makeUnit(channelID int, events []Event, duration float64) Unit {
	times := make([]int, len(events))
	amps := make([]float64, len(events))

	for i, ev := range events {
		times[i] = ev.Time
		amps[i] = ev.Amplitude
	}

	return Unit{
		Channel:    channelID,
		Times:      times,
		Amplitudes: amps,
		Props: map[string]float64{
			PropChannel:   float64(channelID),
			PropAmplitude: robust.Median(amps),
			PropRate:      float64(len(events)) / duration,
		},
	}
}
