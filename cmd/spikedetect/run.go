package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-ephys/detect"
	"github.com/cwbudde/algo-ephys/preprocess"
	"github.com/cwbudde/algo-ephys/recording"
	"github.com/cwbudde/algo-ephys/recording/wavfile"
)

// run opens the recording, applies the optional conditioning stages,
// detects spikes, and writes the result to out. Progress, warnings,
// and per-channel failures go to errw.
func run(out, errw io.Writer, path string, s *settings) error {
	logger := log.New(errw, "", 0)

	file, err := wavfile.Open(path)
	if err != nil {
		return err
	}

	if s.Verbose {
		logger.Printf("%s: %d channels, %d frames at %g Hz",
			path, len(file.ChannelIDs()), file.NumFrames(), file.SampleRate())
	}

	var rec recording.Recording = file
	if s.BandHigh > 0 || s.CommonRef != "" {
		rec, err = condition(file, s, logger)
		if err != nil {
			return err
		}
	}

	opts, err := s.options()
	if err != nil {
		return err
	}

	started := time.Now()

	result, err := detect.Spikes(rec, opts...)
	if err != nil {
		return err
	}

	if s.Verbose {
		logger.Printf("%d events in %d units after %s",
			result.NumEvents(), len(result.Units), time.Since(started).Round(time.Millisecond))
	}

	for _, w := range result.Warnings {
		logger.Printf("warning: %s", w)
	}

	for _, f := range result.Failures {
		logger.Printf("channel %d failed: %v", f.Channel, f.Err)
	}

	if s.JSON {
		err = writeJSON(out, path, rec, result)
	} else {
		err = writeSummary(out, result)
	}

	if err != nil {
		return err
	}

	if n := len(result.Failures); n > 0 {
		requested := len(s.Channels)
		if requested == 0 {
			requested = len(file.ChannelIDs())
		}

		return fmt.Errorf("%d of %d channels failed", n, requested)
	}

	return nil
}

// condition materializes the conditioned traces as an in-memory
// recording. Filtering and re-referencing run over every channel so a
// later channel selection still sees the same reference signals.
func condition(file *wavfile.File, s *settings, logger *log.Logger) (recording.Recording, error) {
	ids := file.ChannelIDs()
	rate := file.SampleRate()
	frames := file.NumFrames()

	traces := make([][]float64, len(ids))
	for i, id := range ids {
		trace, err := file.Trace(id, 0, frames)
		if err != nil {
			return nil, err
		}

		traces[i] = trace
	}

	if s.BandHigh > 0 {
		if s.Verbose {
			logger.Printf("bandpass [%g, %g] Hz", s.BandLow, s.BandHigh)
		}

		for i := range traces {
			filtered, err := preprocess.Bandpass(traces[i], rate, s.BandLow, s.BandHigh)
			if err != nil {
				return nil, err
			}

			traces[i] = filtered
		}
	}

	switch s.CommonRef {
	case "average":
		if s.Verbose {
			logger.Printf("common average reference over %d channels", len(ids))
		}

		referenced, err := preprocess.CommonAverageReference(traces)
		if err != nil {
			return nil, err
		}

		traces = referenced
	case "median":
		if s.Verbose {
			logger.Printf("common median reference over %d channels", len(ids))
		}

		referenced, err := preprocess.CommonMedianReference(traces)
		if err != nil {
			return nil, err
		}

		traces = referenced
	}

	return recording.NewMemoryWithIDs(rate, ids, traces)
}

func writeSummary(out io.Writer, result *detect.Result) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "Channel\tEvents\tRate [Hz]\tMedian Amp\tFirst\tLast\n"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(tw, "-------\t------\t---------\t----------\t-----\t----\n"); err != nil {
		return err
	}

	for _, u := range result.Units {
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%.3f\t%.4f\t%d\t%d\n",
			u.Channel,
			len(u.Times),
			u.Props[detect.PropRate],
			u.Props[detect.PropAmplitude],
			u.Times[0],
			u.Times[len(u.Times)-1],
		); err != nil {
			return err
		}
	}

	return tw.Flush()
}

type unitJSON struct {
	Channel    int                `json:"channel"`
	Times      []int              `json:"times"`
	Amplitudes []float64          `json:"amplitudes"`
	Props      map[string]float64 `json:"props"`
}

type failureJSON struct {
	Channel int    `json:"channel"`
	Error   string `json:"error"`
}

type reportJSON struct {
	File       string        `json:"file"`
	SampleRate float64       `json:"sample_rate"`
	NumFrames  int           `json:"num_frames"`
	NumEvents  int           `json:"num_events"`
	Units      []unitJSON    `json:"units"`
	Warnings   []string      `json:"warnings,omitempty"`
	Failures   []failureJSON `json:"failures,omitempty"`
}

func writeJSON(out io.Writer, path string, rec recording.Recording, result *detect.Result) error {
	report := reportJSON{
		File:       path,
		SampleRate: rec.SampleRate(),
		NumFrames:  rec.NumFrames(),
		NumEvents:  result.NumEvents(),
		Units:      make([]unitJSON, 0, len(result.Units)),
		Warnings:   result.Warnings,
	}

	for _, u := range result.Units {
		report.Units = append(report.Units, unitJSON{
			Channel:    u.Channel,
			Times:      u.Times,
			Amplitudes: u.Amplitudes,
			Props:      u.Props,
		})
	}

	for _, f := range result.Failures {
		report.Failures = append(report.Failures, failureJSON{Channel: f.Channel, Error: f.Err.Error()})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(report)
}
