package detect

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-ephys/recording"
)

// Spikes detects spike events on a recording and aggregates them into
// one unit per channel with events.
//
// Validation errors (unknown channels, degenerate frame range or
// sampling rate) fail the call before any channel is processed. After
// validation each channel succeeds or fails on its own: failures are
// collected on Result.Failures and only an all-channel failure turns
// into an error. Repeated runs over the same input and options yield
// identical results regardless of the execution strategy.
func Spikes(rec recording.Recording, opts ...Option) (*Result, error) {
	if rec == nil {
		return nil, ErrNilRecording
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	sampleRate := rec.SampleRate()
	if sampleRate <= 0 || math.IsNaN(sampleRate) {
		return nil, ErrInvalidSampleRate
	}

	numFrames := rec.NumFrames()

	start := cfg.startFrame
	end := cfg.endFrame
	if end < 0 || end > numFrames {
		end = numFrames
	}

	if start >= end {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidFrameRange, start, end)
	}

	channels := cfg.channels
	if channels == nil {
		channels = rec.ChannelIDs()
	}

	if len(channels) == 0 {
		return nil, ErrNoChannels
	}

	var unknown []int
	for _, id := range channels {
		if !recording.HasChannel(rec, id) {
			unknown = append(unknown, id)
		}
	}

	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownChannel, unknown)
	}

	pad := int(cfg.padMs * sampleRate / 1000)
	if cfg.align && pad < 1 {
		return nil, fmt.Errorf("%w: %g ms at %g Hz", ErrPadTooShort, cfg.padMs, sampleRate)
	}

	result := &Result{}

	var desc recording.Descriptor

	parallel := false
	if cfg.jobs > 1 {
		if s, ok := rec.(recording.Shareable); ok {
			if d, ok := s.Describe(); ok {
				desc = d
				parallel = true
			}
		}

		if !parallel {
			result.Warnings = append(result.Warnings,
				"recording source is not shareable, falling back to sequential detection")
		}
	}

	events := make([][]Event, len(channels))
	errs := make([]error, len(channels))

	if parallel {
		runParallel(desc, channels, start, end, pad, cfg, events, errs)
	} else {
		for i, id := range channels {
			events[i], errs[i] = runChannel(rec, id, start, end, pad, cfg)
		}
	}

	duration := float64(end-start) / sampleRate

	for i, id := range channels {
		if errs[i] != nil {
			result.Failures = append(result.Failures, ChannelError{Channel: id, Err: errs[i]})
			continue
		}

		if len(events[i]) == 0 {
			continue
		}

		result.Units = append(result.Units, makeUnit(id, events[i], duration))
	}

	if len(result.Failures) == len(channels) {
		joined := make([]error, len(result.Failures))
		for i, f := range result.Failures {
			joined[i] = f
		}

		return nil, fmt.Errorf("%w: %w", ErrAllChannelsFailed, errors.Join(joined...))
	}

	return result, nil
}
