package detect

import (
	"io"
	"sync"

	"github.com/cwbudde/algo-ephys/recording"
)

// detectChannel runs the per-channel pipeline on one trace: threshold,
// crossings, anchors, then one event per anchor. Event times are
// shifted by startFrame onto the recording's global frame axis.
func detectChannel(trace []float64, startFrame, pad int, cfg config) ([]Event, error) {
	threshold, err := Threshold(trace, cfg.threshold)
	if err != nil {
		return nil, err
	}

	idx := anchors(crossings(trace, threshold, cfg.sign), cfg.minDiff)
	if len(idx) == 0 {
		return nil, nil
	}

	events := make([]Event, 0, len(idx))

	for _, anchor := range idx {
		if !cfg.align {
			events = append(events, Event{
				Time:      startFrame + anchor,
				Amplitude: trace[anchor],
			})

			continue
		}

		t, amp, err := alignEvent(trace, anchor, pad, cfg.upsample, cfg.sign)
		if err != nil {
			return nil, err
		}

		events = append(events, Event{Time: startFrame + t, Amplitude: amp})
	}

	return events, nil
}

// runChannel fetches one channel's trace and detects its events.
func runChannel(rec recording.Recording, channelID, start, end, pad int, cfg config) ([]Event, error) {
	trace, err := rec.Trace(channelID, start, end)
	if err != nil {
		return nil, err
	}

	return detectChannel(trace, start, pad, cfg)
}

// runParallel detects every channel concurrently, bounded by cfg.jobs
// workers. Each worker reopens its own recording handle from the
// descriptor, so no handle is shared across goroutines. Results land in
// the caller's slices by channel position, keeping aggregation order
// independent of scheduling.
func runParallel(desc recording.Descriptor, channels []int, start, end, pad int, cfg config, events [][]Event, errs []error) {
	sem := make(chan struct{}, cfg.jobs)

	var wg sync.WaitGroup

	for i, id := range channels {
		wg.Add(1)

		go func(i, channelID int) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			rec, err := desc.Open()
			if err != nil {
				errs[i] = err
				return
			}

			if closer, ok := rec.(io.Closer); ok {
				defer closer.Close()
			}

			events[i], errs[i] = runChannel(rec, channelID, start, end, pad, cfg)
		}(i, id)
	}

	wg.Wait()
}
