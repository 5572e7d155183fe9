// Package detect finds discrete spike events in multichannel
// extracellular recordings by per-channel amplitude thresholding.
//
// Detection runs in four stages per channel:
//
//  1. Threshold estimation. The detection threshold is a sensitivity
//     multiplier times a robust noise scale, median(|x|)/0.6745, so a
//     handful of large spikes does not inflate the threshold.
//  2. Segmentation. Samples beyond the threshold are grouped into
//     excursions; crossings closer than a minimum gap collapse into a
//     single event anchored at the trailing crossing of the run.
//  3. Alignment. A fixed-width window around each anchor, zero-padded
//     at trace boundaries and optionally upsampled by band-limited
//     interpolation, locates the event's true extremum and time.
//  4. Aggregation. Per-channel events become units carrying spike
//     times, amplitudes, and derived statistics (median amplitude,
//     spike rate).
//
// Channels are processed independently. With Jobs > 1 and a recording
// that can be reopened from a descriptor, channels run concurrently;
// otherwise detection falls back to sequential processing and notes the
// downgrade in Result.Warnings.
package detect
