// Package preprocess conditions multichannel traces ahead of spike
// detection.
//
// Bandpass confines a trace to the spike band with a frequency-domain
// mask, the usual first step before thresholding raw wideband
// recordings. CommonAverageReference and CommonMedianReference remove
// noise shared across a probe's channels by subtracting the per-frame
// mean or median.
//
// All functions return new slices and leave their inputs untouched, so
// conditioned and raw traces can coexist.
package preprocess
