// Package recording provides read access to multichannel extracellular
// recordings.
//
// A Recording exposes a fixed set of channels sampled at a common rate.
// Traces are addressed by channel ID and a half-open frame range, so the
// same code can operate on full recordings or on arbitrary excerpts.
//
// Implementations that are backed by a reopenable source (typically a
// file on disk) additionally implement Shareable. A Descriptor obtained
// from Describe can be handed to another goroutine, which opens its own
// independent handle via Open. In-memory recordings are not shareable.
package recording
