package recording

import "errors"

// Common errors returned by Recording implementations.
var (
	ErrUnknownChannel = errors.New("recording: unknown channel")
	ErrInvalidRange   = errors.New("recording: invalid frame range")
)

// Recording is a multichannel signal sampled at a common rate.
//
// Frames are addressed by index on a per-recording axis starting at zero.
// All channels have the same number of frames.
type Recording interface {
	// ChannelIDs returns the channel identifiers in recording order.
	ChannelIDs() []int

	// SampleRate returns the sampling rate in Hz.
	SampleRate() float64

	// NumFrames returns the number of frames per channel.
	NumFrames() int

	// Trace returns a copy of one channel over the half-open frame range
	// [startFrame, endFrame). It returns ErrUnknownChannel if the channel
	// does not exist and ErrInvalidRange if the range is empty or out of
	// bounds.
	Trace(channelID, startFrame, endFrame int) ([]float64, error)
}

// Shareable is implemented by recordings whose underlying source can be
// reopened independently, for example by a worker goroutine.
type Shareable interface {
	// Describe returns a descriptor for the underlying source. The second
	// return value reports whether such a descriptor exists; recordings
	// whose state lives only in process memory return false.
	Describe() (Descriptor, bool)
}

// Descriptor identifies a recording source that can be reopened. A
// descriptor is safe to pass between goroutines; each call to Open
// yields an independent Recording.
type Descriptor interface {
	Open() (Recording, error)
}

// HasChannel reports whether rec exposes the given channel ID.
func HasChannel(rec Recording, channelID int) bool {
	for _, id := range rec.ChannelIDs() {
		if id == channelID {
			return true
		}
	}

	return false
}
