package detect

import (
	"errors"
	"fmt"
)

var (
	// ErrNilRecording indicates a nil recording source.
	ErrNilRecording = errors.New("detect: nil recording")
	// ErrInvalidSampleRate indicates a non-positive sampling rate.
	ErrInvalidSampleRate = errors.New("detect: sample rate must be positive")
	// ErrInvalidFrameRange indicates an empty or inverted frame range.
	ErrInvalidFrameRange = errors.New("detect: invalid frame range")
	// ErrNoChannels indicates an empty channel set.
	ErrNoChannels = errors.New("detect: no channels to process")
	// ErrUnknownChannel indicates requested channel IDs missing from the source.
	ErrUnknownChannel = errors.New("detect: unknown channel")
	// ErrEmptyTrace indicates a trace with no samples.
	ErrEmptyTrace = errors.New("detect: empty trace")
	// ErrPadTooShort indicates an alignment half-window below one sample.
	ErrPadTooShort = errors.New("detect: alignment window shorter than one sample")
	// ErrAllChannelsFailed indicates that no channel produced a result.
	ErrAllChannelsFailed = errors.New("detect: all channels failed")
)

// ChannelError reports a failure local to one channel's worker.
type ChannelError struct {
	Channel int
	Err     error
}

func (e ChannelError) Error() string {
	return fmt.Sprintf("detect: channel %d: %v", e.Channel, e.Err)
}

func (e ChannelError) Unwrap() error {
	return e.Err
}
