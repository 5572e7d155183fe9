package recording

import "errors"

// Errors returned by the Memory constructors.
var (
	ErrInvalidSampleRate = errors.New("recording: sample rate must be positive")
	ErrNoTraces          = errors.New("recording: at least one trace required")
	ErrTraceLength       = errors.New("recording: traces must have equal length")
	ErrChannelCount      = errors.New("recording: channel id count must match trace count")
	ErrDuplicateChannel  = errors.New("recording: duplicate channel id")
)

// Memory is a Recording backed by in-process sample buffers.
//
// Its state lives only in this process, so Memory does not implement
// Shareable.
type Memory struct {
	sampleRate float64
	ids        []int
	index      map[int]int
	traces     [][]float64
	numFrames  int
}

// NewMemory wraps one trace per channel, assigning channel IDs 0..n-1 in
// order. The trace slices are retained, not copied; the caller must not
// modify them afterwards.
func NewMemory(sampleRate float64, traces [][]float64) (*Memory, error) {
	ids := make([]int, len(traces))
	for i := range ids {
		ids[i] = i
	}

	return NewMemoryWithIDs(sampleRate, ids, traces)
}

// NewMemoryWithIDs is like NewMemory but assigns the given channel IDs,
// which must be unique and match the number of traces.
func NewMemoryWithIDs(sampleRate float64, ids []int, traces [][]float64) (*Memory, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	if len(traces) == 0 {
		return nil, ErrNoTraces
	}

	if len(ids) != len(traces) {
		return nil, ErrChannelCount
	}

	numFrames := len(traces[0])
	for _, trace := range traces[1:] {
		if len(trace) != numFrames {
			return nil, ErrTraceLength
		}
	}

	index := make(map[int]int, len(ids))
	for i, id := range ids {
		if _, ok := index[id]; ok {
			return nil, ErrDuplicateChannel
		}

		index[id] = i
	}

	m := &Memory{
		sampleRate: sampleRate,
		ids:        append([]int(nil), ids...),
		index:      index,
		traces:     traces,
		numFrames:  numFrames,
	}

	return m, nil
}

// ChannelIDs returns the channel identifiers in construction order.
func (m *Memory) ChannelIDs() []int {
	return append([]int(nil), m.ids...)
}

// SampleRate returns the sampling rate in Hz.
func (m *Memory) SampleRate() float64 {
	return m.sampleRate
}

// NumFrames returns the number of frames per channel.
func (m *Memory) NumFrames() int {
	return m.numFrames
}

// Trace returns a copy of one channel over [startFrame, endFrame).
func (m *Memory) Trace(channelID, startFrame, endFrame int) ([]float64, error) {
	i, ok := m.index[channelID]
	if !ok {
		return nil, ErrUnknownChannel
	}

	if startFrame < 0 || endFrame > m.numFrames || startFrame >= endFrame {
		return nil, ErrInvalidRange
	}

	out := make([]float64, endFrame-startFrame)
	copy(out, m.traces[i][startFrame:endFrame])

	return out, nil
}
