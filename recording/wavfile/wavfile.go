// Package wavfile loads multichannel recordings from RIFF/WAV files.
//
// Each WAV channel becomes one recording channel with IDs 0..n-1.
// Integer PCM samples are normalized to [-1, 1) by the source bit
// depth. A File remembers its path, so it can be described and
// reopened by worker goroutines.
package wavfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-ephys/recording"
)

// Errors returned by Open.
var (
	ErrNotWAV            = errors.New("wavfile: not a valid WAV file")
	ErrUnsupportedFormat = errors.New("wavfile: unsupported audio format")
	ErrNoData            = errors.New("wavfile: no audio data")
)

// File is a Recording loaded from a WAV file. Samples are held in
// memory; the path is retained so the source can be reopened.
type File struct {
	*recording.Memory
	path string
}

// Open reads the WAV file at path and returns it as a recording.
// Only integer PCM with a bit depth of at least 16 is supported.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavfile: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrNotWAV, path)
	}

	if dec.WavAudioFormat != 1 || dec.BitDepth < 16 {
		return nil, fmt.Errorf("%w: format %d, %d bit", ErrUnsupportedFormat, dec.WavAudioFormat, dec.BitDepth)
	}

	duration, err := dec.Duration()
	if err != nil {
		return nil, fmt.Errorf("wavfile: %w", err)
	}

	numChans := int(dec.NumChans)
	if numChans == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoData, path)
	}

	// Duration is rounded to nanoseconds, so derive the frame count from
	// the actual read below and only size the buffer here, with headroom
	// for the rounding.
	estFrames := int(math.Ceil(duration.Seconds()*float64(dec.SampleRate))) + 1

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChans,
			SampleRate:  int(dec.SampleRate),
		},
		Data:           make([]int, estFrames*numChans),
		SourceBitDepth: int(dec.BitDepth),
	}

	n, err := dec.PCMBuffer(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("wavfile: %w", err)
	}

	numFrames := n / numChans
	if numFrames == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoData, path)
	}

	scale := 1 / float64(int(1)<<(uint(dec.BitDepth)-1))
	traces := make([][]float64, numChans)
	for c := range traces {
		traces[c] = make([]float64, numFrames)
	}

	for i := 0; i < numFrames; i++ {
		for c := 0; c < numChans; c++ {
			traces[c][i] = float64(buf.Data[i*numChans+c]) * scale
		}
	}

	mem, err := recording.NewMemory(float64(dec.SampleRate), traces)
	if err != nil {
		return nil, fmt.Errorf("wavfile: %w", err)
	}

	return &File{Memory: mem, path: path}, nil
}

// Path returns the path the file was opened from.
func (f *File) Path() string {
	return f.path
}

// Describe returns a Descriptor for the file's path.
func (f *File) Describe() (recording.Descriptor, bool) {
	return Descriptor{Path: f.path}, true
}

// Descriptor identifies a WAV file by path. Opening it yields an
// independent recording backed by a fresh read of the file.
type Descriptor struct {
	Path string
}

// Open loads the described file.
func (d Descriptor) Open() (recording.Recording, error) {
	return Open(d.Path)
}
