package detect

// Sign selects the polarity of excursions to detect.
type Sign int

const (
	// SignNegative detects downward excursions below the negative threshold.
	SignNegative Sign = -1
	// SignPositive detects upward excursions above the positive threshold.
	SignPositive Sign = 1
	// SignBoth detects excursions of either polarity. Amplitudes are
	// reported as positive magnitudes in this mode.
	SignBoth Sign = 0
)

type config struct {
	channels   []int
	threshold  float64
	padMs      float64
	upsample   int
	sign       Sign
	minDiff    int
	align      bool
	startFrame int
	endFrame   int
	jobs       int
}

func defaultConfig() config {
	return config{
		threshold: 5,
		padMs:     2,
		upsample:  1,
		sign:      SignNegative,
		minDiff:   5,
		align:     true,
		endFrame:  -1,
		jobs:      1,
	}
}

// Option configures detection.
type Option func(*config)

// WithChannels restricts detection to the given channel IDs. The
// default is every channel of the recording, in recording order.
func WithChannels(ids ...int) Option {
	return func(cfg *config) {
		cfg.channels = append([]int(nil), ids...)
	}
}

// WithThreshold sets the sensitivity multiplier applied to the robust
// noise scale. Negative values are ignored.
func WithThreshold(k float64) Option {
	return func(cfg *config) {
		if k >= 0 {
			cfg.threshold = k
		}
	}
}

// WithSign selects which polarity of excursion to detect.
func WithSign(s Sign) Option {
	return func(cfg *config) {
		if s == SignNegative || s == SignPositive || s == SignBoth {
			cfg.sign = s
		}
	}
}

// WithPadMs sets the alignment half-window width in milliseconds. It is
// converted to samples using the recording's sampling rate. Negative
// values are ignored.
func WithPadMs(ms float64) Option {
	return func(cfg *config) {
		if ms >= 0 {
			cfg.padMs = ms
		}
	}
}

// WithUpsample sets the interpolation factor for sub-sample alignment.
// A factor of 1 disables upsampling. Values below 1 are ignored.
func WithUpsample(factor int) Option {
	return func(cfg *config) {
		if factor >= 1 {
			cfg.upsample = factor
		}
	}
}

// WithMinDiff sets the minimum gap in samples between threshold
// crossings that separates distinct events. Crossings closer than this
// merge into one event, so the value should exceed the expected event
// width. Negative values are ignored.
func WithMinDiff(samples int) Option {
	return func(cfg *config) {
		if samples >= 0 {
			cfg.minDiff = samples
		}
	}
}

// WithAlign toggles windowed peak alignment. When disabled, each event
// takes its anchor index and raw sample value directly.
func WithAlign(enabled bool) Option {
	return func(cfg *config) {
		cfg.align = enabled
	}
}

// WithFrameRange restricts detection to frames [start, end). An end
// below zero or past the recording means the full remaining duration.
// Negative starts are ignored.
func WithFrameRange(start, end int) Option {
	return func(cfg *config) {
		if start >= 0 {
			cfg.startFrame = start
			cfg.endFrame = end
		}
	}
}

// WithJobs requests concurrent per-channel detection with up to n
// workers. Parallel execution requires a recording that can be reopened
// from a descriptor; otherwise detection downgrades to sequential and
// records a warning. Values below 1 are ignored.
func WithJobs(n int) Option {
	return func(cfg *config) {
		if n >= 1 {
			cfg.jobs = n
		}
	}
}
