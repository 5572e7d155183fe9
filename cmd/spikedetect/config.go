package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/cwbudde/algo-ephys/detect"
)

// settings mirrors the flag and config file surface of the command.
type settings struct {
	Threshold float64 `mapstructure:"threshold"`
	Sign      string  `mapstructure:"sign"`
	PadMs     float64 `mapstructure:"pad_ms"`
	Upsample  int     `mapstructure:"upsample"`
	MinDiff   int     `mapstructure:"min_diff"`
	Align     bool    `mapstructure:"align"`
	Start     int     `mapstructure:"start"`
	End       int     `mapstructure:"end"`
	Jobs      int     `mapstructure:"jobs"`
	Channels  []int   `mapstructure:"channels"`
	BandLow   float64 `mapstructure:"band_low"`
	BandHigh  float64 `mapstructure:"band_high"`
	CommonRef string  `mapstructure:"common_ref"`
	JSON      bool    `mapstructure:"json"`
	Verbose   bool    `mapstructure:"verbose"`
}

// loadSettings resolves the merged flag/file/default view from viper.
func loadSettings() (*settings, error) {
	var s settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &s, nil
}

func (s *settings) validate() error {
	var errs []error

	if s.Threshold < 0 {
		errs = append(errs, fmt.Errorf("threshold must be non-negative, got %v", s.Threshold))
	}

	if _, err := s.sign(); err != nil {
		errs = append(errs, err)
	}

	if s.PadMs < 0 {
		errs = append(errs, fmt.Errorf("pad-ms must be non-negative, got %v", s.PadMs))
	}

	if s.Upsample < 1 {
		errs = append(errs, fmt.Errorf("upsample must be at least 1, got %d", s.Upsample))
	}

	if s.MinDiff < 0 {
		errs = append(errs, fmt.Errorf("min-diff must be non-negative, got %d", s.MinDiff))
	}

	if s.Start < 0 {
		errs = append(errs, fmt.Errorf("start must be non-negative, got %d", s.Start))
	}

	if s.Jobs < 1 {
		errs = append(errs, fmt.Errorf("jobs must be at least 1, got %d", s.Jobs))
	}

	switch s.CommonRef {
	case "", "average", "median":
	default:
		errs = append(errs, fmt.Errorf("common-ref must be average or median, got %q", s.CommonRef))
	}

	if s.BandHigh > 0 {
		if s.BandLow < 0 || s.BandHigh <= s.BandLow {
			errs = append(errs, fmt.Errorf("band edges must satisfy 0 <= low < high, got [%v, %v]", s.BandLow, s.BandHigh))
		}
	} else if s.BandLow != 0 {
		errs = append(errs, fmt.Errorf("band-low requires band-high"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

func (s *settings) sign() (detect.Sign, error) {
	switch strings.ToLower(strings.TrimSpace(s.Sign)) {
	case "neg", "negative":
		return detect.SignNegative, nil
	case "pos", "positive":
		return detect.SignPositive, nil
	case "both":
		return detect.SignBoth, nil
	default:
		return 0, fmt.Errorf("sign must be neg, pos, or both, got %q", s.Sign)
	}
}

// options translates the settings into detection options.
func (s *settings) options() ([]detect.Option, error) {
	sign, err := s.sign()
	if err != nil {
		return nil, err
	}

	opts := []detect.Option{
		detect.WithThreshold(s.Threshold),
		detect.WithSign(sign),
		detect.WithPadMs(s.PadMs),
		detect.WithUpsample(s.Upsample),
		detect.WithMinDiff(s.MinDiff),
		detect.WithAlign(s.Align),
		detect.WithFrameRange(s.Start, s.End),
		detect.WithJobs(s.Jobs),
	}

	if len(s.Channels) > 0 {
		opts = append(opts, detect.WithChannels(s.Channels...))
	}

	return opts, nil
}
