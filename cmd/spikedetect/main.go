// Command spikedetect finds threshold-crossing spikes in a WAV
// recording and prints one summary row per channel, or the full
// result as JSON.
//
// Usage:
//
//	spikedetect [flags] <recording.wav>
//
// Every flag can also come from a YAML config file (spikedetect.yaml
// in the working directory, or a file named with --config). Explicit
// flags win over the file; the file wins over built-in defaults.
//
// Examples:
//
//	spikedetect recording.wav
//	spikedetect -t 4.5 -s both -j 4 recording.wav
//	spikedetect --band-low 300 --band-high 6000 --common-ref median recording.wav
//	spikedetect --json recording.wav > events.json
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "spikedetect <recording.wav>",
	Short: "Threshold-based spike detection on extracellular recordings",
	Long: `Detects spikes on each channel of a WAV recording by thresholding
against a robust estimate of the channel noise, groups nearby
threshold crossings into events, and aligns each event to the
extremum of a short window around it.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], s)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default spikedetect.yaml in the working directory)")
	rootCmd.Flags().Float64P("threshold", "t", 5, "detection threshold in robust noise units")
	rootCmd.Flags().StringP("sign", "s", "neg", "excursion polarity: neg, pos, or both")
	rootCmd.Flags().Float64("pad-ms", 2, "alignment half-window in milliseconds")
	rootCmd.Flags().IntP("upsample", "u", 1, "upsampling factor for sub-sample alignment")
	rootCmd.Flags().Int("min-diff", 5, "minimum gap in samples between separate events")
	rootCmd.Flags().Bool("align", true, "align each event to the window extremum")
	rootCmd.Flags().Int("start", 0, "first frame to analyze")
	rootCmd.Flags().Int("end", -1, "frame to stop before, -1 for the end of the recording")
	rootCmd.Flags().IntP("jobs", "j", 1, "number of concurrent channel workers")
	rootCmd.Flags().IntSliceP("channels", "c", nil, "channel ids to analyze (default all)")
	rootCmd.Flags().Float64("band-low", 0, "bandpass low edge in Hz (0 keeps the lowpass side open)")
	rootCmd.Flags().Float64("band-high", 0, "bandpass high edge in Hz (0 disables filtering)")
	rootCmd.Flags().String("common-ref", "", "re-reference across channels: average or median")
	rootCmd.Flags().Bool("json", false, "emit the full result as JSON instead of a table")
	rootCmd.Flags().BoolP("verbose", "v", false, "log progress to stderr")

	bindFlags()
}

// bindFlags connects the command flags to viper keys so config file
// values fill in for flags the user did not set.
func bindFlags() {
	viper.BindPFlag("threshold", rootCmd.Flags().Lookup("threshold"))
	viper.BindPFlag("sign", rootCmd.Flags().Lookup("sign"))
	viper.BindPFlag("pad_ms", rootCmd.Flags().Lookup("pad-ms"))
	viper.BindPFlag("upsample", rootCmd.Flags().Lookup("upsample"))
	viper.BindPFlag("min_diff", rootCmd.Flags().Lookup("min-diff"))
	viper.BindPFlag("align", rootCmd.Flags().Lookup("align"))
	viper.BindPFlag("start", rootCmd.Flags().Lookup("start"))
	viper.BindPFlag("end", rootCmd.Flags().Lookup("end"))
	viper.BindPFlag("jobs", rootCmd.Flags().Lookup("jobs"))
	viper.BindPFlag("channels", rootCmd.Flags().Lookup("channels"))
	viper.BindPFlag("band_low", rootCmd.Flags().Lookup("band-low"))
	viper.BindPFlag("band_high", rootCmd.Flags().Lookup("band-high"))
	viper.BindPFlag("common_ref", rootCmd.Flags().Lookup("common-ref"))
	viper.BindPFlag("json", rootCmd.Flags().Lookup("json"))
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)

		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "config error: %v\n", err)
			os.Exit(1)
		}

		return
	}

	viper.SetConfigName("spikedetect")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "config error: %v\n", err)
			os.Exit(1)
		}
	}
}
