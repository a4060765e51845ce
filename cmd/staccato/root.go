// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Config carries every knob of the CLI explicitly; the analysis packages
// never read ambient state.
type Config struct {
	Input  string
	Output string

	Detector  string
	Window    int
	Hop       int
	MinTime   float64
	Threshold float64

	Verbose bool
}

func newRootCmd() *cobra.Command {
	cfg := &Config{}

	root := &cobra.Command{
		Use:   "staccato",
		Short: "Expressive music information extraction for monophonic audio",
		Long: "staccato analyzes monophonic audio recordings and extracts " +
			"expressive information: note onsets, note envelope segments and " +
			"the detection curves behind them.",
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newOnsetsCmd(cfg))
	root.AddCommand(newNotesCmd(cfg))

	return root
}

// newLogger builds the process logger; debug level when verbose is set.
func newLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.Verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}
