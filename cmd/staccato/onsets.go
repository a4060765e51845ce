// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/staccato-dev/staccato/audio"
	"github.com/staccato-dev/staccato/onset"
)

func newOnsetsCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onsets <input.wav>",
		Short: "Detect note onsets and write them as decimal seconds, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Input = args[0]

			return runOnsets(cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.Output, "output", "o", "onsets.txt", "output point file")
	cmd.Flags().StringVarP(&cfg.Detector, "detector", "d", "adaptive-rms",
		"detection function: rms-derivative, adaptive-rms or pitch-change")
	cmd.Flags().IntVarP(&cfg.Window, "window", "w", 0, "analysis window size in samples (0 = detector default)")
	cmd.Flags().IntVar(&cfg.Hop, "hop", 0, "hop size in samples (0 = detector default)")
	cmd.Flags().Float64VarP(&cfg.MinTime, "min-time", "m", 0.1, "minimum time between onsets, seconds")
	cmd.Flags().Float64VarP(&cfg.Threshold, "threshold", "t", 0.2, "peak-picking threshold")

	return cmd
}

// newDetector maps the CLI selector to a Detector with the configured
// window geometry.
func newDetector(cfg *Config) (onset.Detector, onset.Criteria, error) {
	switch cfg.Detector {
	case "rms-derivative":
		return onset.RMSDerivative{Window: cfg.Window, Hop: cfg.Hop}, onset.Absolute, nil
	case "adaptive-rms":
		return onset.AdaptiveRMS{LongWindow: cfg.Window, Hop: cfg.Hop}, onset.RelativeToMax, nil
	case "pitch-change":
		return onset.PitchChange{Window: cfg.Window, Hop: cfg.Hop, Smooth: true}, onset.Absolute, nil
	default:
		return nil, 0, fmt.Errorf("unknown detector %q", cfg.Detector)
	}
}

func runOnsets(cfg *Config) error {
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	det, criteria, err := newDetector(cfg)
	if err != nil {
		return err
	}

	clip, err := audio.Load(cfg.Input)
	if err != nil {
		return fmt.Errorf("decode %s: %w", cfg.Input, err)
	}
	logger.Info("audio loaded",
		zap.String("file", cfg.Input),
		zap.Int("samples", clip.NSamples()),
		zap.String("fs", clip.SampleRate().String()))

	onsets, curve, err := onset.Extract(clip, det, onset.Params{
		MinTime:   cfg.MinTime,
		Threshold: cfg.Threshold,
		Criteria:  criteria,
	})
	if err != nil {
		return err
	}
	logger.Info("onsets detected",
		zap.String("detector", cfg.Detector),
		zap.Int("count", len(onsets)),
		zap.Int("curve_samples", curve.NSamples()))

	if err := onsets.SaveFile(cfg.Output); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	logger.Info("onsets written", zap.String("file", cfg.Output))

	return nil
}
