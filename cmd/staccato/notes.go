// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/staccato-dev/staccato/audio"
	"github.com/staccato-dev/staccato/notes"
	"github.com/staccato-dev/staccato/onset"
)

func newNotesCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes <input.wav>",
		Short: "Segment notes and write them as start,end rows in decimal seconds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Input = args[0]

			return runNotes(cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.Output, "output", "o", "notes.csv", "output segment file")
	cmd.Flags().StringVarP(&cfg.Detector, "detector", "d", "adaptive-rms",
		"detection function: rms-derivative, adaptive-rms or pitch-change")
	cmd.Flags().IntVarP(&cfg.Window, "window", "w", 1024, "analysis window size in samples")
	cmd.Flags().IntVar(&cfg.Hop, "hop", 441, "hop size in samples")
	cmd.Flags().Float64VarP(&cfg.MinTime, "min-time", "m", 0.1, "minimum time between onsets, seconds")
	cmd.Flags().Float64VarP(&cfg.Threshold, "threshold", "t", 0.2, "peak-picking threshold")

	return cmd
}

func runNotes(cfg *Config) error {
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	det, criteria, err := newDetector(&Config{Detector: cfg.Detector})
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

	onsets, _, err := onset.Extract(clip, det, onset.Params{
		MinTime:   cfg.MinTime,
		Threshold: cfg.Threshold,
		Criteria:  criteria,
	})
	if err != nil {
		return err
	}
	logger.Info("onsets detected", zap.Int("count", len(onsets)))

	noteList, err := notes.Segment(clip, onsets, cfg.Window, cfg.Hop)
	if err != nil {
		return err
	}
	segments, err := noteList.List()
	if err != nil {
		return err
	}
	logger.Info("notes segmented", zap.Int("count", len(noteList)))

	if err := segments.SaveFile(cfg.Output); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	logger.Info("notes written", zap.String("file", cfg.Output))

	return nil
}
