// SPDX-License-Identifier: EPL-2.0

// Command beatmix writes a beatmatched transition from one track into
// another as a 16-bit stereo WAV file.
//
//	beatmix [flags] <track-a> <track-b> <out.wav|->
//
// An output of "-" streams the WAV to stdout. Anything else is written to a
// temporary file next to the target and renamed over it on success, so a
// failed run never leaves a partial file behind.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/ik5/beatmix"
	"github.com/ik5/beatmix/audio"
	"github.com/ik5/beatmix/internal/config"
	"github.com/ik5/beatmix/resample"
	"github.com/ik5/beatmix/transition"
)

// Exit codes, one per error kind.
const (
	exitOK = iota
	exitOther
	exitDecode
	exitEmpty
	exitLayout
	exitFadeWindow
	exitResample
	exitEncode
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse("beatmix", args, getenv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, "beatmix:", err)
		return exitOther
	}

	log, err := newLogger(stderr, cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		fmt.Fprintln(stderr, "beatmix:", err)
		return exitOther
	}

	if err := mix(ctx, log, cfg, stdout); err != nil {
		code := exitCode(err)
		log.WithError(err).WithField("exit", code).Error("Mix failed")
		return code
	}

	return exitOK
}

func mix(ctx context.Context, log *logrus.Logger, cfg config.Config, stdout io.Writer) error {
	start := time.Now()
	reg := beatmix.DefaultRegistry()

	tracks := make([]*audio.Track, 2)
	for i, path := range []string{cfg.A, cfg.B} {
		name := string(rune('A' + i))
		entry := log.WithFields(describe(path)).WithField("track", name)
		entry.Debug("Decoding")

		t, err := beatmix.LoadTrack(path, reg)
		if err != nil {
			return audio.WithTrack(name, err)
		}

		entry.WithFields(logrus.Fields{
			"frames":      humanize.Comma(int64(t.Len())),
			"sample_rate": t.SampleRate(),
			"duration":    t.Duration().Round(time.Millisecond),
		}).Info("Decoded")
		tracks[i] = t
	}

	res, err := beatmix.MixTracks(ctx, tracks[0], tracks[1], cfg.Mix())
	if err != nil {
		return err
	}

	for i, est := range []fmt.Stringer{res.A, res.B} {
		log.WithField("track", string(rune('A'+i))).Infof("Tempo %s", est)
	}

	plan := res.Plan
	entry := log.WithFields(logrus.Fields{
		"tempo_ratio":   fmt.Sprintf("%.4f", plan.TempoRatio),
		"initial_ratio": fmt.Sprintf("%.4f", plan.InitialRatio),
		"fade_frames":   humanize.Comma(int64(plan.FadeFrames)),
		"blocks":        plan.Blocks,
		"envelope":      cfg.Envelope,
	})
	switch {
	case plan.Fallback != nil:
		entry.WithError(plan.Fallback).Warn("Tempo unknown, crossfading without beatmatching")
	case plan.Clamped:
		entry.Warn("Tempo ratio clamped to the resampler range")
	default:
		entry.Info("Planned transition")
	}

	size, err := writeOutput(cfg.Output, res.Track, stdout)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"output":   cfg.Output,
		"size":     humanize.Bytes(uint64(size)),
		"duration": res.Track.Duration().Round(time.Millisecond),
		"took":     time.Since(start).Round(time.Millisecond),
	}).Info("Wrote mix")

	return nil
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, audio.ErrEncodeFailure):
		return exitEncode
	case errors.Is(err, audio.ErrDecodeFailure),
		errors.Is(err, audio.ErrUnsupportedFormat),
		errors.Is(err, audio.ErrUnsupportedBitDepth),
		errors.Is(err, audio.ErrInvalidSampleRate):
		return exitDecode
	case errors.Is(err, audio.ErrEmptyTrack):
		return exitEmpty
	case errors.Is(err, audio.ErrUnsupportedChannelLayout):
		return exitLayout
	case errors.Is(err, transition.ErrFadeWindowExceedsTrack):
		return exitFadeWindow
	case errors.Is(err, resample.ErrRatioOutOfRange),
		errors.Is(err, resample.ErrChunkTooShort):
		return exitResample
	default:
		return exitOther
	}
}
