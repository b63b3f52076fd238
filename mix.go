// SPDX-License-Identifier: EPL-2.0

package beatmix

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/beatmix/audio"
	"github.com/ik5/beatmix/resample"
	"github.com/ik5/beatmix/tempo"
	"github.com/ik5/beatmix/transition"
)

// SampleRate is the rate every track is conformed to before mixing, and the
// rate of the mixed output.
const SampleRate = 44100

// Conversion between container rates spans 8 kHz to 352.8 kHz, well past the
// tempo ratio bounds.
const (
	conformMinRatio = 1.0 / 8
	conformMaxRatio = 8.0
)

type Config struct {
	Fade      time.Duration
	Envelope  transition.Envelope
	BlockSize int // frames per ratio step during the fade
	Resampler resample.Options
	Tempo     tempo.Options
}

func DefaultConfig() Config {
	tc := transition.DefaultConfig()

	return Config{
		Fade:      5 * time.Second,
		Envelope:  tc.Envelope,
		BlockSize: tc.BlockSize,
		Resampler: tc.Resampler,
		Tempo:     tempo.DefaultOptions(),
	}
}

// FadeFrames is the fade length at SampleRate, rounded to the nearest frame.
func (c Config) FadeFrames() int {
	return int(math.Round(c.Fade.Seconds() * SampleRate))
}

func (c Config) transition() transition.Config {
	return transition.Config{
		FadeFrames: c.FadeFrames(),
		Envelope:   c.Envelope,
		BlockSize:  c.BlockSize,
		Resampler:  c.Resampler,
	}
}

// PCM is interleaved signed integer audio, mono or stereo.
type PCM struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Samples    []int
}

// Result is the mixed track with the analysis that shaped it.
type Result struct {
	Track *audio.Track
	A, B  tempo.Estimate
	Plan  transition.Plan
}

// MixPCM normalizes a and b and mixes them.
func MixPCM(ctx context.Context, a, b PCM, cfg Config) (*Result, error) {
	return mix(ctx, cfg,
		func() (*audio.Track, error) { return audio.FromPCM(a.SampleRate, a.Channels, a.BitDepth, a.Samples) },
		func() (*audio.Track, error) { return audio.FromPCM(b.SampleRate, b.Channels, b.BitDepth, b.Samples) },
	)
}

// Mix drains a and b and mixes them. The sources are not closed.
func Mix(ctx context.Context, a, b audio.Source, cfg Config) (*Result, error) {
	return mix(ctx, cfg,
		func() (*audio.Track, error) { return audio.ReadTrack(a) },
		func() (*audio.Track, error) { return audio.ReadTrack(b) },
	)
}

// MixTracks mixes two already normalized tracks at any sample rate.
func MixTracks(ctx context.Context, a, b *audio.Track, cfg Config) (*Result, error) {
	return mix(ctx, cfg,
		func() (*audio.Track, error) { return a, nil },
		func() (*audio.Track, error) { return b, nil },
	)
}

// prepared is one track ready for the transition engine
type prepared struct {
	track *audio.Track
	est   tempo.Estimate
}

func mix(ctx context.Context, cfg Config, loadA, loadB func() (*audio.Track, error)) (*Result, error) {
	var pa, pb prepared

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		pa, err = prepare(gctx, "A", loadA, cfg)
		return err
	})
	g.Go(func() (err error) {
		pb, err = prepare(gctx, "B", loadB, cfg)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	eng, err := transition.New(pa.track, pb.track, pa.est, pb.est, cfg.transition())
	if err != nil {
		return nil, err
	}

	out, err := eng.Run()
	if err != nil {
		return nil, err
	}

	return &Result{Track: out, A: pa.est, B: pb.est, Plan: eng.Plan()}, nil
}

func prepare(ctx context.Context, name string, load func() (*audio.Track, error), cfg Config) (prepared, error) {
	t, err := load()
	if err != nil {
		return prepared{}, audio.WithTrack(name, err)
	}
	if t == nil || t.Len() == 0 {
		return prepared{}, audio.WithTrack(name, audio.ErrEmptyTrack)
	}

	if err := ctx.Err(); err != nil {
		return prepared{}, err
	}

	conformer := cfg.Resampler
	conformer.MinRatio = conformMinRatio
	conformer.MaxRatio = conformMaxRatio

	t, err = resample.New(conformer).Conform(t, SampleRate)
	if err != nil {
		return prepared{}, audio.WithTrack(name, err)
	}

	if err := ctx.Err(); err != nil {
		return prepared{}, err
	}

	return prepared{track: t, est: tempo.NewEstimator(cfg.Tempo).Estimate(t)}, nil
}
