// SPDX-License-Identifier: EPL-2.0

package transition

import (
	"fmt"
	"math"

	"github.com/ik5/beatmix/audio"
	"github.com/ik5/beatmix/resample"
	"github.com/ik5/beatmix/tempo"
)

// State is a stage of the transition.
type State int

const (
	PreFade State = iota
	Fading
	PostFade
	Done
)

func (s State) String() string {
	switch s {
	case PreFade:
		return "pre-fade"
	case Fading:
		return "fading"
	case PostFade:
		return "post-fade"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config shapes a transition. FadeFrames is required; the rest default
// like DefaultConfig.
type Config struct {
	FadeFrames int
	Envelope   Envelope
	// BlockSize is the resampling granularity during the fade. It is raised
	// to the resampler's MinChunk when smaller.
	BlockSize int
	Resampler resample.Options
}

// DefaultConfig fades over five seconds at 44.1 kHz.
func DefaultConfig() Config {
	return Config{
		FadeFrames: 5 * 44100,
		Envelope:   EqualPower,
		BlockSize:  64,
		Resampler:  resample.DefaultOptions(),
	}
}

// Plan is what New worked out before any frame was produced.
type Plan struct {
	// TempoRatio is bpm(A)/bpm(B), or 1 on fallback.
	TempoRatio float64
	// InitialRatio is the resample ratio applied to B at the start of the
	// fade, bpm(B)/bpm(A) clamped to the resampler bounds.
	InitialRatio float64
	// Clamped reports that InitialRatio was limited by the bounds.
	Clamped bool
	// Fallback names the track whose tempo was undetected; it wraps
	// tempo.ErrTempoUndetected. Nil when both tempos were used.
	Fallback error

	FadeFrames int
	Blocks     int
	// Demand is the number of B frames the fade consumes.
	Demand float64
	// OutputFrames is the length of the finished mix.
	OutputFrames int
}

// Engine mixes the end of an anchor track A into a track B, bending B's
// tempo onto A's at the start of the fade and back to its own by the end.
type Engine struct {
	a, b   *audio.Track
	cfg    Config
	plan   Plan
	blocks []Block

	rs     *resample.Resampler
	bIn    []audio.Frame
	stream *resample.Stream
	out    *Output

	state  State
	err    error
	result *audio.Track
}

// New validates the pair and plans the fade. Every sizing problem is
// reported here, before any resampling.
func New(a, b *audio.Track, ea, eb tempo.Estimate, cfg Config) (*Engine, error) {
	if a == nil || a.Len() == 0 {
		return nil, audio.WithTrack("A", audio.ErrEmptyTrack)
	}
	if b == nil || b.Len() == 0 {
		return nil, audio.WithTrack("B", audio.ErrEmptyTrack)
	}
	if a.SampleRate() != b.SampleRate() {
		return nil, fmt.Errorf("%w: A at %d Hz, B at %d Hz", ErrSampleRateMismatch, a.SampleRate(), b.SampleRate())
	}

	f := cfg.FadeFrames
	if f <= 0 {
		return nil, fmt.Errorf("%w: %d frames", ErrInvalidFade, f)
	}

	rs := resample.New(cfg.Resampler)
	opts := rs.Options()

	if f < opts.MinChunk {
		return nil, fmt.Errorf("fade of %d frames: %w: need %d", f, resample.ErrChunkTooShort, opts.MinChunk)
	}
	if a.Len() <= f {
		return nil, audio.WithTrack("A", fmt.Errorf("%w: %d frames, fade %d", ErrFadeWindowExceedsTrack, a.Len(), f))
	}
	if b.Len() <= f {
		return nil, audio.WithTrack("B", fmt.Errorf("%w: %d frames, fade %d", ErrFadeWindowExceedsTrack, b.Len(), f))
	}

	plan := Plan{TempoRatio: 1, InitialRatio: 1, FadeFrames: f}
	switch {
	case !ea.Detected():
		plan.Fallback = audio.WithTrack("A", tempo.ErrTempoUndetected)
	case !eb.Detected():
		plan.Fallback = audio.WithTrack("B", tempo.ErrTempoUndetected)
	default:
		plan.TempoRatio = ea.BPM / eb.BPM
		r := eb.BPM / ea.BPM
		plan.InitialRatio = min(opts.MaxRatio, max(opts.MinRatio, r))
		plan.Clamped = plan.InitialRatio != r
	}

	blocks := NewSchedule(plan.InitialRatio, f).Blocks(max(cfg.BlockSize, opts.MinChunk))
	plan.Blocks = len(blocks)
	plan.Demand = Demand(blocks)

	if plan.Demand > float64(b.Len()) {
		return nil, audio.WithTrack("B", fmt.Errorf("%w: tempo ramp needs %.0f frames, track has %d",
			ErrFadeWindowExceedsTrack, math.Ceil(plan.Demand), b.Len()))
	}

	consumed := min(int(math.Ceil(plan.Demand)), b.Len())
	plan.OutputFrames = a.Len() + b.Len() - consumed

	return &Engine{
		a:      a,
		b:      b,
		cfg:    cfg,
		plan:   plan,
		blocks: blocks,
		rs:     rs,
		out:    NewOutput(plan.OutputFrames),
		state:  PreFade,
	}, nil
}

func (e *Engine) Plan() Plan     { return e.plan }
func (e *Engine) State() State   { return e.state }
func (e *Engine) Config() Config { return e.cfg }

// Step runs the current state to completion and returns the next one.
// After Done it returns ErrDone, or the error that stopped the transition.
func (e *Engine) Step() (State, error) {
	if e.state == Done {
		if e.err != nil {
			return Done, e.err
		}
		return Done, ErrDone
	}

	var err error
	switch e.state {
	case PreFade:
		err = e.preFade()
	case Fading:
		err = e.fade()
	case PostFade:
		err = e.postFade()
	}

	if err != nil {
		e.fail(err)
		return Done, err
	}

	e.state++
	return e.state, nil
}

// Run steps to Done and returns the mix. A failed transition returns no
// frames at all.
func (e *Engine) Run() (*audio.Track, error) {
	for e.state != Done {
		if _, err := e.Step(); err != nil {
			return nil, err
		}
	}
	if e.result == nil {
		if e.err != nil {
			return nil, e.err
		}
		return nil, ErrDone
	}
	return e.result, nil
}

func (e *Engine) fail(err error) {
	e.err = err
	e.state = Done
	e.out = nil
	e.bIn = nil
	e.stream = nil
}

func (e *Engine) preFade() error {
	return e.out.Append(e.a.Slice(0, e.a.Len()-e.plan.FadeFrames)...)
}

func (e *Engine) fade() error {
	f := e.plan.FadeFrames
	tail := e.a.Slice(e.a.Len()-f, e.a.Len())

	e.bIn = e.b.Frames()
	stream, err := e.rs.NewStream(e.bIn)
	if err != nil {
		return audio.WithTrack("B", err)
	}
	e.stream = stream

	mixed := make([]audio.Frame, 0, f)
	for _, blk := range e.blocks {
		chunk, err := stream.Next(blk.Len, blk.Ratio)
		if err != nil {
			return audio.WithTrack("B", fmt.Errorf("fade frames %d..%d: %w", blk.Start, blk.Start+blk.Len, err))
		}

		for j, in := range chunk {
			i := blk.Start + j
			fo, fi := e.cfg.Envelope.Gains(i, f)
			mixed = append(mixed, tail[i].Scale(fo).Add(in.Scale(fi)).Clip())
		}
	}

	return e.out.Append(mixed...)
}

func (e *Engine) postFade() error {
	if err := e.out.Append(e.bIn[e.stream.Consumed():]...); err != nil {
		return err
	}

	t, err := e.out.Finalize(e.a.SampleRate())
	if err != nil {
		return err
	}
	e.result = t
	e.bIn = nil
	return nil
}
