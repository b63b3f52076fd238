// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"fmt"
	"math"
	"sync"

	"github.com/ik5/beatmix/audio"
)

// Options configure a Resampler. Zero fields take the DefaultOptions value.
type Options struct {
	Kernel Kernel
	// ZeroCrossings is the sinc half-width, in zero crossings of the
	// cutoff-scaled sinc. Wider is sharper and slower.
	ZeroCrossings int
	// MinRatio and MaxRatio bound every requested ratio.
	MinRatio float64
	MaxRatio float64
	// MinChunk is the smallest input (Resample) or output block (Stream.Next)
	// accepted in one call.
	MinChunk int
}

func DefaultOptions() Options {
	return Options{
		Kernel:        Sinc,
		ZeroCrossings: 16,
		MinRatio:      0.5,
		MaxRatio:      2.0,
		MinChunk:      32,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.ZeroCrossings <= 0 {
		o.ZeroCrossings = d.ZeroCrossings
	}
	if o.MinRatio <= 0 {
		o.MinRatio = d.MinRatio
	}
	if o.MaxRatio <= 0 {
		o.MaxRatio = d.MaxRatio
	}
	if o.MinChunk <= 0 {
		o.MinChunk = d.MinChunk
	}
	return o
}

// Resampler converts frame sequences by a ratio of output rate to input
// rate. Output frame j samples input position j/ratio: the kernel is
// centered, so there is no group delay to compensate for.
//
// A Resampler is safe for concurrent use.
type Resampler struct {
	opts Options

	mu      sync.Mutex
	kernels map[int]*sincKernel
}

func New(opts Options) *Resampler {
	return &Resampler{
		opts:    opts.withDefaults(),
		kernels: make(map[int]*sincKernel),
	}
}

func (r *Resampler) Options() Options { return r.opts }

// CheckRatio reports ErrRatioOutOfRange for ratios the resampler rejects.
func (r *Resampler) CheckRatio(ratio float64) error {
	if math.IsNaN(ratio) || ratio < r.opts.MinRatio || ratio > r.opts.MaxRatio {
		return fmt.Errorf("%w: %g not in [%g, %g]", ErrRatioOutOfRange, ratio, r.opts.MinRatio, r.opts.MaxRatio)
	}
	return nil
}

// OutputLen is the constant-ratio output length for n input frames.
func OutputLen(n int, ratio float64) int {
	return int(math.Round(float64(n) * ratio))
}

// InputNeeded is how many input frames n output frames at ratio advance
// the read position by.
func InputNeeded(n int, ratio float64) float64 {
	return float64(n) / ratio
}

// Resample converts in by a constant ratio. The result has
// OutputLen(len(in), ratio) frames.
func (r *Resampler) Resample(in []audio.Frame, ratio float64) ([]audio.Frame, error) {
	if err := r.CheckRatio(ratio); err != nil {
		return nil, err
	}
	if len(in) < r.opts.MinChunk {
		return nil, fmt.Errorf("%w: %d frames, need %d", ErrChunkTooShort, len(in), r.opts.MinChunk)
	}

	out := make([]audio.Frame, OutputLen(len(in), ratio))
	if ratio == 1 {
		copy(out, in)
		return out, nil
	}

	interp := r.interpolator(ratio)
	for j := range out {
		out[j] = interp(in, float64(j)/ratio)
	}

	return out, nil
}

// Conform converts t to rate. A track already at rate is returned as is.
func (r *Resampler) Conform(t *audio.Track, rate int) (*audio.Track, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("%w: %d", audio.ErrInvalidSampleRate, rate)
	}
	if t.SampleRate() == rate {
		return t, nil
	}

	out, err := r.Resample(t.Frames(), float64(rate)/float64(t.SampleRate()))
	if err != nil {
		return nil, fmt.Errorf("conform %d Hz to %d Hz: %w", t.SampleRate(), rate, err)
	}

	return audio.NewTrack(rate, out)
}

type interpolator func(in []audio.Frame, t float64) audio.Frame

func (r *Resampler) interpolator(ratio float64) interpolator {
	if r.opts.Kernel == Cubic {
		return cubicAt
	}

	return r.kernel(min(1, ratio)).at
}

func (r *Resampler) kernel(cutoff float64) *sincKernel {
	key := int(math.Round(cutoff * cutoffSteps))

	r.mu.Lock()
	defer r.mu.Unlock()

	k, ok := r.kernels[key]
	if !ok {
		k = newSincKernel(float64(key)/cutoffSteps, r.opts.ZeroCrossings)
		r.kernels[key] = k
	}

	return k
}
