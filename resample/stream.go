// SPDX-License-Identifier: EPL-2.0

package resample

import (
	"fmt"
	"math"

	"github.com/ik5/beatmix/audio"
)

// Stream resamples one input sequence block by block, each block at its own
// constant ratio. The fractional read position carries across blocks, so a
// ratio change at a block boundary bends the playback speed without a phase
// jump.
type Stream struct {
	r   *Resampler
	in  []audio.Frame
	pos float64
}

// NewStream starts a Stream at the first frame of in. The slice is read,
// never written.
func (r *Resampler) NewStream(in []audio.Frame) (*Stream, error) {
	if len(in) < r.opts.MinChunk {
		return nil, fmt.Errorf("%w: %d frames, need %d", ErrChunkTooShort, len(in), r.opts.MinChunk)
	}

	return &Stream{r: r, in: in}, nil
}

// Next emits n frames at ratio and advances the read position by n/ratio.
func (s *Stream) Next(n int, ratio float64) ([]audio.Frame, error) {
	if n < s.r.opts.MinChunk {
		return nil, fmt.Errorf("%w: block of %d frames, need %d", ErrChunkTooShort, n, s.r.opts.MinChunk)
	}
	if err := s.r.CheckRatio(ratio); err != nil {
		return nil, err
	}

	out := make([]audio.Frame, n)
	start := int(s.pos)

	if ratio == 1 && s.pos == float64(start) && start+n <= len(s.in) {
		copy(out, s.in[start:start+n])
		s.pos += float64(n)
		return out, nil
	}

	interp := s.r.interpolator(ratio)
	for j := range out {
		out[j] = interp(s.in, s.pos+float64(j)/ratio)
	}
	s.pos += InputNeeded(n, ratio)

	return out, nil
}

// Position is the fractional input index the next block starts at.
func (s *Stream) Position() float64 { return s.pos }

// Consumed is the index of the first input frame no emitted block has
// reached yet, capped at the input length.
func (s *Stream) Consumed() int {
	return min(int(math.Ceil(s.pos)), len(s.in))
}
