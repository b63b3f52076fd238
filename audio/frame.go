// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"time"
)

// Frame is one stereo sample pair. Every stage past the normalizer works on
// Frames, so a track can never lose a channel on the way to the encoder.
type Frame struct {
	L, R float32
}

// MonoFrame duplicates v into both channels.
func MonoFrame(v float32) Frame { return Frame{L: v, R: v} }

func (f Frame) Scale(g float32) Frame { return Frame{L: f.L * g, R: f.R * g} }

func (f Frame) Add(o Frame) Frame { return Frame{L: f.L + o.L, R: f.R + o.R} }

// Mid is the channel average.
func (f Frame) Mid() float32 { return (f.L + f.R) * 0.5 }

// Clip limits both channels to [-1, 1].
func (f Frame) Clip() Frame { return Frame{L: clip(f.L), R: clip(f.R)} }

func clip(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// Track is an immutable, non-empty run of Frames at a fixed sample rate.
type Track struct {
	frames     []Frame
	sampleRate int
}

// NewTrack copies frames into a new Track, clipping them to [-1, 1].
func NewTrack(sampleRate int, frames []Frame) (*Track, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if len(frames) == 0 {
		return nil, ErrEmptyTrack
	}

	owned := make([]Frame, len(frames))
	for i, f := range frames {
		owned[i] = f.Clip()
	}

	return &Track{frames: owned, sampleRate: sampleRate}, nil
}

func (t *Track) Len() int        { return len(t.frames) }
func (t *Track) SampleRate() int { return t.sampleRate }

func (t *Track) Duration() time.Duration {
	return time.Duration(float64(len(t.frames)) / float64(t.sampleRate) * float64(time.Second))
}

// At returns frame i. It panics when i is out of range, like a slice index.
func (t *Track) At(i int) Frame { return t.frames[i] }

// Slice returns a copy of frames [from, to).
func (t *Track) Slice(from, to int) []Frame {
	return append([]Frame(nil), t.frames[from:to]...)
}

// Frames returns a copy of every frame.
func (t *Track) Frames() []Frame { return t.Slice(0, len(t.frames)) }

// Mono returns the channel average of every frame.
func (t *Track) Mono() []float32 {
	out := make([]float32, len(t.frames))
	for i, f := range t.frames {
		out[i] = f.Mid()
	}
	return out
}

// Equal reports whether both tracks hold the same rate and frames.
func (t *Track) Equal(o *Track) bool {
	if t.sampleRate != o.sampleRate || len(t.frames) != len(o.frames) {
		return false
	}
	for i := range t.frames {
		if t.frames[i] != o.frames[i] {
			return false
		}
	}
	return true
}
