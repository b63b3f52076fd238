// SPDX-License-Identifier: EPL-2.0

package transition

import "github.com/ik5/beatmix/audio"

// Output collects the mixed frames in order and turns them into a Track
// once.
type Output struct {
	frames    []audio.Frame
	finalized bool
}

func NewOutput(capacity int) *Output {
	return &Output{frames: make([]audio.Frame, 0, max(0, capacity))}
}

func (o *Output) Append(frames ...audio.Frame) error {
	if o.finalized {
		return ErrFinalized
	}
	o.frames = append(o.frames, frames...)
	return nil
}

func (o *Output) Len() int { return len(o.frames) }

// Finalize returns the collected frames as a Track at sampleRate. Later
// calls, and later Appends, fail with ErrFinalized.
func (o *Output) Finalize(sampleRate int) (*audio.Track, error) {
	if o.finalized {
		return nil, ErrFinalized
	}
	o.finalized = true

	t, err := audio.NewTrack(sampleRate, o.frames)
	o.frames = nil
	return t, err
}
