// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// TrackSource streams a Track back out as interleaved stereo.
type TrackSource struct {
	track *Track
	pos   int
}

// Source returns a fresh stereo Source positioned at the first frame.
func (t *Track) Source() *TrackSource {
	return &TrackSource{track: t}
}

func (s *TrackSource) SampleRate() int { return s.track.sampleRate }
func (s *TrackSource) Channels() int   { return 2 }
func (s *TrackSource) BufSize() int    { return 4096 }
func (s *TrackSource) Close() error    { return nil }

func (s *TrackSource) ReadSamples(dst []float32) (int, error) {
	if len(dst)%2 != 0 {
		return 0, ErrInvalidDstSize
	}

	frames := s.track.frames[s.pos:]
	if len(frames) == 0 {
		return 0, io.EOF
	}

	n := min(len(dst)/2, len(frames))
	for i := range n {
		dst[2*i] = frames[i].L
		dst[2*i+1] = frames[i].R
	}
	s.pos += n

	if s.pos == len(s.track.frames) {
		return 2 * n, io.EOF
	}
	return 2 * n, nil
}
