// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	beepflac "github.com/faiface/beep/flac"
	"github.com/ik5/beatmix/audio"
)

// streamer is the part of beep.StreamSeekCloser a source uses
type streamer interface {
	Stream(samples [][2]float64) (n int, ok bool)
	Err() error
	Close() error
}

// source adapts beep's pull model, which always yields stereo pairs, to
// interleaved float32.
type source struct {
	st         streamer
	sampleRate int
	buf        [][2]float64
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return 2 }
func (s *source) BufSize() int    { return 2 * cap(s.buf) }
func (s *source) Close() error    { return s.st.Close() }

func (s *source) ReadSamples(dst []float32) (int, error) {
	frames := len(dst) / 2
	if frames == 0 {
		return 0, nil
	}

	if cap(s.buf) < frames {
		s.buf = make([][2]float64, frames)
	}
	s.buf = s.buf[:frames]

	n, ok := s.st.Stream(s.buf)
	for i := range n {
		dst[2*i] = float32(s.buf[i][0])
		dst[2*i+1] = float32(s.buf[i][1])
	}

	if !ok || n == 0 {
		if err := s.st.Err(); err != nil && !errors.Is(err, io.EOF) {
			return 2 * n, fmt.Errorf("%w: %w", audio.ErrDecodeFailure, err)
		}
		return 2 * n, io.EOF
	}

	return 2 * n, nil
}

type Decoder struct{}

// Decode reads FLAC through beep. Mono files come back as two identical
// channels. The returned Source owns r and closes it when closed.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	st, format, err := beepflac.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrDecodeFailure, err)
	}

	if format.SampleRate <= 0 {
		st.Close()
		return nil, fmt.Errorf("%w: sample rate %d", audio.ErrDecodeFailure, format.SampleRate)
	}

	return &source{
		st:         st,
		sampleRate: int(format.SampleRate),
		buf:        make([][2]float64, 2048),
	}, nil
}
