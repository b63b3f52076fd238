// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/beatmix/audio"
)

// mp3Reader is the part of gomp3.Decoder a source uses
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// source streams go-mp3 output, which is always 16-bit little-endian
// stereo, as float32.
type source struct {
	dec        mp3Reader
	sampleRate int
	buf        []byte
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return 2 }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 } // samples, not bytes

func (s *source) ReadSamples(dst []float32) (int, error) {
	// whole stereo frames only
	frames := len(dst) / 2
	if frames == 0 {
		return 0, nil
	}

	need := frames * 4
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}
	s.buf = s.buf[:need]

	n, err := io.ReadAtLeast(s.dec, s.buf, 4)
	n -= n % 4

	samples := n / 2
	for i := range samples {
		v := int16(uint16(s.buf[2*i]) | uint16(s.buf[2*i+1])<<8)
		dst[i] = float32(v) / 32768
	}

	switch {
	case err == nil:
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		err = io.EOF
	default:
		err = fmt.Errorf("%w: %w", audio.ErrDecodeFailure, err)
	}

	return samples, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrDecodeFailure, err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		buf:        make([]byte, 8192),
	}, nil
}
