// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts go-audio integer decoders to audio.Source.
package pcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/beatmix/audio"
)

// Reader is the part of the go-audio wav and aiff decoders a Source uses.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source streams a Reader's integer samples as float32 in [-1, 1].
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	full       float32 // magnitude of full scale
	offset     int // subtracted before scaling; 128 for unsigned 8-bit
	intBuf     *goaudio.IntBuffer
}

// NewSource wraps dec. Unsigned marks 8-bit data stored as 0..255, as WAV
// does.
func NewSource(dec Reader, sampleRate, channels, bitDepth int, unsigned bool) (*Source, error) {
	full, err := audio.PCMScale(bitDepth)
	if err != nil {
		return nil, err
	}

	s := &Source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		full:       full,
	}
	if unsigned && bitDepth == 8 {
		s.offset = 128
	}

	return s, nil
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.intBuf.Data = s.intBuf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("%w: %w", audio.ErrDecodeFailure, err)
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = float32(v-s.offset) / s.full
	}

	// go-audio reports the end of data as a short read with no error
	if err == nil && n < len(dst) {
		return n, io.EOF
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("%w: %w", audio.ErrDecodeFailure, err)
	}

	return n, err
}

// ReadSeeker returns r itself when it can seek, and otherwise buffers it
// in memory. The go-audio decoders need to seek between chunks.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrDecodeFailure, err)
	}

	return bytes.NewReader(data), nil
}
