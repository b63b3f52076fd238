// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/beatmix/audio"
	"github.com/ik5/beatmix/formats/internal/pcm"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// Decoder reads integer PCM WAV files of 8, 16, 24 or 32 bits.
type Decoder struct{}

// Decode parses the header of r and returns a Source positioned at the
// first sample. Readers that cannot seek are buffered in memory.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, err := pcm.ReadSeeker(r)
	if err != nil {
		return nil, err
	}

	if !gowav.NewDecoder(rs).IsValidFile() {
		return nil, fmt.Errorf("%w: %w", audio.ErrDecodeFailure, ErrNotWavFile)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrDecodeFailure, err)
	}

	dec := gowav.NewDecoder(rs)
	dec.ReadInfo()

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: %w: format tag %#x", audio.ErrDecodeFailure, ErrNotPCM, dec.WavAudioFormat)
	}
	if dec.NumChans == 0 || dec.SampleRate == 0 {
		return nil, fmt.Errorf("%w: %w", audio.ErrDecodeFailure, ErrInvalidLayout)
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", audio.ErrDecodeFailure, ErrNoDataChunk, err)
	}

	// 8-bit WAV is stored unsigned
	return pcm.NewSource(dec, int(dec.SampleRate), int(dec.NumChans), int(dec.BitDepth), true)
}
